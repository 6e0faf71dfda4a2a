package services

import "errors"

var (
	// ErrActionDisabled is returned when a control's backing field is the none sentinel.
	ErrActionDisabled = errors.New("action not available for this game")
	ErrGameNotFound   = errors.New("game not found")
	// ErrThumbnailsDisabled is returned by Thumbnail when rendering is turned off.
	ErrThumbnailsDisabled = errors.New("thumbnails disabled")
)
