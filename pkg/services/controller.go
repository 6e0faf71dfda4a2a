package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kerbaras/gameshelf/pkg/config"
	"github.com/kerbaras/gameshelf/pkg/data"
	"github.com/kerbaras/gameshelf/pkg/integrations"
	"github.com/kerbaras/gameshelf/pkg/sources"
)

// ControllerConfig carries everything a GameController talks to.
type ControllerConfig struct {
	Source           sources.Source
	Opener           integrations.Opener
	DownloadDir      string
	Recipient        string
	Subject          string
	Thumbnails       *integrations.ThumbnailSettings // nil disables thumbnails
	ThumbnailTimeout time.Duration                   // per image fetch; zero means DefaultThumbnailTimeout
	Logger           *zap.Logger
}

// DefaultThumbnailTimeout keeps a stalled image host from pinning a goroutine.
const DefaultThumbnailTimeout = 15 * time.Second

// GameController performs the side effects behind the catalog's controls.
// It holds no catalog state of its own.
type GameController struct {
	source     sources.Source
	opener     integrations.Opener
	mailer     *integrations.Mailer
	downloader *Downloader
	thumbnails *integrations.ThumbnailRenderer
	thumbWait  time.Duration
	logger     *zap.Logger
}

// NewGameController wires a controller from loaded settings. A nil opener
// means the system browser.
func NewGameController(settings *config.Settings, opener integrations.Opener, logger *zap.Logger) (*GameController, error) {
	source, err := sources.New(settings.Catalog.Location)
	if err != nil {
		return nil, err
	}

	if opener == nil {
		opener = integrations.NewBrowserOpener()
	}

	cfg := ControllerConfig{
		Source:      source,
		Opener:      opener,
		DownloadDir: settings.Downloads.Dir,
		Recipient:   settings.Feedback.Recipient,
		Subject:     settings.Feedback.Subject,
		Logger:      logger,
	}
	if settings.Thumbnails.Enabled {
		cfg.Thumbnails = &integrations.ThumbnailSettings{
			Width:   settings.Thumbnails.Width,
			MaxRows: settings.Thumbnails.MaxRows,
		}
	}
	return NewGameControllerWithConfig(cfg), nil
}

func NewGameControllerWithConfig(cfg ControllerConfig) *GameController {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &GameController{
		source:     cfg.Source,
		opener:     cfg.Opener,
		mailer:     integrations.NewMailer(cfg.Opener, cfg.Recipient, cfg.Subject),
		downloader: NewDownloader(cfg.Source, cfg.DownloadDir),
		thumbWait:  cfg.ThumbnailTimeout,
		logger:     logger,
	}
	if c.thumbWait <= 0 {
		c.thumbWait = DefaultThumbnailTimeout
	}
	if cfg.Thumbnails != nil {
		c.thumbnails = integrations.NewThumbnailRenderer(*cfg.Thumbnails, c.openAsset)
	}
	return c
}

func (c *GameController) openAsset(ctx context.Context, path string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, c.thumbWait)
	rc, _, err := sources.OpenAsset(ctx, c.source, path)
	if err != nil {
		cancel()
		return nil, err
	}
	return &cancelOnClose{ReadCloser: rc, cancel: cancel}, nil
}

// cancelOnClose releases the fetch deadline once the body is consumed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

// LoadCatalog performs the session's single catalog fetch.
func (c *GameController) LoadCatalog(ctx context.Context) data.Catalog {
	return sources.Load(ctx, c.source, c.logger)
}

// FindGame loads the catalog and looks a game up by name, ignoring case
// when there is no exact match.
func (c *GameController) FindGame(ctx context.Context, name string) (data.GameRecord, error) {
	catalog := c.LoadCatalog(ctx)
	if game, ok := catalog.Find(name); ok {
		return game, nil
	}
	for _, game := range catalog {
		if strings.EqualFold(game.Name, name) {
			return game, nil
		}
	}
	return data.GameRecord{}, fmt.Errorf("%q: %w", name, ErrGameNotFound)
}

// OpenSource opens the game's source link in a new browser context.
func (c *GameController) OpenSource(game data.GameRecord) error {
	target, enabled := game.Action(data.ActionSource)
	if !enabled {
		return fmt.Errorf("%s source: %w", game.Name, ErrActionDisabled)
	}
	resolved := c.source.Resolve(target)
	c.logger.Info("opening source link", zap.String("game", game.Name), zap.String("url", resolved))
	return c.opener.Open(resolved)
}

// Download fetches a platform build and returns where it was written.
func (c *GameController) Download(ctx context.Context, game data.GameRecord, platform data.Action) (string, error) {
	dest, err := c.downloader.Download(ctx, game, platform)
	if err != nil {
		c.logger.Warn("download failed", zap.String("game", game.Name), zap.Stringer("platform", platform), zap.Error(err))
		return "", err
	}
	c.logger.Info("download complete", zap.String("game", game.Name), zap.Stringer("platform", platform), zap.String("path", dest))
	return dest, nil
}

// Perform runs the control for action and returns a short status line.
func (c *GameController) Perform(ctx context.Context, game data.GameRecord, action data.Action) (string, error) {
	if action.IsDownload() {
		dest, err := c.Download(ctx, game, action)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Saved %s", dest), nil
	}
	if err := c.OpenSource(game); err != nil {
		return "", err
	}
	return fmt.Sprintf("Opened source for %s", game.Name), nil
}

// SendFeedback hands text to the mail client. There is no delivery confirmation.
func (c *GameController) SendFeedback(text string) error {
	if err := c.mailer.Send(text); err != nil {
		c.logger.Warn("feedback handoff failed", zap.Error(err))
		return err
	}
	c.logger.Info("feedback handed to mail client", zap.Int("length", len(text)))
	return nil
}

// Thumbnail renders the image at path for display in a game card.
func (c *GameController) Thumbnail(ctx context.Context, path string) (string, error) {
	if c.thumbnails == nil {
		return "", ErrThumbnailsDisabled
	}
	return c.thumbnails.Render(ctx, path)
}

// ThumbnailsEnabled reports whether Thumbnail can succeed at all.
func (c *GameController) ThumbnailsEnabled() bool {
	return c.thumbnails != nil
}

// Progress streams download progress.
func (c *GameController) Progress() <-chan DownloadProgress {
	return c.downloader.GetProgressChannel()
}

func (c *GameController) Close() {
	c.downloader.Close()
	_ = c.logger.Sync()
}
