package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kerbaras/gameshelf/pkg/data"
	"github.com/kerbaras/gameshelf/pkg/sources"
)

// DownloadProgress represents the progress of a build download
type DownloadProgress struct {
	Game     string
	Platform data.Action
	Written  int64
	Total    int64  // -1 when the server does not say
	Status   string // "downloading", "complete", "error"
	Path     string
	Error    error
}

// Downloader fetches platform builds into the download directory
type Downloader struct {
	source       sources.Source
	downloadDir  string
	progressChan chan DownloadProgress
	mu           sync.RWMutex
	closed       bool
}

// NewDownloader creates a new Downloader instance
func NewDownloader(source sources.Source, downloadDir string) *Downloader {
	return &Downloader{
		source:       source,
		downloadDir:  downloadDir,
		progressChan: make(chan DownloadProgress, 100),
	}
}

// GetProgressChannel returns the channel for receiving download progress updates
func (d *Downloader) GetProgressChannel() <-chan DownloadProgress {
	return d.progressChan
}

// Download streams the build for platform to disk and returns the file path
func (d *Downloader) Download(ctx context.Context, game data.GameRecord, platform data.Action) (string, error) {
	if !platform.IsDownload() {
		return "", fmt.Errorf("%s is not a download", platform)
	}
	target, enabled := game.Action(platform)
	if !enabled {
		return "", fmt.Errorf("%s %s: %w", game.Name, platform, ErrActionDisabled)
	}

	progress := DownloadProgress{Game: game.Name, Platform: platform, Total: -1, Status: "downloading"}
	fail := func(err error) (string, error) {
		progress.Status = "error"
		progress.Error = err
		d.sendProgress(progress)
		return "", err
	}

	d.sendProgress(progress)

	body, size, err := sources.OpenAsset(ctx, d.source, target)
	if err != nil {
		return fail(fmt.Errorf("failed to fetch build: %w", err))
	}
	defer body.Close()
	progress.Total = size

	if err := os.MkdirAll(d.downloadDir, 0755); err != nil {
		return fail(fmt.Errorf("failed to create download directory: %w", err))
	}

	dest := filepath.Join(d.downloadDir, buildFileName(game, platform, target))
	progress.Path = dest

	out, err := os.Create(dest)
	if err != nil {
		return fail(fmt.Errorf("failed to create %s: %w", dest, err))
	}

	pw := &progressWriter{d: d, progress: &progress}
	_, copyErr := io.Copy(io.MultiWriter(out, pw), body)
	closeErr := out.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		os.Remove(dest)
		return fail(fmt.Errorf("failed to write build: %w", copyErr))
	}

	progress.Status = "complete"
	d.sendProgress(progress)
	return dest, nil
}

// buildFileName takes the last element of the build's path, falling back to
// the game name when the path has none.
func buildFileName(game data.GameRecord, platform data.Action, target string) string {
	p := target
	if u, err := url.Parse(target); err == nil && u.Path != "" {
		p = u.Path
	}
	name := path.Base(filepath.ToSlash(p))
	if name == "." || name == "/" || name == "" {
		name = sanitizeFilename(game.Name) + "-" + platform.String()
	}
	return name
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", " ", "_")
	return replacer.Replace(name)
}

type progressWriter struct {
	d        *Downloader
	progress *DownloadProgress
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.progress.Written += int64(len(p))
	w.d.sendProgress(*w.progress)
	return len(p), nil
}

// sendProgress sends a progress update (non-blocking)
func (d *Downloader) sendProgress(progress DownloadProgress) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}
	select {
	case d.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

// Close closes the progress channel. Updates from downloads still in flight are dropped.
func (d *Downloader) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.closed {
		d.closed = true
		close(d.progressChan)
	}
}
