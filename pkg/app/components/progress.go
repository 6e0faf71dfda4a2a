package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kerbaras/gameshelf/pkg/app/styles"
	"github.com/kerbaras/gameshelf/pkg/data"
	"github.com/kerbaras/gameshelf/pkg/services"
)

type ProgressTracker struct {
	downloads map[string]*services.DownloadProgress
	width     int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{
		downloads: make(map[string]*services.DownloadProgress),
		width:     width,
	}
}

func progressKey(game string, platform data.Action) string {
	return game + ":" + platform.String()
}

func (p *ProgressTracker) Update(progress services.DownloadProgress) {
	key := progressKey(progress.Game, progress.Platform)
	if progress.Status == "complete" {
		delete(p.downloads, key)
		return
	}
	prog := progress
	p.downloads[key] = &prog
}

func (p *ProgressTracker) SetWidth(width int) {
	p.width = width
}

// Remove drops a download once its outcome has been reported elsewhere.
func (p *ProgressTracker) Remove(game string, platform data.Action) {
	delete(p.downloads, progressKey(game, platform))
}

func (p *ProgressTracker) HasActive() bool {
	return len(p.downloads) > 0
}

func (p *ProgressTracker) View() string {
	if len(p.downloads) == 0 {
		return ""
	}

	keys := make([]string, 0, len(p.downloads))
	for k := range p.downloads {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Active Downloads"))
	b.WriteString("\n\n")

	for _, k := range keys {
		progress := p.downloads[k]
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf("%s (%s)", progress.Game, progress.Platform)))
		b.WriteString("\n")

		statusText := fmt.Sprintf("%s %s", progress.Status, formatBytes(progress.Written))
		if progress.Total > 0 {
			percentage := float64(progress.Written) / float64(progress.Total) * 100
			statusText = fmt.Sprintf("%s (%s/%s - %.0f%%)",
				progress.Status, formatBytes(progress.Written), formatBytes(progress.Total), percentage)

			b.WriteString(renderProgressBar(progress.Written, progress.Total, p.width-4))
			b.WriteString("\n")
		}

		b.WriteString(styles.StatusStyle(progress.Status).Render(statusText))
		b.WriteString("\n")

		if progress.Error != nil {
			b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", progress.Error)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderProgressBar(current, total int64, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
