package integrations

import (
	"fmt"
	"io"

	"github.com/cli/browser"
)

// BrowserOpener opens links through the desktop's default handler.
type BrowserOpener struct{}

// NewBrowserOpener silences the launcher's own output, which would otherwise
// land on top of the terminal UI.
func NewBrowserOpener() *BrowserOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserOpener{}
}

func (o *BrowserOpener) Open(target string) error {
	if err := browser.OpenURL(target); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}
