package data

import (
	"fmt"
	"strings"
)

// None marks a path field whose action is unavailable for a game.
const None = "none"

type GameRecord struct {
	Name            string `json:"name"`
	ImgPath         string `json:"imgpath"`
	GithubPath      string `json:"githubpath"`
	DownloadLinux   string `json:"downloadlinux"`
	DownloadWindows string `json:"downloadwindows"`
	Dev             bool   `json:"dev,omitempty"` // in development
}

// Action is one of the controls a game entry offers.
type Action int

const (
	ActionSource Action = iota
	ActionLinux
	ActionWindows
)

// Actions lists every action in display order.
var Actions = []Action{ActionSource, ActionLinux, ActionWindows}

func (a Action) String() string {
	switch a {
	case ActionSource:
		return "source"
	case ActionLinux:
		return "linux"
	case ActionWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// Label is the text shown on the control.
func (a Action) Label() string {
	switch a {
	case ActionSource:
		return "Source Code"
	case ActionLinux:
		return "Download for Linux"
	case ActionWindows:
		return "Download for Windows"
	default:
		return ""
	}
}

// IsDownload reports whether the action fetches a build rather than opening a page.
func (a Action) IsDownload() bool {
	return a == ActionLinux || a == ActionWindows
}

// Available reports whether a path field backs an enabled control.
func Available(path string) bool {
	return path != None
}

// Path returns the field backing the given action.
func (g GameRecord) Path(a Action) string {
	switch a {
	case ActionSource:
		return g.GithubPath
	case ActionLinux:
		return g.DownloadLinux
	case ActionWindows:
		return g.DownloadWindows
	default:
		return None
	}
}

// Action returns the target of an action and whether its control is enabled.
func (g GameRecord) Action(a Action) (string, bool) {
	path := g.Path(a)
	return path, Available(path)
}

// Anchor is the in-page target a sidebar link points at.
func (g GameRecord) Anchor() string {
	return "#" + g.Name
}

// ParsePlatform maps a platform name to its download action.
func ParsePlatform(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linux":
		return ActionLinux, nil
	case "windows":
		return ActionWindows, nil
	default:
		return 0, fmt.Errorf("unknown platform %q (want linux or windows)", name)
	}
}
