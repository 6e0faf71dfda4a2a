package data

import "testing"

func TestGameRecordActions(t *testing.T) {
	game := GameRecord{
		Name:            "Tetra",
		ImgPath:         "img/tetra.png",
		GithubPath:      "https://github.com/example/tetra",
		DownloadLinux:   "none",
		DownloadWindows: "builds/tetra.zip",
	}

	path, enabled := game.Action(ActionSource)
	if !enabled {
		t.Error("Expected source control to be enabled")
	}
	if path != "https://github.com/example/tetra" {
		t.Errorf("Expected source path to be the githubpath value, got '%s'", path)
	}

	if _, enabled := game.Action(ActionLinux); enabled {
		t.Error("Expected linux download to be disabled by the none sentinel")
	}

	path, enabled = game.Action(ActionWindows)
	if !enabled {
		t.Error("Expected windows download to be enabled")
	}
	if path != "builds/tetra.zip" {
		t.Errorf("Expected windows path 'builds/tetra.zip', got '%s'", path)
	}
}

func TestSentinelDisablesOnlyItsOwnControl(t *testing.T) {
	for _, disabled := range Actions {
		game := GameRecord{
			Name:            "Game",
			GithubPath:      "src",
			DownloadLinux:   "linux",
			DownloadWindows: "windows",
		}
		switch disabled {
		case ActionSource:
			game.GithubPath = None
		case ActionLinux:
			game.DownloadLinux = None
		case ActionWindows:
			game.DownloadWindows = None
		}

		for _, a := range Actions {
			_, enabled := game.Action(a)
			if a == disabled && enabled {
				t.Errorf("Expected %s to be disabled", a)
			}
			if a != disabled && !enabled {
				t.Errorf("Expected %s to stay enabled when %s is none", a, disabled)
			}
		}
	}
}

func TestAvailable(t *testing.T) {
	cases := map[string]bool{
		"none":        false,
		"None":        true,
		"":            true,
		"builds/a.gz": true,
	}
	for path, want := range cases {
		if got := Available(path); got != want {
			t.Errorf("Available(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestActionLabels(t *testing.T) {
	if ActionSource.Label() != "Source Code" {
		t.Errorf("Unexpected source label '%s'", ActionSource.Label())
	}
	if ActionLinux.Label() != "Download for Linux" {
		t.Errorf("Unexpected linux label '%s'", ActionLinux.Label())
	}
	if ActionWindows.Label() != "Download for Windows" {
		t.Errorf("Unexpected windows label '%s'", ActionWindows.Label())
	}
	if ActionSource.IsDownload() {
		t.Error("Source link is not a download")
	}
	if !ActionLinux.IsDownload() || !ActionWindows.IsDownload() {
		t.Error("Platform builds are downloads")
	}
}

func TestAnchor(t *testing.T) {
	game := GameRecord{Name: "Moose Run"}
	if game.Anchor() != "#Moose Run" {
		t.Errorf("Expected anchor '#Moose Run', got '%s'", game.Anchor())
	}
}

func TestParsePlatform(t *testing.T) {
	tests := map[string]Action{"linux": ActionLinux, "Windows": ActionWindows, " linux ": ActionLinux}
	for in, want := range tests {
		got, err := ParsePlatform(in)
		if err != nil {
			t.Errorf("ParsePlatform(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePlatform(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParsePlatform("source"); err == nil {
		t.Error("Expected an error for a non-download action")
	}
}
