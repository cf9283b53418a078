package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Title != "Time To Retirement" {
		t.Errorf("got title %q", cfg.Title)
	}
	if len(cfg.Messages) != len(DefaultMessages) {
		t.Errorf("got %d messages, want %d", len(cfg.Messages), len(DefaultMessages))
	}
	if !cfg.EndDate.After(cfg.StartDate) {
		t.Error("default end should be after start")
	}
	if cfg.Typing.TypeDelay != 100*time.Millisecond {
		t.Errorf("got type delay %v, want 100ms", cfg.Typing.TypeDelay)
	}
	if cfg.Typing.ForwardHold != 150*time.Millisecond || cfg.Typing.EraseHold != 50*time.Millisecond {
		t.Errorf("got holds %v/%v, want 150ms/50ms", cfg.Typing.ForwardHold, cfg.Typing.EraseHold)
	}

	// Default must not share the package-level message slice.
	cfg.Messages[0] = "changed"
	if DefaultMessages[0] == "changed" {
		t.Error("Default() aliased DefaultMessages")
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Error("should return default config")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "config.json",
			content: `{
				"title": "Launch",
				"endDate": "2030-01-02T03:04:05",
				"messages": ["one", "two"],
				"footerUrl": "https://example.com/",
				"ui": {"scanlines": false, "theme": "amber", "phosphor": "#33FF99"},
				"typing": {"typeDelay": "40ms"}
			}`,
		},
		{
			name: "toml",
			file: "config.toml",
			content: `
title = "Launch"
endDate = "2030-01-02T03:04:05"
messages = ["one", "two"]
footerUrl = "https://example.com/"

[ui]
scanlines = false
theme = "amber"
phosphor = "#33FF99"

[typing]
typeDelay = "40ms"
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `
title: Launch
endDate: "2030-01-02T03:04:05"
messages:
  - one
  - two
footerUrl: https://example.com/
ui:
  scanlines: false
  theme: amber
  phosphor: "#33FF99"
typing:
  typeDelay: 40ms
`,
		},
	}

	wantEnd := time.Date(2030, 1, 2, 3, 4, 5, 0, time.Local)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadFrom failed: %v", err)
			}
			if cfg.Title != "Launch" {
				t.Errorf("got title %q, want Launch", cfg.Title)
			}
			if !cfg.EndDate.Equal(wantEnd) {
				t.Errorf("got end %v, want %v", cfg.EndDate, wantEnd)
			}
			if len(cfg.Messages) != 2 || cfg.Messages[1] != "two" {
				t.Errorf("got messages %q", cfg.Messages)
			}
			if cfg.FooterURL != "https://example.com/" {
				t.Errorf("got footer url %q", cfg.FooterURL)
			}
			if cfg.UI.Scanlines {
				t.Error("scanlines should be disabled")
			}
			if cfg.UI.Theme != "amber" {
				t.Errorf("got theme %q, want amber", cfg.UI.Theme)
			}
			if cfg.UI.Phosphor != "#33FF99" {
				t.Errorf("got phosphor %q", cfg.UI.Phosphor)
			}
			if cfg.Typing.TypeDelay != 40*time.Millisecond {
				t.Errorf("got type delay %v, want 40ms", cfg.Typing.TypeDelay)
			}
			// Unset values keep their defaults.
			if !cfg.UI.ShowKeyboard {
				t.Error("showKeyboard should still be enabled (default)")
			}
			if cfg.Typing.HoldDelay != 3*time.Second {
				t.Errorf("got hold delay %v, want default 3s", cfg.Typing.HoldDelay)
			}
		})
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	if _, err := LoadFrom(writeFile(t, "config.json", `{invalid`)); err == nil {
		t.Error("should error on invalid JSON")
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	if _, err := LoadFrom(writeFile(t, "config.toml", `title = `)); err == nil {
		t.Error("should error on invalid TOML")
	}
}

func TestLoadFrom_BadValuesKeepDefaults(t *testing.T) {
	cfg, err := LoadFrom(writeFile(t, "config.json", `{
		"startDate": "someday",
		"typing": {"eraseDelay": "fast"}
	}`))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	def := Default()
	if !cfg.StartDate.Equal(def.StartDate) {
		t.Errorf("got start %v, want default %v", cfg.StartDate, def.StartDate)
	}
	if cfg.Typing.EraseDelay != def.Typing.EraseDelay {
		t.Errorf("got erase delay %v, want default", cfg.Typing.EraseDelay)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Title = ""
	cfg.Messages = nil
	cfg.Typing.EraseHold = -1
	cfg.Input.HoldDuration = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
	if cfg.Title == "" || len(cfg.Messages) == 0 {
		t.Error("empty title and messages should be replaced")
	}
	if cfg.Typing.EraseHold != 50*time.Millisecond {
		t.Errorf("got %v, want 50ms after validation", cfg.Typing.EraseHold)
	}
	if cfg.Input.HoldDuration != 120*time.Millisecond {
		t.Errorf("got %v, want 120ms after validation", cfg.Input.HoldDuration)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2046-06-01T12:00:00", time.Date(2046, 6, 1, 12, 0, 0, 0, time.Local), true},
		{"2046-06-01T12:00", time.Date(2046, 6, 1, 12, 0, 0, 0, time.Local), true},
		{"2046-06-01", time.Date(2046, 6, 1, 0, 0, 0, 0, time.Local), true},
		{" 2046-06-01 08:30 ", time.Date(2046, 6, 1, 8, 30, 0, 0, time.Local), true},
		{"2046-06-01T12:00:00Z", time.Date(2046, 6, 1, 12, 0, 0, 0, time.UTC), true},
		{"June 1st", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseDate(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if tt.ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	cp := cfg.Clone()
	cp.Messages[0] = "changed"
	cp.Title = "other"
	if cfg.Messages[0] == "changed" || cfg.Title == "other" {
		t.Error("Clone shares state with the original")
	}
}
