package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	configDir  = ".config/greenscreen"
	configFile = "config.json"
)

// rawConfig is the decoding intermediary shared by every file format.
type rawConfig struct {
	Title      string          `json:"title" toml:"title" yaml:"title"`
	StartDate  string          `json:"startDate" toml:"startDate" yaml:"startDate"`
	EndDate    string          `json:"endDate" toml:"endDate" yaml:"endDate"`
	Messages   []string        `json:"messages" toml:"messages" yaml:"messages"`
	FooterText string          `json:"footerText" toml:"footerText" yaml:"footerText"`
	FooterURL  string          `json:"footerUrl" toml:"footerUrl" yaml:"footerUrl"`
	UI         rawUIConfig     `json:"ui" toml:"ui" yaml:"ui"`
	Typing     rawTypingConfig `json:"typing" toml:"typing" yaml:"typing"`
	Input      rawInputConfig  `json:"input" toml:"input" yaml:"input"`
}

type rawUIConfig struct {
	Theme        string `json:"theme" toml:"theme" yaml:"theme"`
	Phosphor     string `json:"phosphor" toml:"phosphor" yaml:"phosphor"`
	Scanlines    *bool  `json:"scanlines" toml:"scanlines" yaml:"scanlines"`
	ShowKeyboard *bool  `json:"showKeyboard" toml:"showKeyboard" yaml:"showKeyboard"`
	Intro        *bool  `json:"intro" toml:"intro" yaml:"intro"`
}

type rawTypingConfig struct {
	TypeDelay   string `json:"typeDelay" toml:"typeDelay" yaml:"typeDelay"`
	HoldDelay   string `json:"holdDelay" toml:"holdDelay" yaml:"holdDelay"`
	EraseDelay  string `json:"eraseDelay" toml:"eraseDelay" yaml:"eraseDelay"`
	ForwardHold string `json:"forwardHold" toml:"forwardHold" yaml:"forwardHold"`
	EraseHold   string `json:"eraseHold" toml:"eraseHold" yaml:"eraseHold"`
}

type rawInputConfig struct {
	HoldDuration string `json:"holdDuration" toml:"holdDuration" yaml:"holdDuration"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path. If path is empty, uses
// ~/.config/greenscreen/config.json. The format follows the extension:
// .toml, .yaml/.yml, anything else is JSON.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := decode(path, data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode picks a decoder by file extension.
func decode(path string, data []byte, raw *rawConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), raw); err != nil {
			return fmt.Errorf("decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, raw); err != nil {
			return fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, raw); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	}
	return nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.Title != "" {
		cfg.Title = raw.Title
	}
	if raw.StartDate != "" {
		if t, err := ParseDate(raw.StartDate); err == nil {
			cfg.StartDate = t
		} else {
			slog.Warn("invalid startDate in config", "value", raw.StartDate, "err", err)
		}
	}
	if raw.EndDate != "" {
		if t, err := ParseDate(raw.EndDate); err == nil {
			cfg.EndDate = t
		} else {
			slog.Warn("invalid endDate in config", "value", raw.EndDate, "err", err)
		}
	}
	if len(raw.Messages) > 0 {
		cfg.Messages = append([]string(nil), raw.Messages...)
	}
	if raw.FooterText != "" {
		cfg.FooterText = raw.FooterText
	}
	if raw.FooterURL != "" {
		cfg.FooterURL = raw.FooterURL
	}

	// UI
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}
	if raw.UI.Phosphor != "" {
		cfg.UI.Phosphor = raw.UI.Phosphor
	}
	if raw.UI.Scanlines != nil {
		cfg.UI.Scanlines = *raw.UI.Scanlines
	}
	if raw.UI.ShowKeyboard != nil {
		cfg.UI.ShowKeyboard = *raw.UI.ShowKeyboard
	}
	if raw.UI.Intro != nil {
		cfg.UI.Intro = *raw.UI.Intro
	}

	// Typing
	mergeDuration(&cfg.Typing.TypeDelay, raw.Typing.TypeDelay)
	mergeDuration(&cfg.Typing.HoldDelay, raw.Typing.HoldDelay)
	mergeDuration(&cfg.Typing.EraseDelay, raw.Typing.EraseDelay)
	mergeDuration(&cfg.Typing.ForwardHold, raw.Typing.ForwardHold)
	mergeDuration(&cfg.Typing.EraseHold, raw.Typing.EraseHold)

	// Input
	mergeDuration(&cfg.Input.HoldDuration, raw.Input.HoldDuration)
}

func mergeDuration(dst *time.Duration, s string) {
	if s == "" {
		return
	}
	if d, err := time.ParseDuration(s); err == nil {
		*dst = d
	}
}

// dateLayouts are tried in order. Layouts without a zone use local time.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses an RFC 3339 timestamp or a local date/time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// FormatDate renders t in the local layout ParseDate accepts first.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(dateLayouts[0])
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
