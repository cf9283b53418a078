package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Title      string
	StartDate  time.Time
	EndDate    time.Time
	Messages   []string
	FooterText string
	FooterURL  string

	UI     UIConfig
	Typing TypingConfig
	Input  InputConfig
}

// UIConfig configures screen effects.
type UIConfig struct {
	Theme        string // phosphor theme: green, amber, white
	Phosphor     string // optional #RRGGBB; derives a custom theme and wins over Theme
	Scanlines    bool
	ShowKeyboard bool
	Intro        bool // title warm-up animation on start
}

// TypingConfig configures the caption typewriter and the keyboard animation.
type TypingConfig struct {
	TypeDelay   time.Duration // per character while typing
	HoldDelay   time.Duration // full message on screen
	EraseDelay  time.Duration // per character while erasing
	ForwardHold time.Duration // how long a typed key stays pressed
	EraseHold   time.Duration // how long backspace stays pressed
}

// InputConfig configures live keyboard echo.
type InputConfig struct {
	HoldDuration time.Duration // how long a real key press stays lit
}

// DefaultMessages is the caption sequence used when none is configured or
// the configured list cannot be parsed.
var DefaultMessages = []string{
	"Application Developer Single Sign On (SSO) - January 2006 - January 2008",
	"Senior Application Developer EAS - January 2008 - February 2011",
	"Senior Application Developer SE&I - February 2011 - April 2013",
	"Senior Software Engineer Rental Car Services - April 2013 - March 2016",
	"Principal Engineer Rental Car Services - March 2016 - March 2018",
	"Distinguished Engineer Rental Car Services - March 2018 - March 2024",
	"Senior Director Rental Car Services - March 2024 - October 2025",
	"Mobility Search & Book Development Manager - October 2025 - Present",
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Title:     "Time To Retirement",
		StartDate: time.Date(2006, time.June, 1, 12, 0, 0, 0, time.Local),
		EndDate:   time.Date(2046, time.June, 1, 12, 0, 0, 0, time.Local),
		Messages:  append([]string(nil), DefaultMessages...),
		UI: UIConfig{
			Theme:        "green",
			Scanlines:    true,
			ShowKeyboard: true,
			Intro:        true,
		},
		Typing: TypingConfig{
			TypeDelay:   100 * time.Millisecond,
			HoldDelay:   3 * time.Second,
			EraseDelay:  75 * time.Millisecond,
			ForwardHold: 150 * time.Millisecond,
			EraseHold:   50 * time.Millisecond,
		},
		Input: InputConfig{
			HoldDuration: 120 * time.Millisecond,
		},
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Messages = append([]string(nil), c.Messages...)
	return &cp
}

// Validate replaces unusable values with defaults. End before start is
// allowed; the countdown simply reads as complete.
func (c *Config) Validate() error {
	def := Default()
	if c.Title == "" {
		c.Title = def.Title
	}
	if len(c.Messages) == 0 {
		c.Messages = def.Messages
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	fixDuration(&c.Typing.TypeDelay, def.Typing.TypeDelay)
	fixDuration(&c.Typing.HoldDelay, def.Typing.HoldDelay)
	fixDuration(&c.Typing.EraseDelay, def.Typing.EraseDelay)
	fixDuration(&c.Typing.ForwardHold, def.Typing.ForwardHold)
	fixDuration(&c.Typing.EraseHold, def.Typing.EraseHold)
	fixDuration(&c.Input.HoldDuration, def.Input.HoldDuration)
	return nil
}

func fixDuration(d *time.Duration, def time.Duration) {
	if *d <= 0 {
		*d = def
	}
}
