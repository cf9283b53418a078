package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"

	"github.com/marcus/greenscreen/internal/app"
	"github.com/marcus/greenscreen/internal/config"
	"github.com/marcus/greenscreen/internal/keymap"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file (.json, .toml, .yaml)")
	paramsFlag   = flag.String("params", "", "URL-style overrides, e.g. 'endDate=2046-06-01&footerText=Me'")
	logPath      = flag.String("log", "", "write logs to this file instead of stderr")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	noWatch      = flag.Bool("no-watch", false, "do not reload the config file when it changes")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("greenscreen version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logOut, closeLog, err := openLog(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Browser helpers print to stdout, which belongs to the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = logOut

	// Load configuration
	path := *configPath
	if path == "" {
		path = config.ConfigPath()
	}
	base, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.ApplyParams(base, *paramsFlag)

	app.ApplyTheme(cfg)

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)

	opts := []app.Option{app.WithParams(*paramsFlag)}
	if !*noWatch && path != "" {
		w, err := config.Watch(path)
		if err != nil {
			slog.Warn("config hot reload disabled", "path", path, "err", err)
		} else {
			opts = append(opts, app.WithWatcher(w))
		}
	}

	model := app.New(cfg, km, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// openLog returns the log destination and its cleanup.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	// Fall back to VCS info
	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + shortRevision(revision)
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

// shortRevision returns the first 12 chars of a revision.
func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: greenscreen [options]\n\n")
		fmt.Fprintf(os.Stderr, "A green-screen retirement countdown with a live keyboard.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
