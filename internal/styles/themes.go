package styles

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var themeMu sync.RWMutex

// ColorPalette holds the colors a theme assigns.
type ColorPalette struct {
	Phosphor    string
	PhosphorDim string
	PhosphorLow string
	Screen      string
}

// Theme is a named phosphor palette.
type Theme struct {
	Name        string
	DisplayName string
	Colors      ColorPalette
}

var themeRegistry = map[string]Theme{
	"green": {
		Name:        "green",
		DisplayName: "P1 Green",
		Colors: ColorPalette{
			Phosphor:    "#00DD00",
			PhosphorDim: "#007A00",
			PhosphorLow: "#0F3D14",
			Screen:      "#0C1A0E",
		},
	},
	"amber": {
		Name:        "amber",
		DisplayName: "P3 Amber",
		Colors: ColorPalette{
			Phosphor:    "#FFB000",
			PhosphorDim: "#9C6A00",
			PhosphorLow: "#3D2A05",
			Screen:      "#1A1206",
		},
	},
	"white": {
		Name:        "white",
		DisplayName: "P4 White",
		Colors: ColorPalette{
			Phosphor:    "#E8E8E8",
			PhosphorDim: "#8A8A8A",
			PhosphorLow: "#333333",
			Screen:      "#111111",
		},
	},
}

var currentTheme = "green"

// IsValidTheme reports whether name is a registered theme.
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// ListThemes returns the registered theme names, sorted.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurrentThemeName returns the name of the applied theme.
func CurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// CustomTheme is the name ApplyPhosphor registers its palette under.
const CustomTheme = "custom"

// ApplyTheme switches the palette and rebuilds all styles. Unknown names
// fall back to green and report false.
func ApplyTheme(name string) bool {
	themeMu.Lock()
	theme, ok := themeRegistry[name]
	if !ok {
		theme = themeRegistry["green"]
	}
	currentTheme = theme.Name
	themeMu.Unlock()

	applyPalette(theme.Colors)
	return ok
}

// ApplyPhosphor derives a palette from a single #RRGGBB color, registers it
// as the custom theme, and applies it.
func ApplyPhosphor(hex string) error {
	colors, err := PhosphorPalette(hex)
	if err != nil {
		return err
	}

	themeMu.Lock()
	themeRegistry[CustomTheme] = Theme{Name: CustomTheme, DisplayName: "Custom " + colors.Phosphor, Colors: colors}
	currentTheme = CustomTheme
	themeMu.Unlock()

	applyPalette(colors)
	return nil
}

func applyPalette(c ColorPalette) {
	Phosphor = lipgloss.Color(c.Phosphor)
	PhosphorDim = lipgloss.Color(c.PhosphorDim)
	PhosphorLow = lipgloss.Color(c.PhosphorLow)
	Screen = lipgloss.Color(c.Screen)
	rebuildStyles()
}
