package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const achromaticEpsilon = 1e-6

// minPhosphorContrast is the lowest contrast a derived phosphor may have
// against its screen.
const minPhosphorContrast = 4.5

// RGB is a color with float channels (0-255).
type RGB struct {
	R, G, B float64
}

// ParseHex parses a #RRGGBB color.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("color %q: want #RRGGBB", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return RGB{R: float64(v >> 16 & 0xff), G: float64(v >> 8 & 0xff), B: float64(v & 0xff)}, nil
}

// HexToRGB converts #RRGGBB to RGB. Malformed input yields black.
func HexToRGB(hex string) RGB {
	c, _ := ParseHex(hex)
	return c
}

// RGBToHex formats c as lowercase #rrggbb.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

// HexToHSL converts a hex color to HSL (h: 0-360, s: 0-1, l: 0-1).
func HexToHSL(hex string) (h, s, l float64) {
	rgb := HexToRGB(hex)
	r := rgb.R / 255.0
	g := rgb.G / 255.0
	b := rgb.B / 255.0

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l = (hi + lo) / 2.0

	if hi-lo < achromaticEpsilon {
		return 0, 0, l
	}

	d := hi - lo
	if l > 0.5 {
		s = d / (2.0 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s, l
}

// HSLToHex converts HSL (h: 0-360, s: 0-1, l: 0-1) to a hex color.
func HSLToHex(h, s, l float64) string {
	if s == 0 {
		v := l * 255
		return RGBToHex(RGB{R: v, G: v, B: v})
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hNorm := h / 360.0
	return RGBToHex(RGB{
		R: hueToRGB(p, q, hNorm+1.0/3.0) * 255,
		G: hueToRGB(p, q, hNorm) * 255,
		B: hueToRGB(p, q, hNorm-1.0/3.0) * 255,
	})
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// Blend mixes two hex colors: (1-t)*c1 + t*c2, with t clamped to [0,1].
func Blend(c1, c2 string, t float64) string {
	t = math.Max(0, math.Min(1, t))
	a, b := HexToRGB(c1), HexToRGB(c2)
	return RGBToHex(RGB{
		R: a.R*(1-t) + b.R*t,
		G: a.G*(1-t) + b.G*t,
		B: a.B*(1-t) + b.B*t,
	})
}

// Lighten increases HSL lightness by pct (0-1).
func Lighten(hex string, pct float64) string {
	h, s, l := HexToHSL(hex)
	return HSLToHex(h, s, math.Min(1, l+pct))
}

// Luminance returns relative luminance (0-1).
func Luminance(hex string) float64 {
	rgb := HexToRGB(hex)
	return 0.2126*linearize(rgb.R/255) + 0.7152*linearize(rgb.G/255) + 0.0722*linearize(rgb.B/255)
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors (1-21).
func ContrastRatio(fg, bg string) float64 {
	l1, l2 := Luminance(fg), Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// PhosphorPalette derives a full palette from one phosphor color: a near
// black screen tinted with its hue, and dim and low tones blended toward
// that screen. The phosphor is lightened until it reads against the screen.
func PhosphorPalette(hex string) (ColorPalette, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return ColorPalette{}, err
	}
	phosphor := RGBToHex(c)
	h, s, _ := HexToHSL(phosphor)
	screen := HSLToHex(h, math.Min(s, 0.4), 0.07)

	for i := 0; i < 20 && ContrastRatio(phosphor, screen) < minPhosphorContrast; i++ {
		phosphor = Lighten(phosphor, 0.05)
	}

	return ColorPalette{
		Phosphor:    phosphor,
		PhosphorDim: Blend(screen, phosphor, 0.55),
		PhosphorLow: Blend(screen, phosphor, 0.2),
		Screen:      screen,
	}, nil
}
