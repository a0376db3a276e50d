package terminal

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color is a foreground color; the zero value leaves the terminal default in place
type Color struct {
	RGB
	set bool
}

// ColorDefault keeps the terminal's own foreground
var ColorDefault = Color{}

// NewColor wraps an explicit RGB value
func NewColor(r, g, b uint8) Color {
	return Color{RGB: RGB{R: r, G: g, B: b}, set: true}
}

// ColorFromTcell resolves a tcell named or RGB color, invalid colors map to ColorDefault
func ColorFromTcell(c tcell.Color) Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return ColorDefault
	}
	return NewColor(uint8(r), uint8(g), uint8(b))
}

// IsDefault reports whether the color leaves the terminal foreground untouched
func (c Color) IsDefault() bool {
	return !c.set
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 converts RGB to nearest 256-color palette index
// Lane palettes are a handful of saturated colors, so the grayscale ramp is checked only for near-neutral input
func RGBTo256(c RGB) uint8 {
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(abs(int(c.R)-gray), abs(int(c.G)-gray), abs(int(c.B)-gray))

	cube := 16 + 36*cubeIndex[c.R] + 6*cubeIndex[c.G] + cubeIndex[c.B]
	if maxDiff >= 10 || gray < 4 || gray > 243 {
		return cube
	}

	grayIdx := 232 + (gray-8)/10
	if grayIdx > 255 {
		grayIdx = 255
	}
	grayLevel := 8 + (grayIdx-232)*10
	grayDist := abs(int(c.R)-grayLevel) + abs(int(c.G)-grayLevel) + abs(int(c.B)-grayLevel)
	cubeDist := abs(int(c.R)-int(cubeValues[cubeIndex[c.R]])) +
		abs(int(c.G)-int(cubeValues[cubeIndex[c.G]])) +
		abs(int(c.B)-int(cubeValues[cubeIndex[c.B]]))
	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode resolves a --color flag value, unknown values fall back to detection
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}
