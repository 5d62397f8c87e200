package shell

import (
	"os"
	"strings"
)

// ANSI color codes for terminal output.
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"

	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"

	ColorBrightRed    = "\033[91m"
	ColorBrightGreen  = "\033[92m"
	ColorBrightYellow = "\033[93m"
	ColorBrightCyan   = "\033[96m"
)

// ColorSupported checks if the terminal supports colors.
func ColorSupported() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}

	term := os.Getenv("TERM")
	if term == "" {
		return false
	}

	// Check for common color-supporting terminals
	colorTerms := []string{"xterm", "screen", "tmux", "color", "ansi"}
	for _, colorTerm := range colorTerms {
		if strings.Contains(strings.ToLower(term), colorTerm) {
			return true
		}
	}

	// Check COLORTERM environment variable
	return os.Getenv("COLORTERM") != ""
}

// Palette colorizes console output, or leaves it alone when disabled.
type Palette struct {
	enabled bool
}

// NewPalette creates a Palette with colors switched on or off explicitly.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// DetectPalette creates a Palette that is enabled when the terminal supports colors.
func DetectPalette() Palette {
	return NewPalette(ColorSupported())
}

// Enabled reports whether the palette emits color codes.
func (p Palette) Enabled() bool {
	return p.enabled
}

// Colorize wraps text with color codes if the palette is enabled.
func (p Palette) Colorize(text, color string) string {
	if !p.enabled {
		return text
	}
	return color + text + ColorReset
}

func (p Palette) Red(text string) string    { return p.Colorize(text, ColorRed) }
func (p Palette) Yellow(text string) string { return p.Colorize(text, ColorYellow) }
func (p Palette) Cyan(text string) string   { return p.Colorize(text, ColorCyan) }
func (p Palette) Gray(text string) string   { return p.Colorize(text, ColorGray) }
func (p Palette) Bold(text string) string   { return p.Colorize(text, ColorBold) }

func (p Palette) Success(text string) string { return p.Colorize(text, ColorBrightGreen) }
func (p Palette) Error(text string) string   { return p.Colorize(text, ColorBrightRed) }
func (p Palette) Warning(text string) string { return p.Colorize(text, ColorBrightYellow) }
func (p Palette) Info(text string) string    { return p.Colorize(text, ColorBrightCyan) }

// Header creates a bold colored header.
func (p Palette) Header(text string) string {
	if !p.enabled {
		return text
	}
	return ColorBold + ColorBrightCyan + text + ColorReset
}

// Separator creates a separator line of the given length.
func (p Palette) Separator(char string, length int) string {
	return p.Yellow(strings.Repeat(char, length))
}
