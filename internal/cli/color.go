package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode is the --color setting.
type ColorMode string

const (
	// ColorAuto colors output only when it goes to a terminal and
	// NO_COLOR is not set.
	ColorAuto ColorMode = "auto"

	// ColorAlways forces colors, even into pipes and files.
	ColorAlways ColorMode = "always"

	// ColorNever disables colors.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a string to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	mode := ColorMode(strings.ToLower(s))
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode: %q (valid: auto, always, never)", s)
	}
}

// Enabled decides whether output written to w should be colored.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
