package color

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Initialize sets whether lipgloss resolves adaptive colours for a dark background.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// DetectDarkMode guesses the terminal background from COLORFGBG.
func DetectDarkMode(lookup LookupFunc) bool {
	v, ok := lookup("COLORFGBG")
	if !ok || v == "" {
		return true
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	// ANSI 7 (white) and 9-15 (bright) are light backgrounds.
	return !(bg == 7 || (bg >= 9 && bg <= 15))
}

// NoColor reports whether NO_COLOR is set to a non-empty value.
func NoColor(lookup LookupFunc) bool {
	v, ok := lookup("NO_COLOR")
	return ok && v != ""
}

// ApplyProfile forces the ASCII profile when colour output is disabled.
func ApplyProfile(lookup LookupFunc) {
	if NoColor(lookup) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ProfileName describes the active lipgloss colour profile.
func ProfileName() string {
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return "TrueColor"
	case termenv.ANSI256:
		return "ANSI256"
	case termenv.ANSI:
		return "ANSI"
	default:
		return "Ascii"
	}
}
