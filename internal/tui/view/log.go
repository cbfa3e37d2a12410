package view

import (
	"electrodes/internal/tui/design"
	"electrodes/internal/tui/utils"
	"strings"
)

// PrepareLogContent applies color styles based on log level keywords. Lines
// wider than maxWidth are cut with an ellipsis; a maxWidth of 0 keeps them whole.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		if maxWidth > 0 {
			rawLine = utils.Ellipsize(rawLine, maxWidth)
		}
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
