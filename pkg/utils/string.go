package utils

import "github.com/mattn/go-runewidth"

// TruncateString shortens str to at most maxWidth display columns, ending in
// an ellipsis when cut.
func TruncateString(str string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if runewidth.StringWidth(str) <= maxWidth {
		return str
	}

	return runewidth.Truncate(str, maxWidth, "...")
}

// PadRight pads str with spaces to width display columns.
func PadRight(str string, width int) string {
	return runewidth.FillRight(str, width)
}
