package render

import (
	"github.com/fatih/color"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// valueOrNone prints the absence marker for missing receipt fields
func valueOrNone(v *string) string {
	if v == nil {
		return "None"
	}
	return *v
}
