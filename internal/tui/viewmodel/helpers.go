package viewmodel

import (
	"fmt"
	"strings"

	"github.com/venturelabs/vlops/internal/listing"
)

// TruncateString truncates a string to maxLen runes with an ellipsis.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:max(maxLen, 0)])
	}
	return string(runes[:maxLen-3]) + "..."
}

// SanitizeForDisplay removes potentially problematic characters for terminal display.
func SanitizeForDisplay(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// FormatScore renders an AI score, or a dash when there is none.
func FormatScore(score *int) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}

// FormatRate renders a percentage with one decimal.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// CycleOption returns the value after current in the sequence
// "all", options[0], options[1], ... and wraps back to "all". An unknown
// current value restarts the sequence.
func CycleOption(current string, options []string) string {
	if current == "" || current == listing.All {
		if len(options) == 0 {
			return listing.All
		}
		return options[0]
	}
	for i, o := range options {
		if o == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return listing.All
		}
	}
	return listing.All
}

// DescribeFilter renders the active parts of a filter, or "" for the
// default filter. categoryName labels the category dimension.
func DescribeFilter(f listing.Filter, categoryName string) string {
	if f.IsDefault() {
		return ""
	}

	var parts []string
	if f.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("search %q", f.SearchTerm))
	}
	if f.Status != "" && f.Status != listing.All {
		parts = append(parts, "status "+f.Status)
	}
	if f.Category != "" && f.Category != listing.All {
		parts = append(parts, categoryName+" "+f.Category)
	}
	return strings.Join(parts, ", ")
}
