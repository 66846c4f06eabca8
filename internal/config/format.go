package config

import "strings"

// Format selects the output representation of a composed post.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// NormalizeFormat maps user input to a Format, returning "" when unknown.
func NormalizeFormat(raw string) Format {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "markdown", "md":
		return FormatMarkdown
	case "html", "htm":
		return FormatHTML
	default:
		return ""
	}
}
