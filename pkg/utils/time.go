package utils

import "time"

// FormatTimestamp renders a backend RFC3339 timestamp for display. The
// raw string comes back unchanged when it does not parse.
func FormatTimestamp(s string) string {
	if s == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return parsed.Local().Format("2006-01-02 15:04")
}
