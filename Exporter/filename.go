package Exporter

import "strings"

// SafeFilename derives a download filename stem from the document title:
// every non-alphanumeric character becomes an underscore and the result is
// lowercased. An empty title falls back to "checklist".
func SafeFilename(title string) string {
	if title == "" {
		title = "checklist"
	}
	var b strings.Builder
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return strings.ToLower(b.String())
}
