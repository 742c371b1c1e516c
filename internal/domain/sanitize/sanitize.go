// Package sanitize escapes markup characters in user-entered text.
package sanitize

import "strings"

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces the five markup characters & < > " ' with their character
// references. All other characters pass through unchanged.
//
// Escape is not idempotent: an already escaped "&amp;" becomes "&amp;amp;".
// Apply it once to the latest raw value, never to a previous result.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return markupEscaper.Replace(s)
}
