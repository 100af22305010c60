// Package sanitize escapes untrusted text before the panel renders it.
package sanitize

import "strings"

// htmlReplacer makes a single left-to-right pass, so the entities it emits
// are never escaped again within one call. That gives the same result as
// replacing "&" first and the other characters after it.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces &, <, >, " and ' with HTML entities.
// Escaping already-escaped text escapes the "&" of every entity again.
func Escape(input string) string {
	if input == "" {
		return ""
	}
	return htmlReplacer.Replace(input)
}

// EscapeOptional escapes input, treating nil as empty
func EscapeOptional(input *string) string {
	if input == nil {
		return ""
	}
	return Escape(*input)
}
