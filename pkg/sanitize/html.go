package sanitize

import "strings"

var htmlReplacer = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#x27;",
	`/`, "&#x2f;",
)

// HTML escapes text so it can be dropped into markup as inert content.
// The slash is escaped too: the feed page reverses exactly this set.
func HTML(s string) string {
	return htmlReplacer.Replace(s)
}
