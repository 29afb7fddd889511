// internal/app/system/textclean/textclean.go
package textclean

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Replies are sent with Telegram's HTML parse mode, so any markup typed by
// an admin into a title or description would otherwise be interpreted (or
// rejected) by Telegram when echoed back. Strip returns text with every
// HTML tag removed; the surrounding whitespace is trimmed as well.
var policy = bluemonday.StrictPolicy()

// Strip removes all HTML markup from user-entered text. The sanitizer
// entity-escapes what it keeps, so the result is unescaped back to plain
// text; rendering code escapes again right before sending.
func Strip(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
