package dom

import (
	"strings"

	"golang.org/x/net/html"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML converts the characters & < > " ' into HTML entities.
func EscapeHTML(unsafe string) string {
	return htmlEscaper.Replace(unsafe)
}

// Layout reports rendered geometry for an element.
type Layout interface {
	OffsetHeight(n *html.Node) int
}

// ForceReflow reads the offset height of n through l, which makes a layout
// engine flush pending style changes. The value is discarded.
func ForceReflow(l Layout, n *html.Node) {
	if l == nil || n == nil {
		return
	}
	_ = l.OffsetHeight(n)
}
