package dom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Event is a DOM event delivered to listeners registered on its target.
type Event struct {
	Type    string
	Target  *html.Node
	Checked bool
}

// Listener handles an Event.
type Listener func(Event)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node

	mu        sync.RWMutex
	listeners map[*html.Node]map[string][]Listener
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return NewDocument(root), nil
}

// ParseString parses an HTML document held in s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewDocument wraps an existing node tree.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root, listeners: make(map[*html.Node]map[string][]Listener)}
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// DocumentElement returns the <html> element, or nil for a fragment without one.
func (d *Document) DocumentElement() *html.Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			return c
		}
	}
	return nil
}

// Select returns the first element in the document matching selector.
func (d *Document) Select(selector string) (*html.Node, error) {
	return Select(selector, d.root)
}

// SelectAll returns every element in the document matching selector.
func (d *Document) SelectAll(selector string) ([]*html.Node, error) {
	return SelectAll(selector, d.root)
}

// Render writes the document as HTML to w.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// AddEventListener registers l for events of eventType targeting n.
func (d *Document) AddEventListener(n *html.Node, eventType string, l Listener) {
	if n == nil || l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	byType, ok := d.listeners[n]
	if !ok {
		byType = make(map[string][]Listener)
		d.listeners[n] = byType
	}
	byType[eventType] = append(byType[eventType], l)
}

// Dispatch delivers ev to the listeners of its target in registration order
// and reports how many ran.
func (d *Document) Dispatch(ev Event) int {
	d.mu.RLock()
	ls := append([]Listener(nil), d.listeners[ev.Target][ev.Type]...)
	d.mu.RUnlock()

	for _, l := range ls {
		l(ev)
	}
	return len(ls)
}
