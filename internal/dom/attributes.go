package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Attribute returns the value of the named attribute on n.
func Attribute(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	key := strings.ToLower(name)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets name to value on n, replacing an existing value in place.
func SetAttribute(n *html.Node, name, value string) {
	if n == nil {
		return
	}
	key := strings.ToLower(name)
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// SetAttributes sets every entry of attrs on n. New attributes are appended in
// key order so rendering is deterministic.
func SetAttributes(n *html.Node, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		SetAttribute(n, k, attrs[k])
	}
}

// RemoveAttributes deletes the named attributes from n. Missing names are ignored.
func RemoveAttributes(n *html.Node, names ...string) {
	if n == nil || len(names) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[strings.ToLower(name)] = struct{}{}
	}
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if _, ok := drop[a.Key]; ok && a.Namespace == "" {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}
