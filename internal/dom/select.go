package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	domerrors "github.com/alexisbeaulieu97/domkit/pkg/errors"
)

func compile(selector string) (cascadia.SelectorGroup, error) {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, domerrors.NewSelectorError(selector, err)
	}
	return group, nil
}

// Select returns the first descendant of scope matching selector, or nil.
func Select(selector string, scope *html.Node) (*html.Node, error) {
	group, err := compile(selector)
	if err != nil {
		return nil, err
	}
	if scope == nil {
		return nil, nil
	}
	return cascadia.Query(scope, group), nil
}

// Q is shorthand for Select.
func Q(selector string, scope *html.Node) (*html.Node, error) {
	return Select(selector, scope)
}

// SelectAll returns every descendant of scope matching selector in document order.
func SelectAll(selector string, scope *html.Node) ([]*html.Node, error) {
	group, err := compile(selector)
	if err != nil {
		return nil, err
	}
	if scope == nil {
		return nil, nil
	}
	return cascadia.QueryAll(scope, group), nil
}

// QA is shorthand for SelectAll.
func QA(selector string, scope *html.Node) ([]*html.Node, error) {
	return SelectAll(selector, scope)
}

// ToArray collects the matches of selector under scope. The boolean is false
// when nothing matched.
func ToArray(selector string, scope *html.Node) ([]*html.Node, bool, error) {
	nodes, err := SelectAll(selector, scope)
	if err != nil {
		return nil, false, err
	}
	if len(nodes) == 0 {
		return nil, false, nil
	}
	return nodes, true, nil
}

// Children returns the element children of n as a slice.
func Children(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}
