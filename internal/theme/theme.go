// Package theme wires a checkbox to the document-level theme attribute.
package theme

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/domkit/internal/dom"
	"github.com/alexisbeaulieu97/domkit/internal/logger"
	domerrors "github.com/alexisbeaulieu97/domkit/pkg/errors"
)

// ChangeEvent is the event type the toggle listens for.
const ChangeEvent = "change"

// Options configures a Toggle.
type Options struct {
	Selector  string
	Attribute string
	OnTrue    string
	Logger    *logger.Logger
}

// DefaultOptions returns the stock switch selector, attribute and dark theme.
func DefaultOptions() Options {
	return Options{
		Selector:  ".switch__input",
		Attribute: "data-theme",
		OnTrue:    "dark",
	}
}

// Toggle applies opts.OnTrue to the document element while its input is checked.
type Toggle struct {
	doc   *dom.Document
	input *html.Node
	opts  Options
}

// Bind locates the input matching opts.Selector and listens for change events on it.
func Bind(doc *dom.Document, opts Options) (*Toggle, error) {
	if doc == nil {
		return nil, domerrors.NewInvalidArgumentError("theme.Bind", "document is nil")
	}
	if opts.Attribute == "" {
		return nil, domerrors.NewInvalidArgumentError("theme.Bind", "attribute name is empty")
	}
	input, err := doc.Select(opts.Selector)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, fmt.Errorf("theme toggle: no element matches %q", opts.Selector)
	}

	t := &Toggle{doc: doc, input: input, opts: opts}
	doc.AddEventListener(input, ChangeEvent, t.handle)
	opts.Logger.WithFields(map[string]any{"selector": opts.Selector, "attribute": opts.Attribute}).Debug("theme toggle bound")
	return t, nil
}

// Input returns the bound input element.
func (t *Toggle) Input() *html.Node {
	return t.input
}

// Change dispatches a change event for the input with the given checked state.
func (t *Toggle) Change(checked bool) {
	t.doc.Dispatch(dom.Event{Type: ChangeEvent, Target: t.input, Checked: checked})
}

// Current returns the theme attribute on the document element, if set.
func (t *Toggle) Current() (string, bool) {
	return dom.Attribute(t.doc.DocumentElement(), t.opts.Attribute)
}

func (t *Toggle) handle(ev dom.Event) {
	root := t.doc.DocumentElement()
	if root == nil {
		return
	}
	if ev.Checked {
		dom.SetAttribute(root, t.opts.Attribute, t.opts.OnTrue)
		dom.SetAttribute(t.input, "checked", "")
	} else {
		dom.RemoveAttributes(root, t.opts.Attribute)
		dom.RemoveAttributes(t.input, "checked")
	}
	t.opts.Logger.WithFields(map[string]any{"checked": ev.Checked}).Debug("theme changed")
}
