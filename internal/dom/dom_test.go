package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	domerrors "github.com/alexisbeaulieu97/domkit/pkg/errors"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head><title>demo</title></head>
<body>
  <div id="app">
    <button class="btn primary">One</button>
    <button class="btn">Two</button>
  </div>
  <footer><button class="btn">Three</button></footer>
  <label class="switch"><input class="switch__input" type="checkbox"></label>
</body>
</html>`

func mustParse(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(page)
	require.NoError(t, err)
	return doc
}

func text(n *html.Node) string {
	if n == nil || n.FirstChild == nil {
		return ""
	}
	return n.FirstChild.Data
}

func attrKeys(n *html.Node) []string {
	keys := make([]string, 0, len(n.Attr))
	for _, a := range n.Attr {
		keys = append(keys, a.Key+"="+a.Val)
	}
	return keys
}

func TestSelectReturnsFirstMatch(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)

	btn, err := doc.Select(".btn")
	require.NoError(t, err)
	require.Equal(t, "One", text(btn))

	missing, err := doc.Select(".nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSelectAllRespectsScope(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)

	all, err := doc.SelectAll("button")
	require.NoError(t, err)
	require.Len(t, all, 3)

	app, err := Q("#app", doc.Root())
	require.NoError(t, err)
	require.NotNil(t, app)

	scoped, err := QA("button", app)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	require.Equal(t, "Two", text(scoped[1]))

	self, err := SelectAll("#app", app)
	require.NoError(t, err)
	require.Empty(t, self, "scope itself is not a descendant")
}

func TestSelectRejectsInvalidSelector(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)

	_, err := doc.Select("div[")
	var selErr *domerrors.SelectorError
	require.ErrorAs(t, err, &selErr)
	require.Equal(t, "div[", selErr.Selector)

	_, _, err = ToArray(")(", doc.Root())
	require.ErrorAs(t, err, &selErr)
}

func TestToArrayReportsEmptyMatch(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)

	nodes, ok, err := ToArray("footer button, #app button", doc.Root())
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, nodes, 3)

	nodes, ok, err = ToArray("table", doc.Root())
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, nodes)
}

func TestChildren(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)
	app, err := doc.Select("#app")
	require.NoError(t, err)
	require.Len(t, Children(app), 2)
	require.Nil(t, Children(nil))
}

func TestSetAndRemoveAttributes(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)
	btn, err := doc.Select(".btn.primary")
	require.NoError(t, err)

	SetAttributes(btn, map[string]string{
		"aria-pressed": "true",
		"Class":        "btn active",
		"data-index":   "0",
	})

	want := []string{"class=btn active", "aria-pressed=true", "data-index=0"}
	if diff := cmp.Diff(want, attrKeys(btn)); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}

	RemoveAttributes(btn, "ARIA-PRESSED", "missing", "class")
	if diff := cmp.Diff([]string{"data-index=0"}, attrKeys(btn)); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}

	v, ok := Attribute(btn, "data-index")
	require.True(t, ok)
	require.Equal(t, "0", v)

	_, ok = Attribute(btn, "class")
	require.False(t, ok)
}

func TestDocumentElementAndRender(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)
	root := doc.DocumentElement()
	require.NotNil(t, root)
	require.Equal(t, "html", root.Data)

	SetAttribute(root, "data-theme", "dark")
	require.Contains(t, doc.String(), `<html lang="en" data-theme="dark">`)
}

func TestDispatchRunsListenersInOrder(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)
	input, err := doc.Select(".switch__input")
	require.NoError(t, err)

	var seen []string
	doc.AddEventListener(input, "change", func(ev Event) { seen = append(seen, "first") })
	doc.AddEventListener(input, "change", func(ev Event) {
		require.True(t, ev.Checked)
		require.Same(t, input, ev.Target)
		seen = append(seen, "second")
	})
	doc.AddEventListener(input, "click", func(Event) { seen = append(seen, "click") })

	require.Equal(t, 2, doc.Dispatch(Event{Type: "change", Target: input, Checked: true}))
	require.Equal(t, []string{"first", "second"}, seen)

	require.Zero(t, doc.Dispatch(Event{Type: "change", Target: doc.Root()}))
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"&lt;script&gt;alert(&quot;XSS&quot;)&lt;/script&gt;",
		EscapeHTML(`<script>alert("XSS")</script>`),
	)
	require.Equal(t, "Tom &amp; Jerry&#039;s &amp;amp;", EscapeHTML("Tom & Jerry's &amp;"))
	require.Equal(t, "", EscapeHTML(""))
}

type countingLayout struct{ reads int }

func (c *countingLayout) OffsetHeight(*html.Node) int {
	c.reads++
	return 42
}

func TestForceReflowReadsOffsetHeight(t *testing.T) {
	t.Parallel()

	doc := mustParse(t)
	layout := &countingLayout{}
	ForceReflow(layout, doc.DocumentElement())
	ForceReflow(layout, nil)
	ForceReflow(nil, doc.DocumentElement())
	require.Equal(t, 1, layout.reads)
}

func TestBreakpoint(t *testing.T) {
	t.Parallel()

	v, ok := Breakpoint("md")
	require.True(t, ok)
	require.Equal(t, "48rem", v)

	_, ok = Breakpoint("huge")
	require.False(t, ok)
}
