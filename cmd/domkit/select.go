package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/domkit/internal/dom"
)

type selectOptions struct {
	all  bool
	attr string
}

func newSelectCmd(root *rootFlags) *cobra.Command {
	opts := &selectOptions{}

	cmd := &cobra.Command{
		Use:   "select FILE SELECTOR",
		Short: "Print elements of an HTML file matching a CSS selector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd)
			if err != nil {
				return err
			}
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			var nodes []*html.Node
			if opts.all {
				matched, ok, err := dom.ToArray(args[1], doc.Root())
				if err != nil {
					return err
				}
				if !ok {
					app.log.WithFields(map[string]any{"selector": args[1]}).Warn("no elements matched")
				}
				nodes = matched
			} else {
				node, err := doc.Select(args[1])
				if err != nil {
					return err
				}
				if node != nil {
					nodes = append(nodes, node)
				}
			}

			return renderMatches(cmd.OutOrStdout(), nodes, opts.attr)
		},
	}

	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Print every match instead of the first")
	cmd.Flags().StringVar(&opts.attr, "attr", "", "Print only the value of this attribute")

	return cmd
}

func renderMatches(w io.Writer, nodes []*html.Node, attr string) error {
	st := newStyles(w)
	for i, n := range nodes {
		if attr != "" {
			v, ok := dom.Attribute(n, attr)
			if !ok {
				continue
			}
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", st.index.Render(fmt.Sprintf("[%d]", i)), describe(st, n)); err != nil {
			return err
		}
	}
	return nil
}

func describe(st styles, n *html.Node) string {
	var b strings.Builder
	b.WriteString(st.tag.Render(n.Data))
	for _, a := range n.Attr {
		b.WriteString(" ")
		b.WriteString(st.attr.Render(a.Key))
		b.WriteString(`="`)
		b.WriteString(dom.EscapeHTML(a.Val))
		b.WriteString(`"`)
	}
	if txt := strings.TrimSpace(textContent(n)); txt != "" {
		b.WriteString(" ")
		b.WriteString(st.muted.Render(txt))
	}
	return b.String()
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
