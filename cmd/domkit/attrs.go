package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/domkit/internal/dom"
)

func newAttrsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attrs",
		Short: "Set or remove attributes on matching elements and print the document",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set FILE SELECTOR KEY=VALUE...",
		Short: "Set attributes on every element matching SELECTOR",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := parseAssignments(args[2:])
			if err != nil {
				return err
			}
			return editDocument(cmd, root, args[0], args[1], func(d *dom.Document) error {
				nodes, err := d.SelectAll(args[1])
				if err != nil {
					return err
				}
				for _, n := range nodes {
					dom.SetAttributes(n, attrs)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove FILE SELECTOR NAME...",
		Short: "Remove attributes from every element matching SELECTOR",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editDocument(cmd, root, args[0], args[1], func(d *dom.Document) error {
				nodes, err := d.SelectAll(args[1])
				if err != nil {
					return err
				}
				for _, n := range nodes {
					dom.RemoveAttributes(n, args[2:]...)
				}
				return nil
			})
		},
	})

	return cmd
}

func editDocument(cmd *cobra.Command, root *rootFlags, path, selector string, edit func(*dom.Document) error) error {
	app, err := root.load(cmd)
	if err != nil {
		return err
	}
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	if err := edit(doc); err != nil {
		return err
	}
	app.log.WithFields(map[string]any{"file": path, "selector": selector}).Debug("document edited")
	return doc.Render(cmd.OutOrStdout())
}

func parseAssignments(args []string) (map[string]string, error) {
	attrs := make(map[string]string, len(args))
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("attribute %q must look like KEY=VALUE", a)
		}
		attrs[key] = value
	}
	return attrs, nil
}
