package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/domkit/internal/theme"
)

func newThemeCmd(root *rootFlags) *cobra.Command {
	var checked bool

	cmd := &cobra.Command{
		Use:   "theme FILE",
		Short: "Bind the theme toggle, flip it and print the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd)
			if err != nil {
				return err
			}
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			opts := app.cfg.ThemeOptions()
			opts.Logger = app.log
			toggle, err := theme.Bind(doc, opts)
			if err != nil {
				return newCommandError("bind theme toggle", args[0], err, "Set theme.selector in the config to match your switch input.")
			}
			toggle.Change(checked)

			return doc.Render(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&checked, "checked", false, "Simulate the switch being checked")

	return cmd
}
