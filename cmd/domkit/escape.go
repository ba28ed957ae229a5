package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/domkit/internal/dom"
)

func newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [TEXT...]",
		Short: "Escape HTML special characters (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			_, err := io.WriteString(cmd.OutOrStdout(), dom.EscapeHTML(text))
			if err == nil && len(args) > 0 {
				_, err = io.WriteString(cmd.OutOrStdout(), "\n")
			}
			return err
		},
	}
}
