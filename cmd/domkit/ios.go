package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/domkit/internal/platform"
)

func newIOSCmd() *cobra.Command {
	nav := platform.Navigator{}

	cmd := &cobra.Command{
		Use:   "ios",
		Short: "Report whether a navigator platform describes an iOS device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), platform.IsIOSDevice(&nav))
			return nil
		},
	}

	cmd.Flags().StringVar(&nav.Platform, "platform", "", "navigator.platform value")
	cmd.Flags().IntVar(&nav.MaxTouchPoints, "touch-points", 0, "navigator.maxTouchPoints value")

	return cmd
}
