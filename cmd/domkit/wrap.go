package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/domkit/internal/wrap"
)

func newWrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrap",
		Short: "Wrap an index into a range or list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "range MIN MAX VALUE",
		Short: "Wrap VALUE into the inclusive range [MIN, MAX]",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			got, err := wrap.Range(nums[0], nums[1], nums[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "item INDEX ITEM...",
		Short: "Print the item at INDEX, wrapping around either end",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args[:1])
			if err != nil {
				return err
			}
			got, err := wrap.Slice(args[1:], nums[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	})

	return cmd
}

func newRandomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random MIN MAX",
		Short: "Print a uniform random integer in [MIN, MAX]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			got, err := wrap.Random(nil, nums[0], nums[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i+1, a)
		}
		out[i] = n
	}
	return out, nil
}
