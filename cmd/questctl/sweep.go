package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSweepCombosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-combos",
		Short: "Expire every combo whose window has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			n, err := e.svcs.Game.ExpireCombos(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "expired %d combos\n", n)
			return nil
		},
	}
}
