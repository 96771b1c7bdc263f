package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cointray/change"
	"github.com/katalvlaran/cointray/config"
)

func newChangeCmd() *cobra.Command {
	var denoms []int
	cmd := &cobra.Command{
		Use:   "change AMOUNT...",
		Short: "Print the fewest coins for each amount",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := change.New(denoms...)
			if err != nil {
				return err
			}
			for _, arg := range args {
				amount, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("amount %q is not an integer", arg)
				}
				coins, err := m.Change(amount)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %v (%d coins)\n", amount, coins, len(coins))
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&denoms, "denoms", change.US().Values(), "coin system (must include 1)")

	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default search configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Default().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
