package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cointray/change"
	"github.com/katalvlaran/cointray/config"
	"github.com/katalvlaran/cointray/prices"
	"github.com/katalvlaran/cointray/simulate"
	"github.com/katalvlaran/cointray/till"
)

func newSimulateCmd(root *rootFlags) *cobra.Command {
	var (
		denoms   []int
		path     string
		length   int
		seed     int64
		strategy string
		trace    bool
	)
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate one coin system and report tray statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			set, err := change.NewSet(denoms...)
			if err != nil {
				return err
			}
			s, err := till.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			data, err := prices.LoadFile(path)
			if err != nil {
				return err
			}
			src, err := prices.NewList(data, seed)
			if err != nil {
				return err
			}
			sim, err := simulate.NewForSet(set, src, till.WithStrategy(s))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if trace {
				sim.OnTransaction(func(step int, r till.Receipt, count int) {
					fmt.Fprintf(out, "%5d bill=%-6d gave=%v got=%v tray=%d\n",
						step, r.Bill, r.Surrendered, r.Received, count)
				})
			}

			logger.Info("simulate_start",
				"set", set.String(), "length", length, "seed", seed, "strategy", s.String())
			st, err := sim.RunStats(length)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "system:  %s\n", set)
			fmt.Fprintf(out, "average: %.3f coins over %d payments\n", st.Mean, st.Transactions)
			fmt.Fprintf(out, "min/max: %d/%d\n", st.Min, st.Max)
			fmt.Fprintf(out, "final:   %s\n", sim.Till())
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntSliceVar(&denoms, "denoms", change.US().Values(), "coin system to simulate (must include 1)")
	fl.StringVar(&path, "prices", def.Prices, "price list, one integer (cents) per line")
	fl.IntVar(&length, "length", def.Length, "payments to simulate")
	fl.Int64Var(&seed, "seed", def.Seed, "random seed for the bill stream")
	fl.StringVar(&strategy, "strategy", def.Strategy, "payment strategy: whole or subset")
	fl.BoolVar(&trace, "trace", false, "print every transaction")

	return cmd
}
