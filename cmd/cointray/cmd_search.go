package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cointray/config"
	"github.com/katalvlaran/cointray/prices"
	"github.com/katalvlaran/cointray/search"
)

type searchFlags struct {
	configPath  string
	prices      string
	slots       []int
	varied      []int
	from, to    int
	length      int
	seed        int64
	workers     int
	strategy    string
	modulus     int
	independent bool
	top         int
	json        bool
	timeout     time.Duration
}

func newSearchCmd(root *rootFlags) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for the coin system with the smallest average tray",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, root, f)
		},
	}

	def := config.Default()
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML file with search parameters")
	fl.StringVar(&f.prices, "prices", def.Prices, "price list, one integer (cents) per line")
	fl.IntSliceVar(&f.slots, "slots", def.Slots, "non-unit denominations of the base system")
	fl.IntSliceVar(&f.varied, "vary", nil, "slot indices to vary (default all)")
	fl.IntVar(&f.from, "from", def.From, "smallest replacement value")
	fl.IntVar(&f.to, "to", def.To, "largest replacement value")
	fl.IntVar(&f.length, "length", def.Length, "payments simulated per candidate")
	fl.Int64Var(&f.seed, "seed", def.Seed, "random seed for the bill stream")
	fl.IntVar(&f.workers, "workers", def.Workers, "concurrent trials (0 = GOMAXPROCS)")
	fl.StringVar(&f.strategy, "strategy", def.Strategy, "payment strategy: whole or subset")
	fl.IntVar(&f.modulus, "modulus", def.Modulus, "change is computed modulo this value")
	fl.BoolVar(&f.independent, "independent", def.IndependentStreams, "give each candidate its own bill stream")
	fl.IntVar(&f.top, "top", def.Top, "also list the N best candidates")
	fl.BoolVar(&f.json, "json", false, "print the result as JSON")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort the search after this long (0 = no limit)")

	return cmd
}

// resolve merges the config file (if any) with explicitly set flags.
func (f *searchFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("prices") {
		cfg.Prices = f.prices
	}
	if fl.Changed("slots") {
		cfg.Slots = f.slots
	}
	if fl.Changed("vary") {
		cfg.Varied = f.varied
	}
	if fl.Changed("from") {
		cfg.From = f.from
	}
	if fl.Changed("to") {
		cfg.To = f.to
	}
	if fl.Changed("length") {
		cfg.Length = f.length
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fl.Changed("modulus") {
		cfg.Modulus = f.modulus
	}
	if fl.Changed("independent") {
		cfg.IndependentStreams = f.independent
	}
	if fl.Changed("top") {
		cfg.Top = f.top
	}

	return cfg, cfg.Validate()
}

func runSearch(cmd *cobra.Command, root *rootFlags, f *searchFlags) error {
	logger, err := root.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg, err := f.resolve(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.SearchOptions()
	if err != nil {
		return err
	}
	data, err := prices.LoadFile(cfg.Prices)
	if err != nil {
		return err
	}
	opts = append(opts, search.WithLogger(logger))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	res, err := search.Run(ctx, search.ListFactory(data), opts...)
	if err != nil {
		return err
	}

	if f.json {
		return writeSearchJSON(cmd.OutOrStdout(), res, cfg.Top)
	}
	writeSearchText(cmd.OutOrStdout(), res, cfg.Top)
	return nil
}

type trialReport struct {
	Slot          int     `json:"slot"`
	Replacement   int     `json:"replacement"`
	Denominations []int   `json:"denominations"`
	Score         float64 `json:"score"`
}

type searchReport struct {
	RunID     string        `json:"run_id"`
	Winner    []int         `json:"winner"`
	Score     float64       `json:"score"`
	Trials    int           `json:"trials"`
	ElapsedMs int64         `json:"elapsed_ms"`
	Top       []trialReport `json:"top,omitempty"`
}

func topTrials(res search.Result, n int) []trialReport {
	if n <= 0 {
		return nil
	}
	ranked := res.Ranked()
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]trialReport, n)
	for i, t := range ranked[:n] {
		out[i] = trialReport{
			Slot:          t.Candidate.Slot,
			Replacement:   t.Candidate.Replacement,
			Denominations: t.Candidate.Set.Values(),
			Score:         t.Score,
		}
	}
	return out
}

func writeSearchJSON(w io.Writer, res search.Result, top int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(searchReport{
		RunID:     res.RunID,
		Winner:    res.Winner.Candidate.Set.Values(),
		Score:     res.Winner.Score,
		Trials:    len(res.Trials),
		ElapsedMs: res.Elapsed.Milliseconds(),
		Top:       topTrials(res, top),
	})
}

func writeSearchText(w io.Writer, res search.Result, top int) {
	fmt.Fprintf(w, "The winner is: %s\n", res.Winner.Candidate.Set)
	fmt.Fprintf(w, "average tray: %.3f coins over %d candidates\n", res.Winner.Score, len(res.Trials))
	for i, t := range topTrials(res, top) {
		fmt.Fprintf(w, "%3d. %v  %.3f\n", i+1, t.Denominations, t.Score)
	}
}
