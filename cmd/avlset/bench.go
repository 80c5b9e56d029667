package main

import (
	"fmt"
	"time"

	"github.com/ddirect/orderedset/set"
	"github.com/spf13/cobra"
)

type benchConfiguration struct {
	Count int
	Limit time.Duration
}

func newBenchCmd(root *rootConfiguration) *cobra.Command {
	config := &benchConfiguration{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the insertion of sequential keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(root, config)
		},
	}
	cmd.Flags().IntVar(&config.Count, "count", 1000000, "number of keys to insert")
	cmd.Flags().DurationVar(&config.Limit, "limit", time.Second, "fail if the insertion takes longer (0 disables)")
	return cmd
}

func runBench(root *rootConfiguration, config *benchConfiguration) error {
	s := set.New[int]()

	start := time.Now()
	for i := range config.Count {
		s.Insert(i)
	}
	elapsed := time.Since(start)

	if s.Len() != max(config.Count, 0) {
		return fmt.Errorf("inserted %d keys but the set holds %d", config.Count, s.Len())
	}

	root.log.Info().
		Int("count", config.Count).
		Dur("elapsed", elapsed).
		Int("height", s.Height()).
		Msg("sequential insert")

	if config.Limit > 0 && elapsed > config.Limit {
		return fmt.Errorf("inserting %d keys took %v, limit %v", config.Count, elapsed, config.Limit)
	}
	return nil
}
