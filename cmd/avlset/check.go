package main

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/ddirect/orderedset/set"
	"github.com/spf13/cobra"
)

type checkConfiguration struct {
	Seed   uint64
	Ops    int
	MaxKey int
}

type checkStats struct {
	Inserted, Duplicates, Deleted, Absent, Erased, MaxLen int
}

var errMismatch = errors.New("set diverged from reference")

func newCheckCmd(root *rootConfiguration) *cobra.Command {
	config := &checkConfiguration{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run random operations verifying the tree invariants after each one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(root, config)
		},
	}
	cmd.Flags().Uint64Var(&config.Seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&config.Ops, "ops", 100000, "number of operations")
	cmd.Flags().IntVar(&config.MaxKey, "max-key", 1000, "keys are drawn from [0, max-key)")
	return cmd
}

func runCheck(root *rootConfiguration, config *checkConfiguration) error {
	if config.Ops < 0 || config.MaxKey < 1 {
		return fmt.Errorf("invalid check parameters: ops %d, max-key %d", config.Ops, config.MaxKey)
	}

	rnd := rand.New(rand.NewPCG(config.Seed, 0))
	s := set.New[int]()
	ref := make(map[int]struct{})
	var st checkStats

	for op := range config.Ops {
		k := rnd.IntN(config.MaxKey)
		_, present := ref[k]
		switch rnd.IntN(5) {
		case 0, 1, 2:
			if s.Insert(k) == present {
				return fmt.Errorf("op %d: insert %d: %w", op, k, errMismatch)
			}
			if present {
				st.Duplicates++
			} else {
				ref[k] = struct{}{}
				st.Inserted++
			}
		case 3:
			if s.Delete(k) != present {
				return fmt.Errorf("op %d: delete %d: %w", op, k, errMismatch)
			}
			if present {
				delete(ref, k)
				st.Deleted++
			} else {
				st.Absent++
			}
		case 4:
			it := s.LowerBound(k)
			if it.AtEnd() {
				break
			}
			erased := it.Key()
			next := s.Erase(it)
			delete(ref, erased)
			st.Erased++
			if !next.Equal(s.UpperBound(erased)) {
				return fmt.Errorf("op %d: erase %d returned the wrong successor: %w", op, erased, errMismatch)
			}
		}
		if err := s.Check(); err != nil {
			return fmt.Errorf("op %d: %w", op, err)
		}
		if s.Len() != len(ref) {
			return fmt.Errorf("op %d: len %d, expected %d: %w", op, s.Len(), len(ref), errMismatch)
		}
		st.MaxLen = max(st.MaxLen, s.Len())
	}

	if !slices.Equal(slices.Collect(s.Values()), slices.Sorted(maps.Keys(ref))) {
		return fmt.Errorf("final content: %w", errMismatch)
	}

	root.log.Info().
		Uint64("seed", config.Seed).
		Int("ops", config.Ops).
		Int("inserted", st.Inserted).
		Int("duplicates", st.Duplicates).
		Int("deleted", st.Deleted).
		Int("absent", st.Absent).
		Int("erased", st.Erased).
		Int("max_len", st.MaxLen).
		Int("final_len", s.Len()).
		Msg("check passed")
	return nil
}
