package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ddirect/orderedset/internal/script"
	"github.com/ddirect/orderedset/set"
	"github.com/spf13/cobra"
)

type dumpConfiguration struct {
	Script string
	Erase  []int
	Out    string
}

func newDumpCmd(root *rootConfiguration) *cobra.Command {
	config := &dumpConfiguration{}
	cmd := &cobra.Command{
		Use:   "dump [keys...]",
		Short: "Build a set and print its tree in Graphviz format",
		Long: `Inserts the keys given as arguments, then runs the script if any, then
erases the --erase keys. The resulting tree is written as a Graphviz digraph.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, root, config, args)
		},
	}
	cmd.Flags().StringVar(&config.Script, "script", "", "YAML file with insert/erase steps")
	cmd.Flags().IntSliceVar(&config.Erase, "erase", nil, "keys to erase after building the set")
	cmd.Flags().StringVarP(&config.Out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func runDump(cmd *cobra.Command, root *rootConfiguration, config *dumpConfiguration, args []string) error {
	s := set.New[int]()
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", a, err)
		}
		s.Insert(k)
	}

	if config.Script != "" {
		sc, err := script.Load(config.Script)
		if err != nil {
			return err
		}
		if err := sc.Apply(s); err != nil {
			return fmt.Errorf("apply %s: %w", config.Script, err)
		}
		root.log.Debug().Str("script", config.Script).Int("steps", len(sc.Steps)).Msg("script applied")
	}

	for _, k := range config.Erase {
		if !s.Delete(k) {
			root.log.Warn().Int("key", k).Msg("erase: key not present")
		}
	}

	if err := writeDot(s, cmd.OutOrStdout(), config.Out); err != nil {
		return err
	}

	root.log.Info().Int("keys", s.Len()).Str("out", config.Out).Msg("tree dumped")
	return nil
}

func writeDot(s *set.Set[int], stdout io.Writer, path string) error {
	if path == "" {
		return s.WriteGraphviz(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := s.WriteGraphviz(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
