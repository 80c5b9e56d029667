package main

import (
	"fmt"
	"strings"

	"github.com/ddirect/orderedset/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// prefix of the environment variables overriding flags, e.g. AVLSET_LOG_LEVEL
const envPrefix = "AVLSET"

type rootConfiguration struct {
	CfgFile   string
	LogLevel  string
	LogFormat string

	log zerolog.Logger
}

func newApp() *cobra.Command {
	rootCmd, rootConfig := newRootCmd()
	rootCmd.AddCommand(
		newDumpCmd(rootConfig),
		newCheckCmd(rootConfig),
		newBenchCmd(rootConfig),
	)
	return rootCmd
}

func newRootCmd() (*cobra.Command, *rootConfiguration) {
	config := &rootConfiguration{}
	rootCmd := &cobra.Command{
		Use:           "avlset",
		Short:         "Inspect and exercise the AVL ordered set",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd, config); err != nil {
				return err
			}
			log, err := logger.New(logger.Config{
				Level:  config.LogLevel,
				Format: config.LogFormat,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			config.log = log
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "YAML file with default flag values")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", logger.FormatConsole, "log format (console or json)")

	return rootCmd, config
}

// initializeConfig fills the flags that were not given on the command line
// from the environment, then from the config file.
func initializeConfig(cmd *cobra.Command, config *rootConfiguration) error {
	v := viper.New()

	if config.CfgFile != "" {
		v.SetConfigFile(config.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	return bindFlags(cmd, v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindFlagErr != nil {
			return
		}
		// environment variables can't have dashes: --log-level is AVLSET_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, envPrefix+"_"+envVarSuffix); err != nil {
				bindFlagErr = fmt.Errorf("bind env to flag %s: %w", f.Name, err)
				return
			}
		}

		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, flagValue(v.Get(f.Name))); err != nil {
				bindFlagErr = fmt.Errorf("set flag %s: %w", f.Name, err)
			}
		}
	})
	return bindFlagErr
}

// flagValue renders a config value the way pflag parses it; lists become
// comma separated.
func flagValue(val any) string {
	if list, ok := val.([]any); ok {
		s := make([]string, len(list))
		for i, e := range list {
			s[i] = fmt.Sprint(e)
		}
		return strings.Join(s, ",")
	}
	return fmt.Sprint(val)
}
