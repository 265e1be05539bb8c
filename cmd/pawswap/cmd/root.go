package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "PAWSWAP"

	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagLogJSON  = "log-json"
)

// NewRootCmd creates the pawswap root command. Every flag can also be set
// from the config file or a PAWSWAP_ prefixed environment variable.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "pawswap",
		Short: "PAW constant-product AMM toolkit",
		Long: `pawswap derives pool ids, quotes trades against given reserves and replays
liquidity scenarios on an in-memory chain.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())
			return initConfig(v, cmd)
		},
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error|disabled)")
	rootCmd.PersistentFlags().Bool(flagLogJSON, false, "emit logs as JSON")

	rootCmd.AddCommand(
		PoolIDCmd(),
		QuoteCmd(v),
		SimulateCmd(v),
	)

	return rootCmd
}

// initConfig loads the optional config file and binds the environment and
// every flag of cmd into v.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	// Flags left at their defaults pick up config or env values.
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) || bindErr != nil {
			return
		}
		bindErr = cmd.Flags().Set(f.Name, v.GetString(f.Name))
	})
	return bindErr
}

// newLogger builds the CLI logger from the log flags.
func newLogger(v *viper.Viper, w io.Writer) (log.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}

	opts := []log.Option{log.LevelOption(level)}
	if v.GetBool(flagLogJSON) {
		opts = append(opts, log.OutputJSONOption())
	} else {
		opts = append(opts, log.ColorOption(false))
	}
	return log.NewLogger(w, opts...), nil
}
