package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reoring/notation"
	"github.com/reoring/notation/i18n"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// settings holds the options shared by every subcommand. Values come from
// flags, then NOTATION_* environment variables, then defaults.
type settings struct {
	Lang     string
	LogLevel string
	BaseDir  string
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("NOTATION")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	s := &settings{}
	root := &cobra.Command{
		Use:           "notation",
		Short:         "Convert loosely typed notations into dependencies and artifacts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s.Lang = v.GetString("lang")
			s.LogLevel = v.GetString("log-level")
			s.BaseDir = v.GetString("base-dir")

			i18n.SetLanguage(s.Lang)

			var level slog.Level
			if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(notation.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("lang", "en", "message language (en, ja)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("base-dir", "", "directory relative file notations are resolved against (default: working directory)")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(newParseCmd(s), newDescribeCmd(s))
	return root
}
