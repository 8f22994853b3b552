// Command TradeMentor runs the trader coaching bot.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initializeLogger sets up structured logging on stdout.
func initializeLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func newRootCmd() *cobra.Command {
	loadDotEnv()
	cfg := loadEnvironmentConfig()

	root := &cobra.Command{
		Use:           "TradeMentor",
		Short:         "Coaching bot that guides traders through daily rituals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initializeLogger(cfg.Debug)
		},
	}
	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging (overrides $TRADEMENTOR_DEBUG)")

	root.AddCommand(newServeCmd(&cfg), newMigrateCmd(&cfg), newVersionCmd())
	return root
}

func newServeCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bot on the configured transport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.resolve(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("Bootstrapping TradeMentor", "version", version, "transport", cfg.Transport, "provider", cfg.Provider)
			if err := runServe(ctx, *cfg); err != nil {
				slog.Error("TradeMentor failed to run", "error", err)
				return err
			}
			slog.Info("TradeMentor exited successfully")
			return nil
		},
	}
	bindStorageFlags(cmd, cfg)
	bindServeFlags(cmd, cfg)
	return cmd
}

func newMigrateCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.resolve(); err != nil {
				return err
			}
			st, err := openStore(*cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("database unreachable after migration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", describeDSN(cfg.DBDSN))
			return nil
		},
	}
	bindStorageFlags(cmd, cfg)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "TradeMentor", version)
		},
	}
}

