// Package cmd defines the Cobra command tree for the learnly CLI, the
// terminal frontend to the LEARNLY platform. Each role's dashboard maps
// to a command subtree gated by the session guard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/api"
	"github.com/learnly/learnly-go/config"
	"github.com/learnly/learnly-go/otel"
	"github.com/learnly/learnly-go/session"
	"github.com/learnly/learnly-go/utils/logger"
)

var (
	cfgFile string
	verbose bool
	version = "dev" // set via ldflags at build time

	cfg             *config.Config
	store           *session.Store
	client          *api.Client
	shutdownTracing = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "learnly",
	Short: "Terminal client for the LEARNLY education platform",
	Long: `learnly talks to a LEARNLY backend: sign in once and the session is
kept across invocations. Commands are scoped by account role - admins
manage users and moderation, teachers run courses and quizzes, students
enroll, chat with the course assistant and take quizzes.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		shutdownTracing()
	},
}

func initApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger.Init(&logger.Config{Level: level, Env: cfg.Env, AppName: "learnly", Console: true})

	shutdownTracing, err = otel.InitOpenTelemetry(cmd.Context(), otel.OtelConfig{
		Enabled:     cfg.Otel.Enabled,
		Endpoint:    cfg.Otel.Endpoint,
		ServiceName: "learnly-cli",
		Environment: cfg.Env,
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}

	storage, err := session.NewFileStorage(cfg.StateDir)
	if err != nil {
		return err
	}
	store = session.NewStore(storage)

	client = api.NewClient(api.Config{
		BaseURL: cfg.APIURL,
		Store:   store,
		Timeout: cfg.RequestTimeout,
		OnSessionExpired: func() {
			fmt.Fprintln(os.Stderr, "Your session has expired. Run `learnly login` to sign in again.")
		},
	})
	return nil
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: environment only)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"debug logging on stderr")
}
