package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/hasansino/gitsync/internal/cmdutil"
	"github.com/hasansino/gitsync/pkg/gitsync"
)

// Version is overridden at build time.
var Version = "dev"

const (
	exitOK         = 0
	exitError      = 1
	exitInspection = 2
	exitGeneration = 3
	exitPublish    = 4
)

func NewSyncCommand(ctx context.Context, f *cmdutil.Factory) *cobra.Command {
	settings := gitsync.NewSettings()

	cmd := &cobra.Command{
		Use:     "gitsync",
		Short:   "Commit and push with a generated message",
		Long:    "Inspects the working tree, asks a language model for a commit message,\nthen commits and pushes the result.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging(f.Options().LogLevel)
			return loadConfiguration(cmd, f, settings)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncCommand(f, settings)
		},
		SilenceUsage:  true,
		SilenceErrors: false,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
			HiddenDefaultCmd:  true,
		},
	}

	cmd.SetContext(ctx)
	cmd.SetIn(os.Stdin)
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	f.BindFlags(cmd.PersistentFlags())

	flags := cmd.Flags()

	flags.BoolVar(
		&settings.DryRun, "dry-run", false,
		"Show the changes and the message without committing")
	flags.StringVar(
		&settings.Message, "message", "",
		"Use this commit message instead of generating one")
	flags.StringVar(
		&settings.Model, "model", settings.Model,
		"Model used for message generation")
	flags.StringVar(
		&settings.Endpoint, "endpoint", settings.Endpoint,
		"Base URL of the generation API")
	flags.DurationVar(
		&settings.Timeout, "timeout", settings.Timeout,
		"Timeout for the generation request")
	flags.IntVar(
		&settings.MaxDiffBytes, "max-diff-bytes", settings.MaxDiffBytes,
		"Largest diff, in bytes, included in the generation prompt")
	flags.BoolVar(
		&settings.AssumeYes, "yes", false,
		"Answer yes to the remote creation prompt")
	flags.BoolVar(
		&settings.NoPush, "no-push", false,
		"Commit without pushing")
	flags.StringVar(
		&settings.Remote, "remote", settings.Remote,
		"Remote to push to")
	flags.BoolVar(
		&settings.Public, "public", false,
		"Create new remote repositories public instead of private")

	return cmd
}

// loadConfiguration layers configuration sources under the flags: defaults,
// then the config file, then environment variables. Explicitly set flags
// always win.
func loadConfiguration(cmd *cobra.Command, f *cmdutil.Factory, settings *gitsync.Settings) error {
	// a local .env never overrides exported variables
	_ = godotenv.Load()

	configPath := f.Options().ConfigPath
	if configPath == "" {
		configPath = gitsync.DefaultConfigPath()
	}
	fileConfig, err := gitsync.LoadFileConfig(configPath)
	if err != nil {
		return err
	}

	base := gitsync.NewSettings()
	if err := fileConfig.Apply(base); err != nil {
		return err
	}
	if err := gitsync.ApplyEnv(base); err != nil {
		return err
	}

	flags := cmd.Flags()
	settings.APIKey = base.APIKey
	if !flags.Changed("endpoint") {
		settings.Endpoint = base.Endpoint
	}
	if !flags.Changed("model") {
		settings.Model = base.Model
	}
	if !flags.Changed("timeout") {
		settings.Timeout = base.Timeout
	}
	if !flags.Changed("max-diff-bytes") {
		settings.MaxDiffBytes = base.MaxDiffBytes
	}
	if !flags.Changed("remote") {
		settings.Remote = base.Remote
	}
	if !flags.Changed("public") {
		settings.Public = base.Public
	}
	return nil
}

func runSyncCommand(f *cmdutil.Factory, settings *gitsync.Settings) error {
	service, err := gitsync.NewSyncService(
		settings,
		gitsync.WithLogger(slog.Default()),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize sync service: %w", err)
	}
	return service.Execute(f.Context())
}

func initLogging(level string) {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			AddSource:  false,
			Level:      logLevel,
			TimeFormat: time.TimeOnly,
		}),
	)
	slog.SetDefault(logger)
	// log.Print and friends surface only as errors
	slog.SetLogLoggerLevel(slog.LevelError)
}

// Execute runs the root command and maps the result to an exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	factory := cmdutil.NewFactory(ctx)
	cmd := NewSyncCommand(ctx, factory)

	if _, err := cmd.ExecuteContextC(ctx); err != nil {
		return exitCodeFor(err)
	}
	return exitOK
}

// exitCodeFor maps failure categories to distinct exit codes so scripts can
// tell inspection, generation and publish failures apart.
func exitCodeFor(err error) int {
	switch gitsync.Categorize(err) {
	case gitsync.CategoryInspection:
		return exitInspection
	case gitsync.CategoryGeneration:
		return exitGeneration
	case gitsync.CategoryPublish:
		return exitPublish
	default:
		return exitError
	}
}
