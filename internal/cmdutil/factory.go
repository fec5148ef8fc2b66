package cmdutil

import (
	"context"

	"github.com/spf13/pflag"
)

// Options are process-wide settings bound as persistent flags.
type Options struct {
	LogLevel   string
	ConfigPath string
}

// Factory carries the execution context and persistent options into
// command constructors.
type Factory struct {
	ctx     context.Context
	options *Options
}

func NewFactory(ctx context.Context) *Factory {
	return &Factory{
		ctx:     ctx,
		options: &Options{},
	}
}

func (f *Factory) Context() context.Context {
	return f.ctx
}

func (f *Factory) Options() *Options {
	return f.options
}

// BindFlags registers the persistent flags backing Options.
func (f *Factory) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(
		&f.options.LogLevel, "log-level", "info",
		"Logging level (debug|info|warn|error)")
	flags.StringVar(
		&f.options.ConfigPath, "config", "",
		"Path to config file (default ~/.config/gitsync/config.yaml)")
}
