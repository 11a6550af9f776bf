// Package config resolves the per-invocation settings shared by all csvop
// commands. Values come from the root command's persistent flags, with
// CSVOP_* environment variables filling in anything not set on the command
// line.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vegasq/csvop/internal/confirm"
	"github.com/vegasq/csvop/internal/table"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "CSVOP"

// Flag and key names.
const (
	KeyYes       = "yes"
	KeyVerbose   = "verbose"
	KeyLogFormat = "log-format"
)

// Config holds the settings for one invocation.
type Config struct {
	// AssumeYes skips overwrite prompts (--yes, CSVOP_YES).
	AssumeYes bool

	// Verbose enables debug logging (--verbose, CSVOP_VERBOSE).
	Verbose bool

	// LogFormat is "text" or "json" (--log-format, CSVOP_LOG_FORMAT).
	LogFormat string
}

// RegisterFlags adds the global options to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Bool(KeyYes, false, "Answer yes to all prompts")
	fs.Bool(KeyVerbose, false, "Enable debug logging on stderr")
	fs.String(KeyLogFormat, "text", "Log format: text, json")
}

// Load reads the configuration from fs and the environment.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("config load: %w", err)
	}

	cfg := Config{
		AssumeYes: v.GetBool(KeyYes),
		Verbose:   v.GetBool(KeyVerbose),
		LogFormat: v.GetString(KeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("%w: log format %q (supported: text, json)", table.ErrInvalidArgument, c.LogFormat)
	}
}

// LogLevel returns the slog level name implied by Verbose.
func (c Config) LogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return "warn"
}

// Policy returns the overwrite confirmation policy. Without AssumeYes the
// user is asked on out and answers on in.
func (c Config) Policy(in io.Reader, out io.Writer) confirm.Policy {
	if c.AssumeYes {
		return confirm.AlwaysYes{}
	}
	return confirm.NewInteractive(in, out)
}
