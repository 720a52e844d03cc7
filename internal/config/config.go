package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/thoreinstein/modname/internal/errors"
	"github.com/thoreinstein/modname/internal/rename"
)

// AppName is the application name used as environment variable prefix.
const AppName = "modname"

// Configuration keys. Flags use the same names with '-' instead of '_'.
const (
	KeyPrompt    = "prompt"
	KeyLogFormat = "log_format"
	KeyLogFile   = "log_file"
	KeyVerbose   = "verbose"
	KeyQuiet     = "quiet"
	KeyNoColor   = "no_color"
	KeyPick      = "pick"
	KeySummary   = "summary"

	KeySummaryFile = "summary_file"
)

var keys = []string{
	KeyPrompt, KeyLogFormat, KeyLogFile, KeyVerbose,
	KeyQuiet, KeyNoColor, KeyPick, KeySummary, KeySummaryFile,
}

// Config is the resolved runtime configuration.
type Config struct {
	Prompt    string `mapstructure:"prompt"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=text json"`
	LogFile   string `mapstructure:"log_file"`
	Verbose   int    `mapstructure:"verbose" validate:"gte=0"`
	Quiet     bool   `mapstructure:"quiet"`
	NoColor   bool   `mapstructure:"no_color"`
	Pick      bool   `mapstructure:"pick"`
	Summary   string `mapstructure:"summary" validate:"omitempty,oneof=yaml toml json"`

	// SummaryFile redirects the summary from stdout into a file.
	SummaryFile string `mapstructure:"summary_file"`
}

// Init resets Viper and installs defaults and environment lookup.
// Call this once at application startup before Load.
func Init() {
	viper.Reset()

	viper.SetEnvPrefix(strings.ToUpper(AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyPrompt, rename.DefaultPrompt)
	viper.SetDefault(KeyLogFormat, "text")
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyVerbose, 0)
	viper.SetDefault(KeyQuiet, false)
	viper.SetDefault(KeyNoColor, false)
	viper.SetDefault(KeyPick, false)
	viper.SetDefault(KeySummary, "")
	viper.SetDefault(KeySummaryFile, "")
}

// FlagName returns the command-line flag name for a configuration key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Load binds the flags registered in flags and returns the validated
// configuration. flags may be nil, in which case only the environment and
// defaults are consulted. Flags not present in the set are ignored.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if flags != nil {
		for _, key := range keys {
			f := flags.Lookup(FlagName(key))
			if f == nil {
				continue
			}
			if err := viper.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "binding flag --%s", f.Name)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return &cfg, nil
}
