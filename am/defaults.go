package am

import (
	"github.com/spf13/viper"
)

// File and directory names
const (
	ConfigFileName = "am.toml"
	UserConfigDir  = ".fuzzytime"
	EnvPrefix      = "FUZZYTIME"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Evaluation defaults
	v.SetDefault("eval.default_trigger", "exact_true")
	v.SetDefault("eval.timezone", "Local")
	v.SetDefault("eval.format", FormatTable)

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	// Schedule defaults
	v.SetDefault("schedule.profiles_path", "")
}
