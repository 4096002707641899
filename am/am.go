// Package am holds the fuzzytime runtime configuration ("I am").
//
// Configuration is merged from built-in defaults, the user file
// ~/.fuzzytime/am.toml, the nearest project am.toml and FUZZYTIME_* environment
// variables, in increasing order of precedence.
package am

import (
	"time"

	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/geotime"
	"github.com/teranos/fuzzytime/schedule"
	"github.com/teranos/fuzzytime/trigger"
)

// Config represents the fuzzytime configuration
type Config struct {
	Eval     EvalConfig     `mapstructure:"eval" toml:"eval" json:"eval" yaml:"eval"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Schedule ScheduleConfig `mapstructure:"schedule" toml:"schedule" json:"schedule" yaml:"schedule"`
}

// EvalConfig configures how the CLI evaluates and reports fuzzy values
type EvalConfig struct {
	DefaultTrigger string `mapstructure:"default_trigger" toml:"default_trigger" json:"default_trigger" yaml:"default_trigger"` // trigger name or threshold, see trigger.Parse
	Timezone       string `mapstructure:"timezone" toml:"timezone" json:"timezone" yaml:"timezone"`                         // IANA zone or "Local"
	Format         string `mapstructure:"format" toml:"format" json:"format" yaml:"format"`                                 // table or json
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"` // same scale as -v flags
}

// ScheduleConfig configures hour-band profiles
type ScheduleConfig struct {
	ProfilesPath string             `mapstructure:"profiles_path" toml:"profiles_path" json:"profiles_path" yaml:"profiles_path"` // optional TOML profile library
	Profiles     []schedule.Profile `mapstructure:"profiles" toml:"profiles" json:"profiles" yaml:"profiles"`                     // inline profiles
}

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// TriggerFunc resolves the configured default trigger
func (c *Config) TriggerFunc() (trigger.Func, error) {
	return trigger.Parse(c.Eval.DefaultTrigger)
}

// Location resolves the configured evaluation timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Eval.Timezone == "" {
		return time.Local, nil
	}
	loc, err := geotime.Resolve(c.Eval.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "eval.timezone %q", c.Eval.Timezone)
	}
	return loc, nil
}

// Library returns inline profiles merged with the profile library file. File
// profiles win on name clashes.
func (c *Config) Library() (*schedule.Library, error) {
	inline, err := schedule.NewLibrary(c.Schedule.Profiles...)
	if err != nil {
		return nil, errors.Wrap(err, "schedule.profiles")
	}
	if c.Schedule.ProfilesPath == "" {
		return inline, nil
	}
	file, err := schedule.LoadFile(expandHome(c.Schedule.ProfilesPath))
	if err != nil {
		return nil, err
	}
	return inline.Merge(file), nil
}
