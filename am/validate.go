package am

import (
	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/schedule"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := c.TriggerFunc(); err != nil {
		return errors.Wrap(err, "eval.default_trigger")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	switch c.Eval.Format {
	case FormatTable, FormatJSON:
	default:
		return errors.Newf("eval.format must be %q or %q, got %q", FormatTable, FormatJSON, c.Eval.Format)
	}

	// Log verbosity: 0 = results only, negative = invalid
	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	// Inline profiles are checked here; the library file is checked when loaded
	if _, err := schedule.NewLibrary(c.Schedule.Profiles...); err != nil {
		return errors.Wrap(err, "schedule.profiles")
	}

	return nil
}
