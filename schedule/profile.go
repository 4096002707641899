// Package schedule builds temporal factories from hour-of-day profiles.
//
// A profile names a proposition ("sun has set", "tom is going home") and
// assigns a truth value to half-open hour bands. Profiles come from the am
// configuration or from standalone TOML libraries.
package schedule

import (
	"time"

	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/fuzzy"
	"github.com/teranos/fuzzytime/geotime"
	"github.com/teranos/fuzzytime/logger"
	"github.com/teranos/fuzzytime/temporal"
	"github.com/teranos/fuzzytime/trigger"
)

// HoursPerDay bounds band hours
const HoursPerDay = 24

// Band assigns Truth to the hours [From, To)
type Band struct {
	From  int     `mapstructure:"from" toml:"from" json:"from" yaml:"from"`
	To    int     `mapstructure:"to" toml:"to" json:"to" yaml:"to"`
	Truth float64 `mapstructure:"truth" toml:"truth" json:"truth" yaml:"truth"`
}

// Contains reports whether hour falls in [From, To)
func (b Band) Contains(hour int) bool {
	return b.From <= hour && hour < b.To
}

// Profile is a named hour-of-day proposition. Later bands override earlier
// ones; hours outside every band evaluate to Default.
type Profile struct {
	Name     string  `mapstructure:"name" toml:"name" json:"name" yaml:"name"`
	Trigger  string  `mapstructure:"trigger" toml:"trigger" json:"trigger,omitempty" yaml:"trigger,omitempty"`
	Timezone string  `mapstructure:"timezone" toml:"timezone" json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Default  float64 `mapstructure:"default" toml:"default" json:"default" yaml:"default"`
	Bands    []Band  `mapstructure:"bands" toml:"bands" json:"bands" yaml:"bands"`
}

// Validate checks hours, truth values, trigger and timezone
func (p Profile) Validate() error {
	if p.Name == "" {
		return errors.Wrap(errors.ErrInvalidProfile, "name cannot be empty")
	}
	if !fuzzy.IsValid(p.Default) {
		return invalidf(p, "default %v outside [-1, +1]", p.Default)
	}
	for i, band := range p.Bands {
		if band.From < 0 || band.To > HoursPerDay || band.From >= band.To {
			return invalidf(p, "band %d: hours [%d, %d) must satisfy 0 <= from < to <= %d",
				i, band.From, band.To, HoursPerDay)
		}
		if !fuzzy.IsValid(band.Truth) {
			return invalidf(p, "band %d: truth %v outside [-1, +1]", i, band.Truth)
		}
	}
	if p.Trigger != "" {
		if _, err := trigger.Parse(p.Trigger); err != nil {
			return errors.Wrapf(errors.WithSecondaryError(errors.ErrInvalidProfile, err), "profile %q", p.Name)
		}
	}
	if _, err := p.location(); err != nil {
		return invalidf(p, "unknown timezone %q", p.Timezone)
	}
	return nil
}

// TruthAt returns the raw truth value for hour
func (p Profile) TruthAt(hour int) float64 {
	truth := p.Default
	for _, band := range p.Bands {
		if band.Contains(hour) {
			truth = band.Truth
		}
	}
	return truth
}

// location resolves Timezone through geotime aliases; nil means "use the
// timestamp's own location"
func (p Profile) location() (*time.Location, error) {
	if p.Timezone == "" {
		return nil, nil
	}
	return geotime.Resolve(p.Timezone)
}

// Build turns a validated profile into a temporal factory. The hour is read in
// the profile's timezone when one is set.
func Build(p Profile, opts ...temporal.Option) (*temporal.Factory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.Bands = append([]Band(nil), p.Bands...)
	loc, _ := p.location()
	var fn trigger.Func
	if p.Trigger != "" {
		fn, _ = trigger.Parse(p.Trigger)
	}

	log := logger.ComponentLogger("schedule")
	log.Debugw("Profile built",
		logger.FieldProfile, p.Name,
		logger.FieldCount, len(p.Bands),
		logger.FieldTrigger, p.Trigger,
		logger.FieldTimezone, p.Timezone)

	return temporal.NewFactory(func(t time.Time) (*fuzzy.Bool, error) {
		if loc != nil {
			t = t.In(loc)
		}
		truth := p.TruthAt(t.Hour())
		if fn == nil {
			return fuzzy.Of(truth)
		}
		return fuzzy.OfWithTrigger(truth, fn)
	}, opts...)
}

func invalidf(p Profile, format string, args ...interface{}) error {
	return errors.Wrapf(errors.Wrapf(errors.ErrInvalidProfile, format, args...), "profile %q", p.Name)
}
