package schedule

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/logger"
	"github.com/teranos/fuzzytime/temporal"
)

// Library is a named set of profiles
type Library struct {
	profiles map[string]Profile
	source   string
}

// libraryFile is the on-disk layout of a profile library:
//
//	[[profile]]
//	name = "sun_has_set"
//	trigger = "at_or_above:0.6"
//	bands = [{ from = 0, to = 5, truth = 1.0 }, ...]
type libraryFile struct {
	Profiles []Profile `toml:"profile"`
}

// NewLibrary validates profiles and indexes them by name
func NewLibrary(profiles ...Profile) (*Library, error) {
	lib := &Library{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := lib.profiles[p.Name]; exists {
			return nil, errors.Wrapf(errors.ErrInvalidProfile, "duplicate profile %q", p.Name)
		}
		lib.profiles[p.Name] = p
	}
	return lib, nil
}

// LoadFile reads a TOML profile library. Unknown keys are rejected so typos
// in band definitions do not silently evaluate to the default.
func LoadFile(path string) (*Library, error) {
	var file libraryFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read profile library %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, errors.Wrapf(errors.ErrInvalidProfile, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	lib, err := NewLibrary(file.Profiles...)
	if err != nil {
		return nil, errors.Wrapf(err, "profile library %s", path)
	}
	lib.source = path

	logger.Infow("Profile library loaded",
		logger.FieldPath, path,
		logger.FieldCount, len(file.Profiles))
	return lib, nil
}

// Merge returns a library holding lib's profiles overridden by other's
func (l *Library) Merge(other *Library) *Library {
	merged := &Library{profiles: make(map[string]Profile, len(l.profiles)), source: l.source}
	for name, p := range l.profiles {
		merged.profiles[name] = p
	}
	if other != nil {
		for name, p := range other.profiles {
			merged.profiles[name] = p
		}
		if other.source != "" {
			merged.source = other.source
		}
	}
	return merged
}

// Source returns the file the library was loaded from, if any
func (l *Library) Source() string {
	return l.source
}

// Get returns the named profile
func (l *Library) Get(name string) (Profile, bool) {
	p, ok := l.profiles[name]
	return p, ok
}

// Names returns profile names in sorted order
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.profiles))
	for name := range l.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of profiles
func (l *Library) Len() int {
	return len(l.profiles)
}

// Factory builds the named profile
func (l *Library) Factory(name string, opts ...temporal.Option) (*temporal.Factory, error) {
	p, ok := l.Get(name)
	if !ok {
		err := errors.Wrapf(errors.ErrInvalidProfile, "no profile named %q", name)
		if names := l.Names(); len(names) > 0 {
			err = errors.WithHintf(err, "available profiles: %s", strings.Join(names, ", "))
		}
		return nil, err
	}
	return Build(p, opts...)
}
