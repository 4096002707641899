package am

import (
	"os"
	"sort"
	"strings"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceUser        ConfigSource = "user"        // ~/.fuzzytime/am.toml
	SourceProject     ConfigSource = "project"     // nearest ./am.toml
	SourceEnvironment ConfigSource = "environment" // FUZZYTIME_* env vars
)

// ConfigFile is a candidate config file and the layer it belongs to
type ConfigFile struct {
	Path   string       `json:"path"`
	Source ConfigSource `json:"source"`
	Exists bool         `json:"exists"`
}

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource
	Path   string // file path or environment variable name
}

// SettingInfo is one effective setting and its origin
type SettingInfo struct {
	Key        string       `json:"key"`
	Value      interface{}  `json:"value"`
	Source     ConfigSource `json:"source"`
	SourcePath string       `json:"source_path,omitempty"`
}

// ConfigIntrospection describes the active configuration cascade
type ConfigIntrospection struct {
	Files    []ConfigFile  `json:"files"`
	Settings []SettingInfo `json:"settings"`
}

// Introspect reports every effective setting with the layer that set it.
// Environment variables win over files, files over defaults.
func Introspect() *ConfigIntrospection {
	v := initViper()

	files := configFiles()
	for i := range files {
		_, err := os.Stat(files[i].Path)
		files[i].Exists = err == nil
	}

	intro := &ConfigIntrospection{Files: files}
	settings := v.AllSettings()
	for _, key := range flattenKeys(settings, "") {
		info := SourceInfo{Source: SourceDefault}
		if si, ok := configSources[key]; ok {
			info = si
		}
		if envKey := EnvKey(key); os.Getenv(envKey) != "" {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		intro.Settings = append(intro.Settings, SettingInfo{
			Key:        key,
			Value:      v.Get(key),
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}
	return intro
}

// EnvKey returns the environment variable that overrides key,
// e.g. eval.timezone -> FUZZYTIME_EVAL_TIMEZONE
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// flattenKeys returns the dotted leaf keys of a nested settings map, sorted.
// Arrays such as schedule.profiles are leaves.
func flattenKeys(settings map[string]interface{}, prefix string) []string {
	var keys []string
	for k, value := range settings {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := value.(map[string]interface{}); ok && len(nested) > 0 {
			keys = append(keys, flattenKeys(nested, full)...)
			continue
		}
		keys = append(keys, full)
	}
	sort.Strings(keys)
	return keys
}
