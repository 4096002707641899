package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/logger"
)

var globalConfig *Config
var viperInstance *viper.Viper

// configSources records which file each key was merged from
var configSources map[string]SourceInfo

// Load reads the configuration using Viper. The result is cached until Reset.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path on top of the
// defaults, without environment variables
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing and reloads)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	configSources = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	configSources = mergeConfigFiles(v, configFiles())

	viperInstance = v
	return v
}

// ConfigPaths returns the candidate config files in precedence order
// (lowest first): user config, then the nearest project config
func ConfigPaths() []string {
	files := configFiles()
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return paths
}

// configFiles is ConfigPaths with the source of each file
func configFiles() []ConfigFile {
	var files []ConfigFile
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, ConfigFile{
			Path:   filepath.Join(home, UserConfigDir, ConfigFileName),
			Source: SourceUser,
		})
	}
	if project := findProjectConfig(); project != "" {
		files = append(files, ConfigFile{Path: project, Source: SourceProject})
	}
	return files
}

// findProjectConfig walks up from the working directory looking for am.toml
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges existing files into v in order; later files win.
// It returns the file each merged key came from.
func mergeConfigFiles(v *viper.Viper, files []ConfigFile) map[string]SourceInfo {
	sources := make(map[string]SourceInfo)
	for _, file := range files {
		if _, err := os.Stat(file.Path); err != nil {
			continue
		}

		fileViper := viper.New()
		fileViper.SetConfigFile(file.Path)
		fileViper.SetConfigType("toml")
		if err := fileViper.ReadInConfig(); err != nil {
			logger.Warnw("Skipping unreadable config file",
				logger.FieldPath, file.Path,
				logger.FieldError, err)
			continue
		}

		settings := fileViper.AllSettings()
		if err := v.MergeConfigMap(settings); err != nil {
			logger.Warnw("Failed to merge config file",
				logger.FieldPath, file.Path,
				logger.FieldError, err)
			continue
		}
		for _, key := range flattenKeys(settings, "") {
			sources[key] = SourceInfo{Source: file.Source, Path: file.Path}
		}
		logger.Infow("Config file merged", logger.FieldPath, file.Path)
	}
	return sources
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}

// expandHome replaces a leading ~/ with the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
