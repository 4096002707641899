package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenKeys(t *testing.T) {
	settings := map[string]interface{}{
		"eval": map[string]interface{}{
			"timezone": "UTC",
			"format":   "json",
		},
		"log": map[string]interface{}{"verbosity": 1},
		"schedule": map[string]interface{}{
			"profiles": []interface{}{map[string]interface{}{"name": "p"}},
		},
		"empty": map[string]interface{}{},
	}

	assert.Equal(t, []string{
		"empty",
		"eval.format",
		"eval.timezone",
		"log.verbosity",
		"schedule.profiles",
	}, flattenKeys(settings, ""))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "FUZZYTIME_EVAL_TIMEZONE", EnvKey("eval.timezone"))
	assert.Equal(t, "FUZZYTIME_SCHEDULE_PROFILES_PATH", EnvKey("schedule.profiles_path"))
}

func TestIntrospect_Cascade(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	testChdir(t, project)

	userDir := filepath.Join(home, UserConfigDir)
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	userPath := writeConfig(t, userDir, ConfigFileName, "[eval]\nformat = \"json\"\ntimezone = \"Asia/Tokyo\"\n")
	projectPath := writeConfig(t, project, ConfigFileName, "[eval]\ntimezone = \"UTC\"\n")
	t.Setenv("FUZZYTIME_LOG_VERBOSITY", "2")

	Reset()
	t.Cleanup(Reset)

	intro := Introspect()

	require.Len(t, intro.Files, 2)
	assert.Equal(t, SourceUser, intro.Files[0].Source)
	assert.True(t, intro.Files[0].Exists)
	assert.Equal(t, SourceProject, intro.Files[1].Source)

	byKey := make(map[string]SettingInfo, len(intro.Settings))
	for _, s := range intro.Settings {
		byKey[s.Key] = s
	}

	assert.Equal(t, SourceUser, byKey["eval.format"].Source)
	assert.Equal(t, userPath, byKey["eval.format"].SourcePath)

	assert.Equal(t, SourceProject, byKey["eval.timezone"].Source, "project overrides user")
	assert.Equal(t, "UTC", byKey["eval.timezone"].Value)
	assert.Equal(t, filepath.Base(projectPath), filepath.Base(byKey["eval.timezone"].SourcePath))

	assert.Equal(t, SourceEnvironment, byKey["log.verbosity"].Source)
	assert.Equal(t, "FUZZYTIME_LOG_VERBOSITY", byKey["log.verbosity"].SourcePath)

	assert.Equal(t, SourceDefault, byKey["eval.default_trigger"].Source)
}
