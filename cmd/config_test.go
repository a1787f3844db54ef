package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// unsetEnv removes key from the environment for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, EnvLogLevel)
	unsetEnv(t, EnvHygienicPrefix)

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfigFile(t *testing.T) {
	unsetEnv(t, EnvLogLevel)
	unsetEnv(t, EnvHygienicPrefix)

	path := writeConfig(t, `
log_level: debug
log_sections: [desugar]
hygienic_prefix: tmp
color: false
parallelism: 3
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, []string{"desugar"}, config.LogSections)
	assert.Equal(t, "tmp", config.HygienicPrefix)
	require.NotNil(t, config.Color)
	assert.False(t, *config.Color)
	assert.Equal(t, 3, config.Parallelism)

	level, err := config.level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, 3, config.CompileSettings().Parallelism)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvHygienicPrefix, "gen")

	config, err := LoadConfig(writeConfig(t, "log_level: debug\nhygienic_prefix: tmp\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "gen", config.HygienicPrefix)
}

func TestLoadConfigDotEnv(t *testing.T) {
	unsetEnv(t, EnvLogLevel)
	unsetEnv(t, EnvHygienicPrefix)

	path := writeConfig(t, "parallelism: 2\n")
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), ".env"), []byte(EnvHygienicPrefix+"=env_\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env_", config.HygienicPrefix)
	assert.Equal(t, 2, config.Parallelism)
}

func TestLoadConfigErrors(t *testing.T) {
	unsetEnv(t, EnvLogLevel)
	unsetEnv(t, EnvHygienicPrefix)

	cases := map[string]struct {
		content    string
		validation bool
	}{
		"unknown field":        {content: "colour: true\n"},
		"not yaml":             {content: "log_level: [\n"},
		"bad level":            {content: "log_level: loud\n", validation: true},
		"negative parallelism": {content: "parallelism: -1\n", validation: true},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, c.content))
			require.Error(t, err)
			assert.Equal(t, c.validation, errors.Is(err, ErrConfigValidation), err.Error())
		})
	}
}
