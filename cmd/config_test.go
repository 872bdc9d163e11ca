package cmd

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "commitkind", configBaseName)
	assert.Equal(t, "commitkind.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output.format", formatConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "extract.parallel", parallelConfigKey)
	assert.Equal(t, "git.timeout", gitTimeoutConfigKey)
	assert.Equal(t, "COMMITKIND", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, "text", viper.GetString(formatConfigKey))
	assert.False(t, viper.GetBool(includePrivateConfigKey))
	assert.EqualValues(t, defaultMaxFileSize, viper.GetInt64(maxFileSizeConfigKey))
	assert.Equal(t, 4, viper.GetInt(parallelConfigKey))
	assert.True(t, strings.HasSuffix(defaultLogFilename(), filepath.Join(configBaseName, logBaseName)))
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("COMMITKIND_EXTRACT_INCLUDE_PRIVATE", "true")
	t.Setenv("COMMITKIND_EXTRACT_MAX_FILE_SIZE", "2048")

	assert.True(t, viper.GetBool(includePrivateConfigKey))
	assert.EqualValues(t, 2048, viper.GetInt64(maxFileSizeConfigKey))
}

func TestGitTimeout(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", defaultGitTimeout},
		{"45s", 45 * time.Second},
		{"2m", 2 * time.Minute},
		{"90", 90 * time.Second},
		{"soon", defaultGitTimeout},
		{"-5s", defaultGitTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("COMMITKIND_GIT_TIMEOUT", tt.value)
			assert.Equal(t, tt.want, gitTimeout())
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "logs", logBaseName)

	configureLogger(logPath, true)
	slog.Debug("debug enabled")

	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
	assert.FileExists(t, logPath)

	configureLogger(logPath, false)
	assert.False(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}
