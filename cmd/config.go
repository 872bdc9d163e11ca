package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/commitkind/commitkind/internal/adapter"
	"github.com/commitkind/commitkind/internal/controller"
	"github.com/commitkind/commitkind/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "commitkind"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	pathFlagName           = "path"
	formatFlagName         = "format"
	detailsFlagName        = "details"
	diffFlagName           = "diff"
	currentVersionFlagName = "current-version"
	excludeFlagName        = "exclude"
	verboseFlagName        = "verbose"
	logFileFlagName        = "log-file"
	parallelFlagName       = "parallel"

	formatConfigKey         = "output.format"
	detailsConfigKey        = "output.details"
	diffConfigKey           = "output.diff"
	excludeConfigKey        = "paths.exclude"
	includePrivateConfigKey = "extract.include_private"
	maxFileSizeConfigKey    = "extract.max_file_size"
	parallelConfigKey       = "extract.parallel"
	gitTimeoutConfigKey     = "git.timeout"

	defaultFormat         = string(controller.FormatText)
	defaultDetails        = false
	defaultDiff           = false
	defaultIncludePrivate = false
	defaultMaxFileSize    = adapter.DefaultMaxFileSize
	defaultParallel       = domain.DefaultParallel
	defaultGitTimeout     = adapter.DefaultGitTimeout

	envPrefix = "COMMITKIND"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	logBaseName          = configBaseName + ".log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(detailsConfigKey, defaultDetails)
	viper.SetDefault(diffConfigKey, defaultDiff)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(includePrivateConfigKey, defaultIncludePrivate)
	viper.SetDefault(maxFileSizeConfigKey, defaultMaxFileSize)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(gitTimeoutConfigKey, defaultGitTimeout.String())

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename())
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("ignoring unreadable config file", "file", configFileName, "error", err)
	}
}

// defaultLogFilename keeps the log out of the repository being classified,
// so the log file never shows up as a pending change.
func defaultLogFilename() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, configBaseName, logBaseName)
}

// gitTimeout reads git.timeout as a duration ("45s") or a number of seconds.
func gitTimeout() time.Duration {
	raw := strings.TrimSpace(viper.GetString(gitTimeoutConfigKey))
	if raw == "" {
		return defaultGitTimeout
	}

	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil || timeout <= 0 {
		slog.Warn("invalid git timeout, using default", "value", raw, "default", defaultGitTimeout)
		return defaultGitTimeout
	}

	return timeout
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename()
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
