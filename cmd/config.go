package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"

	"completest.dev/pkg/completest/internal/adapter"
	"completest.dev/pkg/completest/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "completest"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	extensionsFlagName  = "ext"
	runParallelFlagName = "parallel"
	diffFlagName        = "diff"
	modelFlagName       = "model"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	excludeConfigKey     = "paths.exclude"
	extensionsConfigKey  = "scan.extensions"
	runParallelConfigKey = "run.parallel"
	runDiffConfigKey     = "run.diff"
	runSpillDirKey       = "run.spill_dir"
	apiKeyConfigKey      = "api.key"
	apiURLConfigKey      = "api.url"
	apiModelConfigKey    = "api.model"
	apiTimeoutConfigKey  = "api.timeout"

	defaultOutput      = "result.json"
	defaultRunParallel = 1
	defaultRunDiff     = false
	defaultAPITimeout  = 0

	envPrefix = "COMPLETEST"

	// apiKeyEnv and openAIKeyEnv are read verbatim, without the prefix.
	apiKeyEnv    = envPrefix + "_API_KEY"
	openAIKeyEnv = "OPENAI_API_KEY"

	maskedSecret = "********"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".completest.log"
	defaultLogLevel      = int(slog.LevelInfo)
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

	setDefaults()

	cobra.CheckErr(viper.BindEnv(apiKeyConfigKey, apiKeyEnv, openAIKeyEnv))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutput)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(extensionsConfigKey, domain.DefaultExtensions)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runDiffConfigKey, defaultRunDiff)
	viper.SetDefault(runSpillDirKey, "")
	viper.SetDefault(apiKeyConfigKey, "")
	viper.SetDefault(apiURLConfigKey, adapter.DefaultCompletionURL)
	viper.SetDefault(apiModelConfigKey, adapter.DefaultCompletionModel)
	viper.SetDefault(apiTimeoutConfigKey, defaultAPITimeout)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// completionConfig reads the completion client settings. api.timeout is in seconds.
func completionConfig() adapter.CompletionConfig {
	return adapter.CompletionConfig{
		APIKey:  strings.TrimSpace(viper.GetString(apiKeyConfigKey)),
		URL:     viper.GetString(apiURLConfigKey),
		Model:   viper.GetString(apiModelConfigKey),
		Timeout: time.Duration(viper.GetInt(apiTimeoutConfigKey)) * time.Second,
	}
}

// settingsYAML renders the effective settings. A configured API key is
// masked, or blanked when blankSecrets is set.
func settingsYAML(blankSecrets bool) ([]byte, error) {
	settings := viper.AllSettings()

	if api, ok := settings["api"].(map[string]any); ok {
		switch {
		case blankSecrets:
			api["key"] = ""
		case fmt.Sprint(api["key"]) != "":
			api["key"] = maskedSecret
		}
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	return data, nil
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
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
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
