package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"oaks.dev/pkg/hygiene/internal/domain"
	m "oaks.dev/pkg/hygiene/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "hygiene"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	projectMarker = "Cargo.toml"

	excludeFlagName      = "exclude"
	verboseFlagName      = "verbose"
	logFileFlagName      = "log-file"
	parallelFlagName     = "parallel"
	reportFlagName       = "report"
	maxLinesFlagName     = "max-lines"
	denyWarningsFlagName = "deny-warnings"
	buildLogFlagName     = "log"
	profileFlagName      = "profile"
	skipBuildFlagName    = "skip-build"

	excludeConfigKey = "paths.exclude"

	placementExtensionKey     = "placement.extension"
	placementImplDirKey       = "placement.impl_dir"
	placementTestDirKey       = "placement.test_dir"
	placementMarkersKey       = "placement.markers"
	placementModuleDeclsKey   = "placement.module_decls"
	placementFunctionDeclsKey = "placement.function_decls"
	placementQuoteOpenKey     = "placement.quote_open"
	placementQuoteCloseKey    = "placement.quote_close"
	placementTerminatorsKey   = "placement.terminators"
	placementSameLineCloseKey = "placement.same_line_close"

	testsParallelKey = "tests.parallel"
	testsReportKey   = "tests.report"

	sizeExtensionsKey = "size.extensions"
	sizeMaxLinesKey   = "size.max_lines"

	buildToolKey         = "build.tool"
	buildSubcommandKey   = "build.subcommand"
	buildArgsKey         = "build.args"
	buildProfilesKey     = "build.profiles"
	buildTimeoutKey      = "build.timeout"
	buildDenyWarningsKey = "build.deny_warnings"
	buildLogFileKey      = "build.log_file"
	buildSpillDirKey     = "build.spill_dir"

	defaultTestsParallel = 1
	defaultSizeMaxLines  = 1000
	defaultBuildTool     = "cargo"
	defaultBuildSubcmd   = "build"
	defaultBuildTimeout  = 10 * time.Minute
	defaultBuildLogFile  = "build-errors.log"

	envPrefix = "HYGIENE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".hygiene.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	initConfig()
}

// initConfig sets up the config file, environment and defaults, then reads
// hygiene.yaml when present.
func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		cobra.CheckErr(fmt.Errorf("read %s: %w", viper.ConfigFileUsed(), err))
	}
}

func setDefaults() {
	rules := domain.DefaultPlacementRules()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(excludeConfigKey, []string{"target", "node_modules", ".git"})

	viper.SetDefault(placementExtensionKey, rules.Extension)
	viper.SetDefault(placementImplDirKey, rules.ImplDir)
	viper.SetDefault(placementTestDirKey, rules.TestDir)
	viper.SetDefault(placementMarkersKey, rules.Markers)
	viper.SetDefault(placementModuleDeclsKey, rules.ModuleDecls)
	viper.SetDefault(placementFunctionDeclsKey, rules.FunctionDecls)
	viper.SetDefault(placementQuoteOpenKey, rules.Quote.Open)
	viper.SetDefault(placementQuoteCloseKey, rules.Quote.Close)
	viper.SetDefault(placementTerminatorsKey, rules.Quote.Terminators)
	viper.SetDefault(placementSameLineCloseKey, rules.Quote.SameLineClose)

	viper.SetDefault(testsParallelKey, defaultTestsParallel)
	viper.SetDefault(testsReportKey, "")

	viper.SetDefault(sizeExtensionsKey, []string{rules.Extension})
	viper.SetDefault(sizeMaxLinesKey, defaultSizeMaxLines)

	viper.SetDefault(buildToolKey, defaultBuildTool)
	viper.SetDefault(buildSubcommandKey, defaultBuildSubcmd)
	viper.SetDefault(buildArgsKey, []string{})
	viper.SetDefault(buildProfilesKey, []map[string]interface{}{
		{"name": "default", "args": []string{}},
		{"name": "all-features", "args": []string{"--all-features"}},
		{"name": "no-default-features", "args": []string{"--no-default-features"}},
	})
	viper.SetDefault(buildTimeoutKey, defaultBuildTimeout.String())
	viper.SetDefault(buildDenyWarningsKey, false)
	viper.SetDefault(buildLogFileKey, defaultBuildLogFile)
	viper.SetDefault(buildSpillDirKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// placementRulesFromConfig reads the placement.* keys.
func placementRulesFromConfig() domain.PlacementRules {
	return domain.PlacementRules{
		Extension:     viper.GetString(placementExtensionKey),
		ImplDir:       viper.GetString(placementImplDirKey),
		TestDir:       viper.GetString(placementTestDirKey),
		Markers:       viper.GetStringSlice(placementMarkersKey),
		ModuleDecls:   viper.GetStringSlice(placementModuleDeclsKey),
		FunctionDecls: viper.GetStringSlice(placementFunctionDeclsKey),
		Quote: domain.QuotePolicy{
			Open:          viper.GetString(placementQuoteOpenKey),
			Close:         viper.GetString(placementQuoteCloseKey),
			Terminators:   viper.GetString(placementTerminatorsKey),
			SameLineClose: viper.GetBool(placementSameLineCloseKey),
		},
	}
}

// buildProfilesFromConfig decodes build.profiles and keeps only the named
// profiles when selected is non-empty, in configuration order.
func buildProfilesFromConfig(selected []string) ([]m.BuildProfile, error) {
	var profiles []m.BuildProfile
	if err := viper.UnmarshalKey(buildProfilesKey, &profiles); err != nil {
		return nil, fmt.Errorf("decode %s: %w", buildProfilesKey, err)
	}

	if len(selected) == 0 {
		return profiles, nil
	}

	byName := make(map[string]bool, len(selected))
	for _, name := range selected {
		byName[name] = true
	}

	var picked []m.BuildProfile

	for _, p := range profiles {
		if byName[p.Name] {
			picked = append(picked, p)
			delete(byName, p.Name)
		}
	}

	for _, name := range selected {
		if byName[name] {
			return nil, fmt.Errorf("unknown build profile %q", name)
		}
	}

	return picked, nil
}

func buildTimeoutFromConfig() time.Duration {
	timeout := viper.GetDuration(buildTimeoutKey)
	if timeout < 0 {
		return 0
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
