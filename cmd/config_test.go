package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oaks.dev/pkg/hygiene/internal/domain"
	m "oaks.dev/pkg/hygiene/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "hygiene", configBaseName)
	assert.Equal(t, "hygiene.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "HYGIENE", envPrefix)
	assert.Equal(t, 1000, defaultSizeMaxLines)
	assert.Equal(t, 10*time.Minute, defaultBuildTimeout)
	assert.Equal(t, "build-errors.log", defaultBuildLogFile)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestPlacementRulesFromConfig_Defaults(t *testing.T) {
	assert.Equal(t, domain.DefaultPlacementRules(), placementRulesFromConfig())
}

func TestPlacementRulesFromConfig_Override(t *testing.T) {
	viper.Set(placementTerminatorsKey, ";,")
	t.Cleanup(func() { viper.Set(placementTerminatorsKey, domain.DefaultPlacementRules().Quote.Terminators) })

	assert.Equal(t, ";,", placementRulesFromConfig().Quote.Terminators)
}

func TestBuildProfilesFromConfig(t *testing.T) {
	t.Run("defaults in order", func(t *testing.T) {
		profiles, err := buildProfilesFromConfig(nil)
		require.NoError(t, err)

		names := make([]string, 0, len(profiles))
		for _, p := range profiles {
			names = append(names, p.Name)
		}

		assert.Equal(t, []string{"default", "all-features", "no-default-features"}, names)
		assert.Empty(t, profiles[0].Args)
		assert.Equal(t, []string{"--all-features"}, profiles[1].Args)
	})

	t.Run("selection keeps configuration order", func(t *testing.T) {
		profiles, err := buildProfilesFromConfig([]string{"no-default-features", "default"})
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "default", profiles[0].Name)
		assert.Equal(t, "no-default-features", profiles[1].Name)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := buildProfilesFromConfig([]string{"nightly"})
		assert.ErrorContains(t, err, `unknown build profile "nightly"`)
	})
}

func TestBuildArgsFromConfig(t *testing.T) {
	root := t.TempDir()

	args, err := buildArgsFromConfig(m.Path(root), []string{"default"})
	require.NoError(t, err)

	assert.Equal(t, m.Path(root), args.Root)
	assert.Equal(t, "cargo", args.Tool)
	assert.Equal(t, "build", args.Subcommand)
	assert.Equal(t, m.Path(filepath.Join(root, "build-errors.log")), args.LogFile)
	assert.False(t, args.DenyWarnings)
	require.Len(t, args.Profiles, 1)
}

func TestBuildTimeoutFromConfig(t *testing.T) {
	assert.Equal(t, defaultBuildTimeout, buildTimeoutFromConfig())

	viper.Set(buildTimeoutKey, "90s")
	t.Cleanup(func() { viper.Set(buildTimeoutKey, defaultBuildTimeout.String()) })

	assert.Equal(t, 90*time.Second, buildTimeoutFromConfig())
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
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	logPath := filepath.Join(t.TempDir(), "hygiene.log")
	configureLogger(logPath, true)

	slog.Debug("debug line", "key", "value")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line")
	assert.Contains(t, string(data), "key=value")
}
