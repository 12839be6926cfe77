package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiekatz/forge-go/internal/streams"
)

func TestFromEnvironmentDefaults(t *testing.T) {
	t.Setenv("FORGE_DEBUG", "")
	t.Setenv("FORGE_COLOR_MODE", "")
	t.Setenv("FORGE_UNICODE_MODE", "")

	cfg, err := FromEnvironment()
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, streams.ModeAuto, cfg.ColorMode)
	assert.Equal(t, streams.ModeAuto, cfg.UnicodeMode)
}

func TestFromEnvironmentReadsForgeVars(t *testing.T) {
	t.Setenv("FORGE_DEBUG", "true")
	t.Setenv("FORGE_COLOR_MODE", "enabled")
	t.Setenv("FORGE_UNICODE_MODE", "disabled")

	cfg, err := FromEnvironment()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, streams.ModeEnabled, cfg.ColorMode)
	assert.Equal(t, streams.ModeDisabled, cfg.UnicodeMode)
}

func TestFromEnvironmentRejectsInvalidDebug(t *testing.T) {
	t.Setenv("FORGE_DEBUG", "maybe")
	t.Setenv("FORGE_COLOR_MODE", "")
	t.Setenv("FORGE_UNICODE_MODE", "")

	_, err := FromEnvironment()
	assert.Error(t, err)
}

func TestFromEnvironmentRejectsInvalidColorMode(t *testing.T) {
	t.Setenv("FORGE_DEBUG", "")
	t.Setenv("FORGE_COLOR_MODE", "rainbow")
	t.Setenv("FORGE_UNICODE_MODE", "")

	_, err := FromEnvironment()
	assert.Error(t, err)
}

func TestOverrideFromOnlyAppliesSetFlags(t *testing.T) {
	cfg := &Config{Debug: false, ColorMode: streams.ModeAuto, UnicodeMode: streams.ModeAuto}

	cfg.OverrideFrom(&Flags{
		Debug:        true,
		DebugSet:     true,
		ColorModeSet: false,
	})

	assert.True(t, cfg.Debug)
	assert.Equal(t, streams.ModeAuto, cfg.ColorMode, "unset flags must not override the environment value")
}

func TestResolveFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("FORGE_DEBUG", "")
	t.Setenv("FORGE_COLOR_MODE", "disabled")
	t.Setenv("FORGE_UNICODE_MODE", "")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterGlobalFlags(fs)
	require.NoError(t, fs.Parse([]string{"--color-mode=enabled", "--debug"}))

	cfg, err := Resolve(fs)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, streams.ModeEnabled, cfg.ColorMode, "explicit flag must override FORGE_COLOR_MODE")
}

func TestResolveGlobalFlagsRejectsInvalidMode(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterGlobalFlags(fs)
	require.NoError(t, fs.Parse([]string{"--unicode-mode=bogus"}))

	_, err := ResolveGlobalFlags(fs)
	assert.Error(t, err)
}
