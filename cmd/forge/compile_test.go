package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiekatz/forge-go/internal/config"
	"github.com/sophiekatz/forge-go/internal/streams"
)

func testConfig() *config.Config {
	return &config.Config{ColorMode: streams.ModeDisabled, UnicodeMode: streams.ModeDisabled}
}

func TestRunCompileRequiresOutputPathWhenWritingObjectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.forge")
	require.NoError(t, os.WriteFile(path, []byte("fn f() {}"), 0o644))

	err := runCompile(testConfig(), compileOptions{path: path})

	var cliErr config.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, config.ErrMissingInput, cliErr.Code)
}

func TestRunCompileAllowsOnlyParseWithoutOutputPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.forge")
	require.NoError(t, os.WriteFile(path, []byte("fn f() {}"), 0o644))

	err := runCompile(testConfig(), compileOptions{path: path, onlyParse: true})

	// No real parser is wired in yet, so the noop parser's EEXT-1
	// failure still surfaces as a non-zero exit, but it must be the
	// exit-code sentinel (already rendered), not a missing-output-path
	// CLIError.
	var exitErr exitCodeError
	assert.True(t, errors.As(err, &exitErr))
}

func TestRunCompileReportsUnreadableSource(t *testing.T) {
	err := runCompile(testConfig(), compileOptions{
		path:       filepath.Join(t.TempDir(), "does-not-exist.forge"),
		outputPath: "out.o",
	})

	var cliErr config.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, config.ErrUnreadableSrc, cliErr.Code)
}

func TestRunCompileReportsParseFailureAsExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.forge")
	require.NoError(t, os.WriteFile(path, []byte("fn f() {}"), 0o644))

	err := runCompile(testConfig(), compileOptions{path: path, outputPath: filepath.Join(dir, "a.o")})

	var exitErr exitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, exitCodeError(1), exitErr)
}

func TestParseLinkModeRejectsUnknownMode(t *testing.T) {
	_, err := parseLinkMode("bogus")
	assert.Error(t, err)
}
