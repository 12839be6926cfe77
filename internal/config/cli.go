package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/sophiekatz/forge-go/internal/streams"
)

// Flags holds the global --debug/--color-mode/--unicode-mode values
// parsed off a Cobra command's persistent flag set, along with
// whether each was explicitly set by the user. Grounded on the
// teacher's BuildConfigFromFlags/validateFlags split in
// internal/config/cli.go: flags are registered once, parsed, then
// turned into a typed result the rest of the program consumes.
type Flags struct {
	Debug          bool
	DebugSet       bool
	ColorMode      streams.Mode
	ColorModeSet   bool
	UnicodeMode    streams.Mode
	UnicodeModeSet bool
}

// RegisterGlobalFlags adds --debug, --color-mode, and --unicode-mode
// to fs, mirroring the teacher's pattern of defining flags against a
// *pflag.FlagSet before parsing.
func RegisterGlobalFlags(fs *pflag.FlagSet) {
	fs.Bool("debug", false, "Enable debug mode (recorded in the configuration; writes no trace output).")
	fs.String("color-mode", "auto", "Color output mode: auto, enabled, or disabled.")
	fs.String("unicode-mode", "auto", "Unicode glyph mode: auto, enabled, or disabled.")
}

// ResolveGlobalFlags reads back the flags RegisterGlobalFlags
// defined, mirroring validateFlags reading GetString/GetBool off the
// parsed pflag.FlagSet.
func ResolveGlobalFlags(fs *pflag.FlagSet) (*Flags, error) {
	result := &Flags{}

	debug, err := fs.GetBool("debug")
	if err != nil {
		return nil, err
	}
	result.Debug = debug
	result.DebugSet = fs.Changed("debug")

	colorModeStr, err := fs.GetString("color-mode")
	if err != nil {
		return nil, err
	}
	colorMode, err := streams.ParseMode(colorModeStr)
	if err != nil {
		return nil, fmt.Errorf("config: --color-mode: %w", err)
	}
	result.ColorMode = colorMode
	result.ColorModeSet = fs.Changed("color-mode")

	unicodeModeStr, err := fs.GetString("unicode-mode")
	if err != nil {
		return nil, err
	}
	unicodeMode, err := streams.ParseMode(unicodeModeStr)
	if err != nil {
		return nil, fmt.Errorf("config: --unicode-mode: %w", err)
	}
	result.UnicodeMode = unicodeMode
	result.UnicodeModeSet = fs.Changed("unicode-mode")

	return result, nil
}

// Resolve combines the environment-derived Config with CLI flags
// parsed from fs, flags taking priority, mirroring the teacher's
// "flags override defaults" resolution order.
func Resolve(fs *pflag.FlagSet) (*Config, error) {
	cfg, err := FromEnvironment()
	if err != nil {
		return nil, err
	}

	flags, err := ResolveGlobalFlags(fs)
	if err != nil {
		return nil, err
	}

	cfg.OverrideFrom(flags)
	return cfg, nil
}
