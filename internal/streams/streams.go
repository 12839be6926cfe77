// Package streams wraps an output writer with color and Unicode
// capability flags, ported from lib/forge/streams/output.c. Color and
// Unicode support can each be forced on, forced off, or
// auto-detected from the terminal, matching the ColorMode/UnicodeMode
// forge's CLI exposes (§6 "Environment & CLI").
package streams

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Mode selects whether a capability is forced off, forced on, or
// auto-detected from the terminal.
type Mode int

const (
	ModeAuto Mode = iota
	ModeDisabled
	ModeEnabled
)

// ParseMode parses a --color-mode/--unicode-mode flag or
// FORGE_COLOR_MODE/FORGE_UNICODE_MODE environment value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "disabled", "off", "false":
		return ModeDisabled, nil
	case "enabled", "on", "true":
		return ModeEnabled, nil
	default:
		return ModeAuto, fmt.Errorf("streams: invalid mode %q (want auto, disabled, or enabled)", s)
	}
}

// Color is an ANSI SGR attribute, ported from
// frg_stream_output_color_t / frg_stream_output_set_color's switch.
type Color int

const (
	ColorReset Color = iota
	ColorBold
	ColorDim
	ColorItalic
	ColorUnderline
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

var ansiCodes = map[Color]string{
	ColorReset:         "\033[0;0m",
	ColorBold:          "\033[1m",
	ColorDim:           "\033[2m",
	ColorItalic:        "\033[3m",
	ColorUnderline:     "\033[4m",
	ColorBlack:         "\033[30m",
	ColorRed:           "\033[31m",
	ColorGreen:         "\033[32m",
	ColorYellow:        "\033[33m",
	ColorBlue:          "\033[34m",
	ColorMagenta:       "\033[35m",
	ColorCyan:          "\033[36m",
	ColorWhite:         "\033[37m",
	ColorBrightBlack:   "\033[90m",
	ColorBrightRed:     "\033[91m",
	ColorBrightGreen:   "\033[92m",
	ColorBrightYellow:  "\033[93m",
	ColorBrightBlue:    "\033[94m",
	ColorBrightMagenta: "\033[95m",
	ColorBrightCyan:    "\033[96m",
	ColorBrightWhite:   "\033[97m",
}

// Stream wraps an io.Writer with resolved color/Unicode capability
// flags. Unlike the C original's frg_stream_output_t, it never owns
// the underlying file descriptor.
type Stream struct {
	w       io.Writer
	color   bool
	unicode bool
}

// New resolves colorMode/unicodeMode against w — auto-detecting a
// terminal's capabilities only when w is os.Stdout or os.Stderr and
// the requested mode is ModeAuto, exactly as
// frg_stream_output_new_file restricts FLAG_DETECT_* to stdout/stderr.
func New(w io.Writer, colorMode, unicodeMode Mode) *Stream {
	s := &Stream{w: w}
	detect := w == os.Stdout || w == os.Stderr

	switch colorMode {
	case ModeEnabled:
		s.color = true
	case ModeDisabled:
		s.color = false
	case ModeAuto:
		s.color = detect && detectColor(w)
	}

	switch unicodeMode {
	case ModeEnabled:
		s.unicode = true
	case ModeDisabled:
		s.unicode = false
	case ModeAuto:
		s.unicode = detect && detectUnicode()
	}

	return s
}

func detectColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// detectUnicode mirrors _frg_stream_output_detect_unicode's POSIX
// branch: Unicode is assumed supported unless TERM is the bare Linux
// console, which historically ships a limited glyph set.
func detectUnicode() bool {
	return os.Getenv("TERM") != "linux"
}

// Color reports whether ANSI color codes should be emitted.
func (s *Stream) Color() bool { return s.color }

// Unicode reports whether Unicode glyphs should be emitted in place
// of ASCII fallbacks.
func (s *Stream) Unicode() bool { return s.unicode }

// WriteString writes s verbatim.
func (s *Stream) WriteString(text string) {
	io.WriteString(s.w, text)
}

// WriteColor emits the ANSI escape for color if this stream has color
// enabled; it is a no-op otherwise, matching
// frg_stream_output_set_color's own FLAG_COLOR guard.
func (s *Stream) WriteColor(color Color) {
	if !s.color {
		return
	}
	s.WriteString(ansiCodes[color])
}

// ChooseGlyph returns unicode if this stream has Unicode enabled,
// ascii otherwise — ported from
// frg_stream_output_choose_ascii_or_unicode.
func (s *Stream) ChooseGlyph(ascii, unicode string) string {
	if s.unicode {
		return unicode
	}
	return ascii
}

// Stdout wraps os.Stdout with the given capability modes.
func Stdout(colorMode, unicodeMode Mode) *Stream { return New(os.Stdout, colorMode, unicodeMode) }

// Stderr wraps os.Stderr with the given capability modes.
func Stderr(colorMode, unicodeMode Mode) *Stream { return New(os.Stderr, colorMode, unicodeMode) }
