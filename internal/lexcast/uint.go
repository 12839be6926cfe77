// Package lexcast implements forge's lexical-cast helpers: formatting
// and parsing of integer, float, character, and string literals,
// including base prefixes (0b/0o/0x) and width suffixes (i8..i64,
// u8..u64). Ported from lib/forge/lexical_casts/*.c, adapted to work
// directly on strings rather than a parser token reader since the
// concrete lexer is an external collaborator (§1).
package lexcast

import (
	"fmt"
	"strings"
)

// ValidBitWidths lists the integer/pointer bit widths the backend
// supports; anything else is a malformed literal.
var ValidBitWidths = [...]int{8, 16, 32, 64}

func isValidBitWidth(width int) bool {
	for _, w := range ValidBitWidths {
		if w == width {
			return true
		}
	}
	return false
}

func isValidBase(base int) bool {
	switch base {
	case 2, 8, 10, 16:
		return true
	default:
		return false
	}
}

func basePrefix(base int) string {
	switch base {
	case 2:
		return "0b"
	case 8:
		return "0o"
	case 16:
		return "0x"
	default:
		return ""
	}
}

// FormatUintDigits renders value in base without a base prefix or
// width suffix, lowercase digits above 9.
func FormatUintDigits(value uint64, base int) string {
	if !isValidBase(base) {
		panic(fmt.Sprintf("lexcast: invalid base %d", base))
	}

	if value == 0 {
		return "0"
	}

	var buf []byte
	for value != 0 {
		digit := value % uint64(base)
		value /= uint64(base)
		if digit < 10 {
			buf = append(buf, byte('0'+digit))
		} else {
			buf = append(buf, byte('a'+digit-10))
		}
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// FormatUint renders value in base with its base prefix.
func FormatUint(value uint64, base int) string {
	return basePrefix(base) + FormatUintDigits(value, base)
}

// FormatUintSuffix renders the width suffix for an integer type, e.g.
// "u32" or "i8".
func FormatUintSuffix(signed bool, bitWidth int) string {
	if !isValidBitWidth(bitWidth) {
		panic(fmt.Sprintf("lexcast: invalid bit width %d", bitWidth))
	}
	if signed {
		return fmt.Sprintf("i%d", bitWidth)
	}
	return fmt.Sprintf("u%d", bitWidth)
}

// FormatUintLiteral renders a full width-suffixed integer literal
// (base prefix + digits + i/u-width suffix), the canonical literal
// form lexcast.ParseUint round-trips.
func FormatUintLiteral(value uint64, base int, signed bool, bitWidth int) string {
	return FormatUint(value, base) + FormatUintSuffix(signed, bitWidth)
}

func digitValue(c byte, base int) (int, bool) {
	switch {
	case base == 2 && c >= '0' && c <= '1':
		return int(c - '0'), true
	case base == 8 && c >= '0' && c <= '7':
		return int(c - '0'), true
	case base == 10 && c >= '0' && c <= '9':
		return int(c - '0'), true
	case base == 16 && c >= '0' && c <= '9':
		return int(c - '0'), true
	case base == 16 && c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case base == 16 && c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// parseUintDigits consumes as many valid digits (in base, skipping
// underscores) from s as it can, returning the accumulated value and
// how much of s it consumed.
func parseUintDigits(s string, base int, maxDigits int) (value uint64, consumed int) {
	digits := 0
	i := 0
	for i < len(s) {
		if s[i] == '_' {
			i++
			continue
		}
		d, ok := digitValue(s[i], base)
		if !ok {
			break
		}
		value = value*uint64(base) + uint64(d)
		i++
		digits++
		if maxDigits > 0 && digits >= maxDigits {
			break
		}
	}
	return value, i
}

// ParseUintResult is the decoded form of a uint literal: its value,
// and the signedness/width its suffix declared (defaulting to
// unsigned 64-bit when no suffix is present).
type ParseUintResult struct {
	Value    uint64
	Signed   bool
	BitWidth int
}

// ParseUint parses a full width-suffixed integer literal as produced
// by FormatUintLiteral: an optional base prefix, digits in that base,
// and an optional i/u-width suffix.
func ParseUint(s string) (ParseUintResult, error) {
	if s == "" {
		return ParseUintResult{}, fmt.Errorf("lexcast: empty integer literal")
	}

	base := 10
	rest := s
	switch {
	case strings.HasPrefix(s, "0b"):
		base, rest = 2, s[2:]
	case strings.HasPrefix(s, "0o"):
		base, rest = 8, s[2:]
	case strings.HasPrefix(s, "0x"):
		base, rest = 16, s[2:]
	}

	if rest == "" {
		return ParseUintResult{}, fmt.Errorf("lexcast: integer literal %q has a base prefix but no digits", s)
	}

	value, consumed := parseUintDigits(rest, base, 0)
	if consumed == 0 {
		return ParseUintResult{}, fmt.Errorf("lexcast: integer literal %q has no valid digits in base %d", s, base)
	}

	suffix := rest[consumed:]
	if suffix == "" {
		return ParseUintResult{Value: value, Signed: false, BitWidth: 64}, nil
	}

	signed := suffix[0] == 'i'
	if !signed && suffix[0] != 'u' {
		return ParseUintResult{}, fmt.Errorf("lexcast: integer literal %q has an invalid suffix %q", s, suffix)
	}

	bitWidth, consumed := parseUintDigits(suffix[1:], 10, 0)
	if consumed == 0 || consumed != len(suffix)-1 {
		return ParseUintResult{}, fmt.Errorf("lexcast: integer literal %q has a malformed width suffix %q", s, suffix)
	}
	if !isValidBitWidth(int(bitWidth)) {
		return ParseUintResult{}, fmt.Errorf("lexcast: integer literal %q declares unsupported bit width %d", s, bitWidth)
	}

	return ParseUintResult{Value: value, Signed: signed, BitWidth: int(bitWidth)}, nil
}
