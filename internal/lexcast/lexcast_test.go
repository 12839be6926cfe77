package lexcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCharacterRoundTrip exercises spec §8's round-trip law
// parse(format_char(c)) == c for a representative sample of each
// named category: null, control, printable ASCII, printable BMP,
// supplementary plane, and the quote characters themselves.
func TestCharacterRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		value rune
	}{
		{"null", 0},
		{"control", '\x04'},
		{"printable ascii", 'a'},
		{"space", ' '},
		{"printable bmp", '世'},
		{"supplementary plane", '😀'},
		{"single quote", '\''},
		{"double quote", '"'},
		{"backslash", '\\'},
		{"newline", '\n'},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseChar(FormatChar(c.value))
			require.NoError(t, err)
			assert.Equal(t, c.value, got)
		})
	}
}

func TestFormatCharEscapes(t *testing.T) {
	assert.Equal(t, `'\0'`, FormatChar(0))
	assert.Equal(t, `'\n'`, FormatChar('\n'))
	assert.Equal(t, `'\\'`, FormatChar('\\'))
	assert.Equal(t, `'\x04'`, FormatChar('\x04'))
	assert.Equal(t, `'a'`, FormatChar('a'))
}

// TestStringRoundTrip exercises spec §8's parse(format_string(s)) ==
// s law for arbitrary UTF-8 strings.
func TestStringRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a",
		"hello, world",
		"line\nbreak",
		"quote\"inside",
		"tab\tand\\backslash",
		"日本語",
		"😀multi😀byte",
	}

	for _, s := range cases {
		got, err := ParseString(FormatString(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestFormatStringEscapesUnprintableASCII(t *testing.T) {
	assert.Equal(t, `"\x04"`, FormatString("\x04"))
	assert.Equal(t, `"a"`, FormatString("a"))
	assert.Equal(t, `"\\"`, FormatString("\\"))
}

// TestUintRoundTrip exercises spec §8's
// parse_uint(format_uint(n, base)) == n law across every supported
// base and width suffix.
func TestUintRoundTrip(t *testing.T) {
	bases := []int{2, 8, 10, 16}
	widths := []int{8, 16, 32, 64}

	for _, base := range bases {
		for _, width := range widths {
			for _, signed := range []bool{false, true} {
				literal := FormatUintLiteral(123, base, signed, width)
				t.Run(literal, func(t *testing.T) {
					got, err := ParseUint(literal)
					require.NoError(t, err)
					assert.Equal(t, uint64(123), got.Value)
					assert.Equal(t, signed, got.Signed)
					assert.Equal(t, width, got.BitWidth)
				})
			}
		}
	}
}

func TestFormatUintBasePrefixes(t *testing.T) {
	assert.Equal(t, "0b1010", FormatUint(10, 2))
	assert.Equal(t, "0o12", FormatUint(10, 8))
	assert.Equal(t, "10", FormatUint(10, 10))
	assert.Equal(t, "0xa", FormatUint(10, 16))
}

func TestFormatUintZero(t *testing.T) {
	assert.Equal(t, "0b0", FormatUint(0, 2))
}

func TestParseUintWithoutSuffixDefaultsToUnsigned64(t *testing.T) {
	got, err := ParseUint("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.Value)
	assert.False(t, got.Signed)
	assert.Equal(t, 64, got.BitWidth)
}

func TestParseUintRejectsEmpty(t *testing.T) {
	_, err := ParseUint("")
	assert.Error(t, err)
}

func TestParseUintRejectsInvalidBitWidth(t *testing.T) {
	_, err := ParseUint("5u7")
	assert.Error(t, err)
}

func TestParseUintRejectsNoDigits(t *testing.T) {
	_, err := ParseUint("0x")
	assert.Error(t, err)
}

func TestFloatRoundTrip(t *testing.T) {
	cases := []struct {
		value    float64
		bitWidth int
	}{
		{0, 64}, {1.5, 64}, {-2.25, 64}, {3.14159, 32},
	}

	for _, c := range cases {
		literal := FormatFloat(c.value, c.bitWidth)
		got, bitWidth, err := ParseFloat(literal)
		require.NoError(t, err)
		assert.Equal(t, c.bitWidth, bitWidth)
		if c.bitWidth == 32 {
			assert.InDelta(t, float32(c.value), float32(got), 1e-6)
		} else {
			assert.InDelta(t, c.value, got, 1e-9)
		}
	}
}

func TestParseFloatRejectsMissingSuffix(t *testing.T) {
	_, _, err := ParseFloat("1.5")
	assert.Error(t, err)
}

func TestParseFloatRejectsInvalidSuffix(t *testing.T) {
	_, _, err := ParseFloat("1.5f16")
	assert.Error(t, err)
}
