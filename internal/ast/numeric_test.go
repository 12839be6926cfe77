package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sophiekatz/forge-go/internal/position"
)

func TestNumericContainingTypeIntInt(t *testing.T) {
	cases := []struct {
		name          string
		a, b          *TypeInt
		wantUnsigned  bool
		wantBitWidth  BitWidth
	}{
		{"same signed width", NewTypeInt(position.Null, IntFlagNone, 32), NewTypeInt(position.Null, IntFlagNone, 32), false, 32},
		{"same signed widen", NewTypeInt(position.Null, IntFlagNone, 16), NewTypeInt(position.Null, IntFlagNone, 32), false, 32},
		{"same unsigned widen", NewTypeInt(position.Null, IntFlagUnsigned, 8), NewTypeInt(position.Null, IntFlagUnsigned, 16), true, 16},
		{"mixed sign doubles", NewTypeInt(position.Null, IntFlagNone, 16), NewTypeInt(position.Null, IntFlagUnsigned, 16), false, 32},
		{"mixed sign caps at 64", NewTypeInt(position.Null, IntFlagNone, 64), NewTypeInt(position.Null, IntFlagUnsigned, 64), false, 64},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NumericContainingType(c.a, c.b).(*TypeInt)
			require.Equal(t, c.wantUnsigned, got.IsUnsigned())
			require.Equal(t, c.wantBitWidth, got.BitWidth)
		})
	}
}

func TestNumericContainingTypeFloatFloat(t *testing.T) {
	got := NumericContainingType(NewTypeFloat(position.Null, 32), NewTypeFloat(position.Null, 64)).(*TypeFloat)
	require.Equal(t, BitWidth(64), got.BitWidth)
}

// TestNumericContainingTypeIntFloatAsymmetry pins the asymmetric rule
// for a 32-bit int combined with a 32-bit float: signed i32 widens to
// f32, but unsigned u32 widens to f64 because f32 cannot represent
// every u32 value exactly.
func TestNumericContainingTypeIntFloatAsymmetry(t *testing.T) {
	f32 := NewTypeFloat(position.Null, 32)

	signed := NumericContainingType(NewTypeInt(position.Null, IntFlagNone, 32), f32).(*TypeFloat)
	require.Equal(t, BitWidth(32), signed.BitWidth)

	unsigned := NumericContainingType(NewTypeInt(position.Null, IntFlagUnsigned, 32), f32).(*TypeFloat)
	require.Equal(t, BitWidth(64), unsigned.BitWidth)
}

func TestNumericContainingTypeIntFloatNarrowInt(t *testing.T) {
	got := NumericContainingType(NewTypeInt(position.Null, IntFlagNone, 16), NewTypeFloat(position.Null, 32)).(*TypeFloat)
	require.Equal(t, BitWidth(32), got.BitWidth)
}

func TestNumericContainingTypeIntFloatWideInt(t *testing.T) {
	got := NumericContainingType(NewTypeInt(position.Null, IntFlagNone, 64), NewTypeFloat(position.Null, 32)).(*TypeFloat)
	require.Equal(t, BitWidth(64), got.BitWidth)
}

func TestNumericContainingTypeFloat64Dominates(t *testing.T) {
	got := NumericContainingType(NewTypeInt(position.Null, IntFlagNone, 8), NewTypeFloat(position.Null, 64)).(*TypeFloat)
	require.Equal(t, BitWidth(64), got.BitWidth)
}

func TestNumericContainingTypeNonNumericReturnsNil(t *testing.T) {
	require.Nil(t, NumericContainingType(NewTypeBool(position.Null), NewTypeInt(position.Null, IntFlagNone, 32)))
}

func TestNumericContainingTypeIsCommutative(t *testing.T) {
	i := NewTypeInt(position.Null, IntFlagNone, 32)
	f := NewTypeFloat(position.Null, 32)
	require.True(t, Compare(NumericContainingType(i, f), NumericContainingType(f, i)))
}
