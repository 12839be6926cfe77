package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiekatz/forge-go/internal/position"
)

func TestAllKindsRegistered(t *testing.T) {
	for _, k := range AllKinds() {
		info := k.Info()
		assert.NotEmpty(t, info.Name, "kind %d has no name", k)
		assert.Equal(t, k, info.Kind)
	}
}

func TestKindInfoPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Kind(-1).Info() })
	assert.Panics(t, func() { Kind(KindCount() + 1).Info() })
}

func TestFlagsHas(t *testing.T) {
	f := FlagValue | FlagValueBinary
	assert.True(t, f.Has(FlagValue))
	assert.True(t, f.Has(FlagValueBinary))
	assert.True(t, f.Has(FlagValue|FlagValueBinary))
	assert.False(t, f.Has(FlagValueUnary))
}

func TestOperatorKindsCarryOperatorSymbol(t *testing.T) {
	require.Equal(t, "+", KindValueAdd.Info().Operator)
	require.Equal(t, "&&", KindValueLogicalAnd.Info().Operator)
	require.Equal(t, ".", KindValueAccess.Info().Operator)
	assert.Empty(t, KindTypeInt.Info().Operator)
}

func TestDeclarationFunctionArgumentHasNoDirectDeclarationName(t *testing.T) {
	assert.False(t, KindDeclarationFunctionArgument.Info().HasDeclarationName)
	assert.True(t, KindDeclarationFunction.Info().HasDeclarationName)
}

// TestMetadataTableInvariants walks every registered Kind and checks the
// table-wide invariants §8 requires be audited exhaustively, rather than
// spot-checked for a handful of kinds.
func TestMetadataTableInvariants(t *testing.T) {
	for _, k := range AllKinds() {
		info := k.Info()
		flags := info.Flags

		families := 0
		for _, f := range []Flags{FlagType, FlagDeclaration, FlagStatement, FlagValue} {
			if flags.Has(f) {
				families++
			}
		}
		assert.LessOrEqualf(t, families, 1, "kind %s sets more than one disjoint family flag", info.Name)

		if flags.Has(FlagValueUnary) || flags.Has(FlagValueBinary) {
			assert.Truef(t, flags.Has(FlagValue), "kind %s is unary/binary but not a value", info.Name)
			assert.Truef(t, flags.Has(FlagHasChildren), "kind %s is unary/binary but has no children", info.Name)
		}

		if flags.Has(FlagValue) {
			if k == KindValueStructure {
				assert.Falsef(t, info.HasTypeResolver, "value-structure must not have a type resolver")
			} else {
				assert.Truef(t, info.HasTypeResolver, "kind %s is a value but has no type resolver", info.Name)
			}
		}

		if flags.Has(FlagHasChildren) {
			node := buildSampleNode(k)
			assert.NotPanicsf(t, func() { Children(node) },
				"kind %s carries HasChildren but its acceptor (Children) panics", info.Name)
			assert.NotPanicsf(t, func() { Destroy(node) },
				"kind %s carries HasChildren but its destructor (Destroy) panics", info.Name)
		}
	}
}

// buildSampleNode constructs a minimal, well-formed node of kind k so
// TestMetadataTableInvariants can exercise Children/Destroy for every
// kind that claims to have children, rather than only the handful
// exercised incidentally by other tests.
func buildSampleNode(k Kind) Node {
	rng := position.Null
	leafValue := NewValueBool(rng, true)
	leafType := NewTypeBool(rng)
	property := NewDeclarationProperty(rng, 0, "p", NewTypeBool(rng))
	body := NewStatementBlock(rng, nil)

	switch k {
	case KindTypeVoid:
		return NewTypeVoid(rng)
	case KindTypeBool:
		return NewTypeBool(rng)
	case KindTypeInt:
		return NewTypeInt(rng, 0, 32)
	case KindTypeFloat:
		return NewTypeFloat(rng, 32)
	case KindTypeSymbol:
		return NewTypeSymbol(rng, "T")
	case KindTypePointer:
		return NewTypePointer(rng, 0, leafType)
	case KindTypeArray:
		return NewTypeArray(rng, 1, leafType)
	case KindTypeFunction:
		return NewTypeFunction(rng, nil, nil, nil, leafType)

	case KindDeclarationUnion:
		return NewDeclarationUnion(rng, "u", []Node{property})
	case KindDeclarationStructure:
		return NewDeclarationStructure(rng, "s", []Node{property})
	case KindDeclarationProperty:
		return property
	case KindDeclarationInterface:
		return NewDeclarationInterface(rng, 0, "i", nil, []Node{property})
	case KindDeclarationFunctionArgument:
		return NewDeclarationFunctionArgument(rng, 0, property, nil)
	case KindDeclarationFunction:
		return NewDeclarationFunction(rng, 0, "f", NewTypeFunction(rng, nil, nil, nil, leafType), body)
	case KindDeclarationAssignment:
		return NewDeclarationAssignment(rng, property, leafValue)
	case KindDeclarationBlock:
		return NewDeclarationBlock(rng, []Node{property})

	case KindStatementReturn:
		return NewStatementReturn(rng, leafValue)
	case KindStatementIfConditionalClause:
		return NewStatementIfConditionalClause(rng, leafValue, body)
	case KindStatementIf:
		clause := NewStatementIfConditionalClause(rng, leafValue, body)
		return NewStatementIf(rng, []Node{clause}, body)
	case KindStatementWhile:
		return NewStatementWhile(rng, leafValue, body)
	case KindStatementBlock:
		return body

	case KindValueBool:
		return NewValueBool(rng, true)
	case KindValueInt:
		return NewValueInt(rng, 32, 0)
	case KindValueFloat:
		return NewValueFloat(rng, 32, 0)
	case KindValueCharacter:
		return NewValueCharacter(rng, 'a')
	case KindValueString:
		return NewValueString(rng, "s")
	case KindValueArray:
		return NewValueArray(rng, []Node{leafValue})
	case KindValueArrayRepeated:
		return NewValueArrayRepeated(rng, 3, leafValue)
	case KindValueStructure:
		assignment := NewDeclarationAssignment(rng, property, leafValue)
		return NewValueStructure(rng, []Node{assignment})
	case KindValueSymbol:
		return NewValueSymbol(rng, "x")
	case KindValueCallKeywordArgument:
		return NewValueCallKeywordArgument(rng, "k", leafValue)
	case KindValueCall:
		return NewValueCall(rng, leafValue, []Node{leafValue}, nil)
	case KindValueCast:
		return NewValueCast(rng, leafValue, leafType)

	case KindValueDereference, KindValueGetAddress, KindValueBitNot, KindValueNegate,
		KindValueLogicalNot, KindValueIncrement, KindValueDecrement:
		return NewValueUnary(rng, k, leafValue)

	default:
		return NewValueBinary(rng, k, leafValue, leafValue)
	}
}
