package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sophiekatz/forge-go/internal/position"
)

func sampleTree() Node {
	return NewDeclarationFunction(
		position.Null,
		FunctionFlagNone,
		"add",
		NewTypeFunction(
			position.Null,
			[]Node{
				NewDeclarationFunctionArgument(position.Null, FunctionArgumentFlagNone,
					NewDeclarationProperty(position.Null, PropertyFlagNone, "a", NewTypeInt(position.Null, IntFlagNone, 32)), nil),
				NewDeclarationFunctionArgument(position.Null, FunctionArgumentFlagNone,
					NewDeclarationProperty(position.Null, PropertyFlagNone, "b", NewTypeInt(position.Null, IntFlagNone, 32)), nil),
			},
			nil, nil,
			NewTypeInt(position.Null, IntFlagNone, 32),
		),
		NewStatementBlock(position.Null, []Node{
			NewStatementReturn(position.Null,
				NewValueBinary(position.Null, KindValueAdd,
					NewValueSymbol(position.Null, "a"),
					NewValueSymbol(position.Null, "b"))),
		}),
	)
}

func TestCloneProducesStructurallyEqualCopy(t *testing.T) {
	original := sampleTree()
	clone := Clone(original)

	require.NotSame(t, original, clone)
	require.True(t, Compare(original, clone))
}

func TestCloneIsIndependent(t *testing.T) {
	original := sampleTree().(*DeclarationFunction)
	clone := Clone(original).(*DeclarationFunction)

	clone.Name = "different"
	require.NotEqual(t, original.Name, clone.Name)
}

func TestDestroyLeavesCloneValid(t *testing.T) {
	original := sampleTree()
	clone := Clone(original)

	Destroy(original)

	require.True(t, IsDestroyed(original))
	require.False(t, IsDestroyed(clone))
	require.False(t, Compare(original, clone))
}

func TestCompareNilHandling(t *testing.T) {
	require.True(t, Compare(nil, nil))
	require.False(t, Compare(nil, NewTypeBool(position.Null)))
	require.False(t, Compare(NewTypeBool(position.Null), nil))
}

func TestCompareIgnoresSourceRange(t *testing.T) {
	a := NewValueBool(position.Range{Start: position.Location{Path: "a.frg", Line: 1, Column: 1}, Length: 4}, true)
	b := NewValueBool(position.Null, true)
	require.True(t, Compare(a, b))
}

func TestCompareDifferentKindsNeverEqual(t *testing.T) {
	require.False(t, Compare(NewTypeBool(position.Null), NewTypeVoid(position.Null)))
}

func TestReplaceChildInPlace(t *testing.T) {
	left := NewValueSymbol(position.Null, "a")
	right := NewValueSymbol(position.Null, "b")
	sum := NewValueBinary(position.Null, KindValueAdd, left, right)

	replacement := NewValueInt(position.Null, 32, 42)
	ok := ReplaceChild(sum, left, replacement)

	require.True(t, ok)
	require.Same(t, replacement, sum.(*ValueBinary).Left)
}

func TestChildrenSkipsNilEntries(t *testing.T) {
	ret := NewStatementReturn(position.Null, nil)
	require.Empty(t, Children(ret))
}

func TestDeclarationNameDelegatesForFunctionArgument(t *testing.T) {
	prop := NewDeclarationProperty(position.Null, PropertyFlagNone, "count", NewTypeInt(position.Null, IntFlagNone, 32))
	arg := NewDeclarationFunctionArgument(position.Null, FunctionArgumentFlagNone, prop, nil)

	name, ok := DeclarationName(arg)
	require.True(t, ok)
	require.Equal(t, "count", name)
}

func TestDeclarationNameFalseForValueKinds(t *testing.T) {
	_, ok := DeclarationName(NewValueBool(position.Null, true))
	require.False(t, ok)
}
