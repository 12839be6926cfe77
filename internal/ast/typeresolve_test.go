package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sophiekatz/forge-go/internal/position"
)

type fakeScope map[string]Node

func (s fakeScope) LookupDeclaration(name string) (Node, bool) {
	n, ok := s[name]
	return n, ok
}

func TestTypeResolveLiterals(t *testing.T) {
	scope := fakeScope{}
	require.True(t, Compare(NewTypeBool(position.Null), TypeResolve(NewValueBool(position.Null, true), scope, nil)))

	i := NewValueInt(position.Null, 32, 7)
	require.True(t, Compare(i.Type, TypeResolve(i, scope, nil)))
}

func TestTypeResolveSymbolLookup(t *testing.T) {
	prop := NewDeclarationProperty(position.Null, PropertyFlagNone, "x", NewTypeInt(position.Null, IntFlagNone, 32))
	assign := NewDeclarationAssignment(position.Null, prop, NewValueInt(position.Null, 32, 1))
	scope := fakeScope{"x": assign}

	got := TypeResolve(NewValueSymbol(position.Null, "x"), scope, nil)
	require.True(t, Compare(NewTypeInt(position.Null, IntFlagNone, 32), got))
}

func TestTypeResolveUnknownSymbolReturnsNil(t *testing.T) {
	require.Nil(t, TypeResolve(NewValueSymbol(position.Null, "missing"), fakeScope{}, nil))
}

func TestTypeResolveBinaryArithmeticUsesNumericContainingType(t *testing.T) {
	left := NewValueInt(position.Null, 16, 1)
	right := NewValueInt(position.Null, 32, 2)
	sum := NewValueBinary(position.Null, KindValueAdd, left, right)

	got := TypeResolve(sum, fakeScope{}, nil)
	require.True(t, Compare(NumericContainingType(left.Type, right.Type), got))
}

func TestTypeResolveComparisonIsBool(t *testing.T) {
	eq := NewValueBinary(position.Null, KindValueEquals, NewValueInt(position.Null, 32, 1), NewValueInt(position.Null, 32, 2))
	require.True(t, Compare(NewTypeBool(position.Null), TypeResolve(eq, fakeScope{}, nil)))
}

func TestTypeResolveDereferenceUnwrapsPointer(t *testing.T) {
	pointee := NewTypeInt(position.Null, IntFlagNone, 32)
	ptrVar := NewValueSymbol(position.Null, "p")
	scope := fakeScope{"p": NewDeclarationAssignment(position.Null,
		NewDeclarationProperty(position.Null, PropertyFlagNone, "p", NewTypePointer(position.Null, PointerFlagNone, pointee)),
		NewValueInt(position.Null, 32, 0))}

	deref := NewValueUnary(position.Null, KindValueDereference, ptrVar)
	require.True(t, Compare(pointee, TypeResolve(deref, scope, nil)))
}

func TestTypeResolveAccessResolvesStructureMember(t *testing.T) {
	member := NewDeclarationProperty(position.Null, PropertyFlagNone, "count", NewTypeInt(position.Null, IntFlagNone, 32))
	structure := NewDeclarationStructure(position.Null, "counter", []Node{member})

	scope := fakeScope{
		"counter": structure,
		"c":       NewDeclarationAssignment(position.Null, NewDeclarationProperty(position.Null, PropertyFlagNone, "c", NewTypeSymbol(position.Null, "counter")), nil),
	}

	access := NewValueBinary(position.Null, KindValueAccess, NewValueSymbol(position.Null, "c"), NewValueSymbol(position.Null, "count"))
	got := TypeResolve(access, scope, nil)
	require.True(t, Compare(NewTypeInt(position.Null, IntFlagNone, 32), got))
}
