package ast

import "github.com/sophiekatz/forge-go/internal/position"

// TypeResolve computes the static type of n under scope. diags is passed
// down to nested resolutions; no resolver here emits to it, including
// for unresolvable references. For a value node it
// returns the type of the value; for a declaration node it returns the
// type the declaration denotes. It returns nil when resolution fails or
// when n's kind has no resolver (value-structure is contextually typed
// and never resolves; see KindInfo.HasTypeResolver).
//
// Failure is silent by design (see spec §4.1 "Resolvers may emit
// diagnostics and may return null on failure"): callers decide whether
// a nil result is itself an error worth reporting.
func TypeResolve(n Node, scope ScopeReader, diags DiagnosticSink) Node {
	if n == nil {
		return nil
	}

	switch t := n.(type) {
	// -- declarations --
	case *DeclarationProperty:
		return Clone(t.Type)
	case *DeclarationFunctionArgument:
		if t.Property == nil {
			return nil
		}
		return TypeResolve(t.Property, scope, diags)
	case *DeclarationFunction:
		return Clone(t.Type)
	case *DeclarationAssignment:
		if t.Property != nil && t.Property.Type != nil {
			return Clone(t.Property.Type)
		}
		return TypeResolve(t.Value, scope, diags)

	// -- value literals --
	case *ValueBool:
		return NewTypeBool(position.Null)
	case *ValueInt:
		return Clone(t.Type)
	case *ValueFloat:
		return Clone(t.Type)
	case *ValueCharacter:
		return NewTypeSymbol(position.Null, "char")
	case *ValueString:
		return NewTypeSymbol(position.Null, "string")
	case *ValueArray:
		if len(t.Elements) == 0 {
			return nil
		}
		elem := TypeResolve(t.Elements[0], scope, diags)
		if elem == nil {
			return nil
		}
		return NewTypeArray(position.Null, uint64(len(t.Elements)), elem)
	case *ValueArrayRepeated:
		elem := TypeResolve(t.Element, scope, diags)
		if elem == nil {
			return nil
		}
		return NewTypeArray(position.Null, t.Length, elem)
	case *ValueSymbol:
		decl, ok := scope.LookupDeclaration(t.Name)
		if !ok {
			return nil
		}
		return TypeResolve(decl, scope, diags)
	case *ValueCallKeywordArgument:
		return TypeResolve(t.Value, scope, diags)
	case *ValueCall:
		calleeType := TypeResolve(t.Callee, scope, diags)
		fn, ok := calleeType.(*TypeFunction)
		if !ok {
			return nil
		}
		return Clone(fn.ReturnType)
	case *ValueCast:
		return Clone(t.Type)

	case *ValueUnary:
		return resolveUnary(t, scope, diags)
	case *ValueBinary:
		if t.Kind() == KindValueAccess {
			return resolveAccess(t, scope, diags)
		}
		return resolveBinary(t, scope, diags)

	default:
		return nil
	}
}

func resolveUnary(t *ValueUnary, scope ScopeReader, diags DiagnosticSink) Node {
	switch t.Kind() {
	case KindValueDereference:
		operandType := TypeResolve(t.Operand, scope, diags)
		ptr, ok := operandType.(*TypePointer)
		if !ok {
			return nil
		}
		return Clone(ptr.Value)
	case KindValueGetAddress:
		operandType := TypeResolve(t.Operand, scope, diags)
		if operandType == nil {
			return nil
		}
		return NewTypePointer(position.Null, PointerFlagNone, operandType)
	case KindValueLogicalNot:
		return NewTypeBool(position.Null)
	default: // BitNot, Negate, Increment, Decrement: same type as operand
		return TypeResolve(t.Operand, scope, diags)
	}
}

func resolveBinary(t *ValueBinary, scope ScopeReader, diags DiagnosticSink) Node {
	switch t.Kind() {
	case KindValueEquals, KindValueNotEquals,
		KindValueIsLessThan, KindValueIsLessThanOrEqualTo,
		KindValueIsGreaterThan, KindValueIsGreaterThanOrEqualTo,
		KindValueLogicalAnd, KindValueLogicalOr:
		return NewTypeBool(position.Null)

	case KindValueBitAnd, KindValueBitOr, KindValueBitXor,
		KindValueBitShiftLeft, KindValueBitShiftRight,
		KindValueAdd, KindValueSubtract, KindValueMultiply,
		KindValueDivide, KindValueDivideInt, KindValueModulo, KindValueExponentiate:
		left := TypeResolve(t.Left, scope, diags)
		right := TypeResolve(t.Right, scope, diags)
		if left == nil || right == nil {
			return nil
		}
		return NumericContainingType(left, right)

	default: // assignment variants (including compound): value is the left type
		return TypeResolve(t.Left, scope, diags)
	}
}

// ValueAccess is not a distinct struct type: member access is modeled as
// a ValueBinary (Left = object, Right = a ValueSymbol naming the
// member), matching the generic binary-operator representation used for
// every other two-operand value kind. This alias documents the shape
// TypeResolve expects for KindValueAccess nodes.
type ValueAccess = ValueBinary

func resolveAccess(t *ValueAccess, scope ScopeReader, diags DiagnosticSink) Node {
	member, ok := t.Right.(*ValueSymbol)
	if !ok {
		return nil
	}

	objectType := TypeResolve(t.Left, scope, diags)
	symbol, ok := objectType.(*TypeSymbol)
	if !ok {
		return nil
	}

	decl, ok := scope.LookupDeclaration(symbol.Name)
	if !ok {
		return nil
	}
	structure, ok := decl.(*DeclarationStructure)
	if !ok {
		return nil
	}

	for _, d := range structure.Declarations {
		if name, ok := DeclarationName(d); ok && name == member.Name {
			return TypeResolve(d, scope, diags)
		}
	}
	return nil
}
