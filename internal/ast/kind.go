// Package ast models the forge abstract syntax tree: node kinds, their
// capability metadata, concrete node types, and the generic operations
// (clone, compare, destroy, print, type resolution) that work uniformly
// across every kind through a type switch rather than a literal
// per-kind function pointer, since Go has no function-pointer struct
// field idiom that reads naturally.
package ast

import "fmt"

// Kind identifies the syntactic category of an AST node. The values are
// declared in the same order as the grammar productions they model:
// types, then declarations, then statements, then values (the
// unary/binary operator kinds come last within values, except
// dereference and get-address, which precede call and cast).
type Kind int

const (
	KindTypeVoid Kind = iota
	KindTypeBool
	KindTypeInt
	KindTypeFloat
	KindTypeSymbol
	KindTypePointer
	KindTypeArray
	KindTypeFunction
	KindDeclarationUnion
	KindDeclarationStructure
	KindDeclarationProperty
	KindDeclarationInterface
	KindDeclarationFunctionArgument
	KindDeclarationFunction
	KindDeclarationAssignment
	KindDeclarationBlock
	KindStatementReturn
	KindStatementIfConditionalClause
	KindStatementIf
	KindStatementWhile
	KindStatementBlock
	KindValueBool
	KindValueInt
	KindValueFloat
	KindValueCharacter
	KindValueString
	KindValueArray
	KindValueArrayRepeated
	KindValueStructure
	KindValueSymbol
	KindValueDereference
	KindValueGetAddress
	KindValueCallKeywordArgument
	KindValueCall
	KindValueCast
	KindValueAccess
	KindValueBitNot
	KindValueBitAnd
	KindValueBitOr
	KindValueBitXor
	KindValueBitShiftLeft
	KindValueBitShiftRight
	KindValueNegate
	KindValueAdd
	KindValueSubtract
	KindValueMultiply
	KindValueDivide
	KindValueDivideInt
	KindValueModulo
	KindValueExponentiate
	KindValueEquals
	KindValueNotEquals
	KindValueIsLessThan
	KindValueIsLessThanOrEqualTo
	KindValueIsGreaterThan
	KindValueIsGreaterThanOrEqualTo
	KindValueLogicalNot
	KindValueLogicalAnd
	KindValueLogicalOr
	KindValueAssign
	KindValueBitAndAssign
	KindValueBitOrAssign
	KindValueBitXorAssign
	KindValueBitShiftLeftAssign
	KindValueBitShiftRightAssign
	KindValueAddAssign
	KindValueIncrement
	KindValueSubtractAssign
	KindValueDecrement
	KindValueMultiplyAssign
	KindValueDivideAssign
	KindValueDivideIntAssign
	KindValueModuloAssign
	KindValueExponentiateAssign
	KindValueLogicalAndAssign
	KindValueLogicalOrAssign

	kindCount
)

// Flags is a bitmask of capabilities a node Kind carries. It mirrors the
// C enum frg_ast_node_kind_flags_t bit for bit.
type Flags uint16

const (
	FlagNone        Flags = 0
	FlagType        Flags = 1 << 0
	FlagTypePrimary Flags = 1 << 1
	FlagDeclaration Flags = 1 << 2
	FlagStatement   Flags = 1 << 3
	FlagValue       Flags = 1 << 4
	FlagValueUnary  Flags = 1 << 5
	FlagValueBinary Flags = 1 << 6
	FlagHasChildren Flags = 1 << 7
)

// Has reports whether all bits set in want are also set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// KindInfo is the immutable metadata recorded for a single node Kind.
// One instance exists per Kind, built once at package init and never
// mutated afterward.
type KindInfo struct {
	Kind     Kind
	Name     string
	Flags    Flags
	Operator string // the source operator symbol, e.g. "+", "&&"; empty if Kind isn't an operator

	// HasTypeResolver reports whether this Kind participates in type
	// resolution (TypeResolve's dispatch in typeresolve.go). Type nodes,
	// container declarations (union/structure/interface/block) and
	// value-structure never resolve to a type.
	HasTypeResolver bool

	// HasDeclarationName reports whether this Kind exposes a direct
	// DeclarationName() accessor. DeclarationFunctionArgument does not:
	// it delegates to its nested Property instead (see DeclarationName
	// in declname.go).
	HasDeclarationName bool
}

var kindInfos [kindCount]KindInfo

func register(k Kind, name string, flags Flags, operator string, hasResolver, hasDeclName bool) {
	kindInfos[k] = KindInfo{
		Kind:               k,
		Name:               name,
		Flags:              flags,
		Operator:           operator,
		HasTypeResolver:    hasResolver,
		HasDeclarationName: hasDeclName,
	}
}

func init() {
	const (
		t  = FlagType
		tp = FlagType | FlagTypePrimary
		d  = FlagDeclaration
		s  = FlagStatement
		v  = FlagValue
		vu = FlagValue | FlagValueUnary
		vb = FlagValue | FlagValueBinary
		hc = FlagHasChildren
	)

	register(KindTypeVoid, "type-void", tp, "", false, false)
	register(KindTypeBool, "type-bool", tp, "", false, false)
	register(KindTypeInt, "type-int", t, "", false, false)
	register(KindTypeFloat, "type-float", t, "", false, false)
	register(KindTypeSymbol, "type-symbol", t, "", false, false)
	register(KindTypePointer, "type-pointer", t|hc, "", false, false)
	register(KindTypeArray, "type-array", t|hc, "", false, false)
	register(KindTypeFunction, "type-function", t|hc, "", false, false)

	register(KindDeclarationUnion, "declaration-union", d|hc, "", false, true)
	register(KindDeclarationStructure, "declaration-structure", d|hc, "", false, true)
	register(KindDeclarationProperty, "declaration-property", d|hc, "", true, true)
	register(KindDeclarationInterface, "declaration-interface", d|hc, "", false, true)
	register(KindDeclarationFunctionArgument, "declaration-function-argument", d|hc, "", true, false)
	register(KindDeclarationFunction, "declaration-function", d|hc, "", true, true)
	register(KindDeclarationAssignment, "declaration-assignment", d|hc, "", true, false)
	register(KindDeclarationBlock, "declaration-block", d|hc, "", false, false)

	register(KindStatementReturn, "statement-return", s|hc, "", false, false)
	register(KindStatementIfConditionalClause, "statement-if-conditional-clause", s|hc, "", false, false)
	register(KindStatementIf, "statement-if", s|hc, "", false, false)
	register(KindStatementWhile, "statement-while", s|hc, "", false, false)
	register(KindStatementBlock, "statement-block", s|hc, "", false, false)

	register(KindValueBool, "value-bool", v, "", true, false)
	register(KindValueInt, "value-int", v, "", true, false)
	register(KindValueFloat, "value-float", v, "", true, false)
	register(KindValueCharacter, "value-character", v, "", true, false)
	register(KindValueString, "value-string", v, "", true, false)
	register(KindValueArray, "value-array", v|hc, "", true, false)
	register(KindValueArrayRepeated, "value-array-repeated", v|hc, "", true, false)
	register(KindValueStructure, "value-structure", v|hc, "", false, false)
	register(KindValueSymbol, "value-symbol", v, "", true, false)
	register(KindValueDereference, "value-dereference", vu|hc, "*", true, false)
	register(KindValueGetAddress, "value-get-address", vu|hc, "&", true, false)
	register(KindValueCallKeywordArgument, "value-call-keyword-argument", v|hc, "", true, false)
	register(KindValueCall, "value-call", v|hc, "", true, false)
	register(KindValueCast, "value-cast", v|hc, "as", true, false)
	register(KindValueAccess, "value-access", vb|hc, ".", true, false)
	register(KindValueBitNot, "value-bit-not", vu|hc, "~", true, false)
	register(KindValueBitAnd, "value-bit-and", vb|hc, "&", true, false)
	register(KindValueBitOr, "value-bit-or", vb|hc, "|", true, false)
	register(KindValueBitXor, "value-bit-xor", vb|hc, "^", true, false)
	register(KindValueBitShiftLeft, "value-bit-shift-left", vb|hc, "<<", true, false)
	register(KindValueBitShiftRight, "value-bit-shift-right", vb|hc, ">>", true, false)
	register(KindValueNegate, "value-negate", vu|hc, "-", true, false)
	register(KindValueAdd, "value-add", vb|hc, "+", true, false)
	register(KindValueSubtract, "value-subtract", vb|hc, "-", true, false)
	register(KindValueMultiply, "value-multiply", vb|hc, "*", true, false)
	register(KindValueDivide, "value-divide", vb|hc, "/", true, false)
	register(KindValueDivideInt, "value-divide-int", vb|hc, "//", true, false)
	register(KindValueModulo, "value-modulo", vb|hc, "%", true, false)
	register(KindValueExponentiate, "value-exponentiate", vb|hc, "**", true, false)
	register(KindValueEquals, "value-equals", vb|hc, "==", true, false)
	register(KindValueNotEquals, "value-not-equals", vb|hc, "!=", true, false)
	register(KindValueIsLessThan, "value-is-less-than", vb|hc, "<", true, false)
	register(KindValueIsLessThanOrEqualTo, "value-is-less-than-or-equal-to", vb|hc, "<=", true, false)
	register(KindValueIsGreaterThan, "value-is-greater-than", vb|hc, ">", true, false)
	register(KindValueIsGreaterThanOrEqualTo, "value-is-greater-than-or-equal-to", vb|hc, ">=", true, false)
	register(KindValueLogicalNot, "value-logical-not", vu|hc, "!", true, false)
	register(KindValueLogicalAnd, "value-logical-and", vb|hc, "&&", true, false)
	register(KindValueLogicalOr, "value-logical-or", vb|hc, "||", true, false)
	register(KindValueAssign, "value-assign", vb|hc, "=", true, false)
	register(KindValueBitAndAssign, "value-bit-and-assign", vb|hc, "&=", true, false)
	register(KindValueBitOrAssign, "value-bit-or-assign", vb|hc, "|=", true, false)
	register(KindValueBitXorAssign, "value-bit-xor-assign", vb|hc, "^=", true, false)
	register(KindValueBitShiftLeftAssign, "value-bit-shift-left-assign", vb|hc, "<<=", true, false)
	register(KindValueBitShiftRightAssign, "value-bit-shift-right-assign", vb|hc, ">>=", true, false)
	register(KindValueAddAssign, "value-add-assign", vb|hc, "+=", true, false)
	register(KindValueIncrement, "value-increment", vu|hc, "++", true, false)
	register(KindValueSubtractAssign, "value-subtract-assign", vb|hc, "-=", true, false)
	register(KindValueDecrement, "value-decrement", vu|hc, "--", true, false)
	register(KindValueMultiplyAssign, "value-multiply-assign", vb|hc, "*=", true, false)
	register(KindValueDivideAssign, "value-divide-assign", vb|hc, "/=", true, false)
	register(KindValueDivideIntAssign, "value-divide-int-assign", vb|hc, "//=", true, false)
	register(KindValueModuloAssign, "value-modulo-assign", vb|hc, "%=", true, false)
	register(KindValueExponentiateAssign, "value-exponentiate-assign", vb|hc, "**=", true, false)
	register(KindValueLogicalAndAssign, "value-logical-and-assign", vb|hc, "&&=", true, false)
	register(KindValueLogicalOrAssign, "value-logical-or-assign", vb|hc, "||=", true, false)

	for k := Kind(0); k < kindCount; k++ {
		if kindInfos[k].Name == "" {
			panic(fmt.Sprintf("ast: kind %d was never registered", k))
		}
	}
}

// Info returns the metadata record for k. It panics for an out-of-range
// Kind, since that can only happen from a bug constructing a node.
func (k Kind) Info() KindInfo {
	if k < 0 || k >= kindCount {
		panic(fmt.Sprintf("ast: invalid node kind %d", int(k)))
	}
	return kindInfos[k]
}

func (k Kind) String() string {
	return k.Info().Name
}

// KindCount is the number of distinct node kinds forge defines.
func KindCount() int {
	return int(kindCount)
}

// AllKinds returns every registered Kind in declaration order, primarily
// for exhaustive property tests over the metadata table.
func AllKinds() []Kind {
	out := make([]Kind, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out[k] = k
	}
	return out
}
