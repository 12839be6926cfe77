package ast

import "github.com/sophiekatz/forge-go/internal/position"

// TypeVoid is the unit type; it has no values besides itself.
type TypeVoid struct{ base }

// NewTypeVoid constructs a TypeVoid node.
func NewTypeVoid(rng position.Range) *TypeVoid {
	return &TypeVoid{newBase(KindTypeVoid, rng)}
}

// TypeBool is the boolean type.
type TypeBool struct{ base }

// NewTypeBool constructs a TypeBool node.
func NewTypeBool(rng position.Range) *TypeBool {
	return &TypeBool{newBase(KindTypeBool, rng)}
}

// TypeInt is a fixed-width integer type, signed unless IntFlagUnsigned
// is set.
type TypeInt struct {
	base
	Flags    IntFlags
	BitWidth BitWidth
}

// NewTypeInt constructs a TypeInt node.
func NewTypeInt(rng position.Range, flags IntFlags, bitWidth BitWidth) *TypeInt {
	return &TypeInt{newBase(KindTypeInt, rng), flags, bitWidth}
}

// IsUnsigned reports whether this type is flagged unsigned.
func (t *TypeInt) IsUnsigned() bool { return t.Flags&IntFlagUnsigned != 0 }

// TypeFloat is a fixed-width IEEE-754 floating-point type.
type TypeFloat struct {
	base
	BitWidth BitWidth
}

// NewTypeFloat constructs a TypeFloat node.
func NewTypeFloat(rng position.Range, bitWidth BitWidth) *TypeFloat {
	return &TypeFloat{newBase(KindTypeFloat, rng), bitWidth}
}

// TypeSymbol names a type by identifier, to be resolved against a
// Scope. Name may legitimately be empty when produced during parser
// error recovery; see the well-formedness pass's IS-5 diagnostic.
type TypeSymbol struct {
	base
	Name string
}

// NewTypeSymbol constructs a TypeSymbol node.
func NewTypeSymbol(rng position.Range, name string) *TypeSymbol {
	return &TypeSymbol{newBase(KindTypeSymbol, rng), name}
}

// TypePointer is a pointer to a value of another type.
type TypePointer struct {
	base
	Flags PointerFlags
	Value Node
}

// NewTypePointer constructs a TypePointer node.
func NewTypePointer(rng position.Range, flags PointerFlags, value Node) *TypePointer {
	return &TypePointer{newBase(KindTypePointer, rng), flags, value}
}

// IsConstant reports whether the pointee is flagged constant.
func (t *TypePointer) IsConstant() bool {
	return t.Flags&PointerFlagConstant != 0
}

// TypeArray is a fixed-length array of a single element type.
type TypeArray struct {
	base
	Length uint64
	Value  Node
}

// NewTypeArray constructs a TypeArray node.
func NewTypeArray(rng position.Range, length uint64, value Node) *TypeArray {
	return &TypeArray{newBase(KindTypeArray, rng), length, value}
}

// TypeFunction is a function signature: zero or more positional
// argument declarations, optional variadic positional/keyword argument
// declarations, and a return type.
type TypeFunction struct {
	base
	Arguments                   []Node
	VariadicPositionalArguments Node
	VariadicKeywordArguments    Node
	ReturnType                  Node
}

// NewTypeFunction constructs a TypeFunction node.
func NewTypeFunction(
	rng position.Range,
	arguments []Node,
	variadicPositionalArguments, variadicKeywordArguments, returnType Node,
) *TypeFunction {
	return &TypeFunction{
		base:                         newBase(KindTypeFunction, rng),
		Arguments:                    arguments,
		VariadicPositionalArguments:  variadicPositionalArguments,
		VariadicKeywordArguments:     variadicKeywordArguments,
		ReturnType:                   returnType,
	}
}
