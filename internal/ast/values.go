package ast

import "github.com/sophiekatz/forge-go/internal/position"

// ValueBool is a boolean literal.
type ValueBool struct {
	base
	Value bool
}

// NewValueBool constructs a ValueBool node.
func NewValueBool(rng position.Range, value bool) *ValueBool {
	return &ValueBool{newBase(KindValueBool, rng), value}
}

// ValueInt is an integer literal. Bits holds the literal's bit pattern;
// Type records the width and signedness needed to interpret it, mirroring
// the C union discriminated by an embedded frg_ast_node_type_int_t.
type ValueInt struct {
	base
	Type *TypeInt
	Bits uint64
}

// NewValueInt constructs a ValueInt node from a signed value.
func NewValueInt(rng position.Range, bitWidth BitWidth, value int64) *ValueInt {
	return &ValueInt{newBase(KindValueInt, rng), NewTypeInt(position.Null, IntFlagNone, bitWidth), uint64(value)}
}

// NewValueUint constructs a ValueInt node from an unsigned value.
func NewValueUint(rng position.Range, bitWidth BitWidth, value uint64) *ValueInt {
	return &ValueInt{newBase(KindValueInt, rng), NewTypeInt(position.Null, IntFlagUnsigned, bitWidth), value}
}

// AsInt64 sign-extends Bits according to Type.BitWidth and returns it as
// a signed 64-bit integer. It is only meaningful when Type is signed.
func (v *ValueInt) AsInt64() int64 {
	shift := 64 - uint(v.Type.BitWidth)
	return int64(v.Bits<<shift) >> shift
}

// AsUint64 returns Bits masked to Type.BitWidth.
func (v *ValueInt) AsUint64() uint64 {
	if v.Type.BitWidth >= 64 {
		return v.Bits
	}
	return v.Bits & ((uint64(1) << uint(v.Type.BitWidth)) - 1)
}

// ValueFloat is a floating-point literal.
type ValueFloat struct {
	base
	Type  *TypeFloat
	Value float64
}

// NewValueFloat constructs a ValueFloat node.
func NewValueFloat(rng position.Range, bitWidth BitWidth, value float64) *ValueFloat {
	return &ValueFloat{newBase(KindValueFloat, rng), NewTypeFloat(position.Null, bitWidth), value}
}

// ValueCharacter is a single Unicode code point literal.
type ValueCharacter struct {
	base
	Value rune
}

// NewValueCharacter constructs a ValueCharacter node.
func NewValueCharacter(rng position.Range, value rune) *ValueCharacter {
	return &ValueCharacter{newBase(KindValueCharacter, rng), value}
}

// ValueString is a string literal.
type ValueString struct {
	base
	Value string
}

// NewValueString constructs a ValueString node.
func NewValueString(rng position.Range, value string) *ValueString {
	return &ValueString{newBase(KindValueString, rng), value}
}

// ValueArray is an array literal with one value per element.
type ValueArray struct {
	base
	Elements []Node
}

// NewValueArray constructs a ValueArray node.
func NewValueArray(rng position.Range, elements []Node) *ValueArray {
	return &ValueArray{newBase(KindValueArray, rng), elements}
}

// ValueArrayRepeated is an array literal formed by repeating a single
// element value Length times, e.g. `[0; 16]`.
type ValueArrayRepeated struct {
	base
	Length  uint64
	Element Node
}

// NewValueArrayRepeated constructs a ValueArrayRepeated node.
func NewValueArrayRepeated(rng position.Range, length uint64, element Node) *ValueArrayRepeated {
	return &ValueArrayRepeated{newBase(KindValueArrayRepeated, rng), length, element}
}

// ValueStructure is a structure literal: a list of property-name to
// value bindings, each carried as a DeclarationAssignment.
type ValueStructure struct {
	base
	Assignments []Node
}

// NewValueStructure constructs a ValueStructure node.
func NewValueStructure(rng position.Range, assignments []Node) *ValueStructure {
	return &ValueStructure{newBase(KindValueStructure, rng), assignments}
}

// ValueSymbol references a declaration by name, to be resolved against
// a Scope.
type ValueSymbol struct {
	base
	Name string
}

// NewValueSymbol constructs a ValueSymbol node.
func NewValueSymbol(rng position.Range, name string) *ValueSymbol {
	return &ValueSymbol{newBase(KindValueSymbol, rng), name}
}

// ValueCallKeywordArgument binds a call argument to an argument name,
// e.g. the `count: 3` in `f(count: 3)`.
type ValueCallKeywordArgument struct {
	base
	Name  string
	Value Node
}

// NewValueCallKeywordArgument constructs a ValueCallKeywordArgument node.
func NewValueCallKeywordArgument(rng position.Range, name string, value Node) *ValueCallKeywordArgument {
	return &ValueCallKeywordArgument{newBase(KindValueCallKeywordArgument, rng), name, value}
}

// ValueCall invokes Callee with positional Arguments and
// KeywordArguments (each a ValueCallKeywordArgument).
type ValueCall struct {
	base
	Callee           Node
	Arguments        []Node
	KeywordArguments []Node
}

// NewValueCall constructs a ValueCall node.
func NewValueCall(rng position.Range, callee Node, arguments, keywordArguments []Node) *ValueCall {
	return &ValueCall{newBase(KindValueCall, rng), callee, arguments, keywordArguments}
}

// ValueCast reinterprets Value as Type, e.g. `x as i64`.
type ValueCast struct {
	base
	Value Node
	Type  Node
}

// NewValueCast constructs a ValueCast node.
func NewValueCast(rng position.Range, value, typ Node) *ValueCast {
	return &ValueCast{newBase(KindValueCast, rng), value, typ}
}

// ValueUnary is the shared representation for every single-operand
// operator value (dereference, address-of, bitwise/logical not,
// negate, increment, decrement). Which operator it is comes from Kind,
// looked up via Kind.Info().Operator; this mirrors the C
// frg_ast_node_value_unary_t struct, which is likewise keyed by kind
// rather than having one struct type per unary operator.
type ValueUnary struct {
	base
	Operand Node
}

// NewValueUnary constructs a ValueUnary node of the given operator kind.
// kind must carry FlagValueUnary.
func NewValueUnary(rng position.Range, kind Kind, operand Node) *ValueUnary {
	if !kind.Info().Flags.Has(FlagValueUnary) {
		panic("ast: NewValueUnary called with non-unary kind " + kind.String())
	}
	return &ValueUnary{newBase(kind, rng), operand}
}

// ValueBinary is the shared representation for every two-operand
// operator value (arithmetic, comparison, logical, bitwise, assignment,
// and member access). Which operator it is comes from Kind. This
// mirrors frg_ast_node_value_binary_t.
type ValueBinary struct {
	base
	Left  Node
	Right Node
}

// NewValueBinary constructs a ValueBinary node of the given operator kind.
// kind must carry FlagValueBinary.
func NewValueBinary(rng position.Range, kind Kind, left, right Node) *ValueBinary {
	if !kind.Info().Flags.Has(FlagValueBinary) {
		panic("ast: NewValueBinary called with non-binary kind " + kind.String())
	}
	return &ValueBinary{newBase(kind, rng), left, right}
}
