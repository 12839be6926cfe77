package ast

import "github.com/sophiekatz/forge-go/internal/position"

// DeclarationUnion declares a tagged union of named properties.
type DeclarationUnion struct {
	base
	Name         string
	Properties []Node
}

// NewDeclarationUnion constructs a DeclarationUnion node.
func NewDeclarationUnion(rng position.Range, name string, properties []Node) *DeclarationUnion {
	return &DeclarationUnion{newBase(KindDeclarationUnion, rng), name, properties}
}

// DeclarationStructure declares a structure as a block of member
// declarations.
type DeclarationStructure struct {
	base
	Name         string
	Declarations []Node
}

// NewDeclarationStructure constructs a DeclarationStructure node.
func NewDeclarationStructure(rng position.Range, name string, declarations []Node) *DeclarationStructure {
	return &DeclarationStructure{newBase(KindDeclarationStructure, rng), name, declarations}
}

// DeclarationProperty declares a single named, typed property, used
// both as a structure/union member and as the payload of a function
// argument.
type DeclarationProperty struct {
	base
	Flags PropertyFlags
	Name  string
	Type  Node
}

// NewDeclarationProperty constructs a DeclarationProperty node.
func NewDeclarationProperty(rng position.Range, flags PropertyFlags, name string, typ Node) *DeclarationProperty {
	return &DeclarationProperty{newBase(KindDeclarationProperty, rng), flags, name, typ}
}

// DeclarationInterface declares an interface: a set of base interfaces
// it extends and a block of member declarations.
type DeclarationInterface struct {
	base
	Flags        InterfaceFlags
	Name         string
	Extends      []Node
	Declarations []Node
}

// NewDeclarationInterface constructs a DeclarationInterface node.
func NewDeclarationInterface(
	rng position.Range, flags InterfaceFlags, name string, extends, declarations []Node,
) *DeclarationInterface {
	return &DeclarationInterface{newBase(KindDeclarationInterface, rng), flags, name, extends, declarations}
}

// DeclarationFunctionArgument declares one argument of a function: the
// underlying property (name + type) plus an optional default value.
// Its declaration name is not stored directly — DeclarationName
// delegates to Property.Name — because the C original keys scope
// entries for arguments off the nested property, not a field of its
// own.
type DeclarationFunctionArgument struct {
	base
	Flags        FunctionArgumentFlags
	Property     *DeclarationProperty
	DefaultValue Node
}

// NewDeclarationFunctionArgument constructs a DeclarationFunctionArgument node.
func NewDeclarationFunctionArgument(
	rng position.Range, flags FunctionArgumentFlags, property *DeclarationProperty, defaultValue Node,
) *DeclarationFunctionArgument {
	return &DeclarationFunctionArgument{newBase(KindDeclarationFunctionArgument, rng), flags, property, defaultValue}
}

// DeclarationFunction declares a named function: its signature and an
// optional body (nil for an extern/interface declaration).
type DeclarationFunction struct {
	base
	Flags FunctionFlags
	Name  string
	Type  *TypeFunction
	Body  Node
}

// NewDeclarationFunction constructs a DeclarationFunction node.
func NewDeclarationFunction(
	rng position.Range, flags FunctionFlags, name string, typ *TypeFunction, body Node,
) *DeclarationFunction {
	return &DeclarationFunction{newBase(KindDeclarationFunction, rng), flags, name, typ, body}
}

// DeclarationAssignment declares a property and immediately binds it to
// a value (e.g. a top-level `let`).
type DeclarationAssignment struct {
	base
	Property *DeclarationProperty
	Value    Node
}

// NewDeclarationAssignment constructs a DeclarationAssignment node.
func NewDeclarationAssignment(rng position.Range, property *DeclarationProperty, value Node) *DeclarationAssignment {
	return &DeclarationAssignment{newBase(KindDeclarationAssignment, rng), property, value}
}

// DeclarationBlock is an ordered sequence of declarations, forming a
// module or compound declaration scope.
type DeclarationBlock struct {
	base
	Declarations []Node
}

// NewDeclarationBlock constructs a DeclarationBlock node.
func NewDeclarationBlock(rng position.Range, declarations []Node) *DeclarationBlock {
	return &DeclarationBlock{newBase(KindDeclarationBlock, rng), declarations}
}
