package ast

// PointerFlags modifies a TypePointer node.
type PointerFlags uint8

const (
	PointerFlagNone               PointerFlags = 0
	PointerFlagConstant           PointerFlags = 1
	PointerFlagImplicitDereference PointerFlags = 1 << 1
)

// IntFlags modifies a TypeInt node (and the TypeInt embedded in a
// ValueInt literal).
type IntFlags uint8

const (
	IntFlagNone     IntFlags = 0
	IntFlagUnsigned IntFlags = 1
)

// PropertyFlags modifies a DeclarationProperty node.
type PropertyFlags uint8

const (
	PropertyFlagNone        PropertyFlags = 0
	PropertyFlagOptional    PropertyFlags = 1
	PropertyFlagNonOptional PropertyFlags = 1 << 1
	PropertyFlagSpread      PropertyFlags = 1 << 2
)

// InterfaceFlags modifies a DeclarationInterface node.
type InterfaceFlags uint8

const (
	InterfaceFlagNone     InterfaceFlags = 0
	InterfaceFlagAbstract InterfaceFlags = 1
)

// FunctionArgumentFlags modifies a DeclarationFunctionArgument node.
type FunctionArgumentFlags uint8

const (
	FunctionArgumentFlagNone    FunctionArgumentFlags = 0
	FunctionArgumentFlagKeyword FunctionArgumentFlags = 1
)

// FunctionFlags modifies a DeclarationFunction node.
type FunctionFlags uint8

const (
	FunctionFlagNone     FunctionFlags = 0
	FunctionFlagMutable  FunctionFlags = 1
	FunctionFlagOverride FunctionFlags = 1 << 1
)

// BitWidth is the width, in bits, of an integer or floating-point type.
type BitWidth int
