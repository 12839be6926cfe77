package verifier

// Diagnostic codes are stable string tags, not enum values, so the
// outer driver and any downstream tooling can key off them without
// recompiling against this package. Prefixes group them by pass:
// IS (invalid structure, well-formedness), ES (error, symbol,
// unsupported feature), ET (error, type).
const (
	// CodeSymbolNameEmpty is emitted when a type-symbol or value-symbol
	// node carries an empty name — reachable via parser error recovery,
	// not an internal invariant violation.
	CodeSymbolNameEmpty = "IS-5"
	// CodeSymbolNameInvalid is emitted when a symbol name contains a
	// disallowed code point or starts with a digit.
	CodeSymbolNameInvalid = "IS-6"
	// CodeRequiredChildNull is emitted when a required child node
	// (Pointer.Value, Function.ReturnType, and similar) is nil.
	CodeRequiredChildNull = "IS-7"
	// CodeListElementNull is emitted when a list property contains a nil
	// element (e.g. a nil entry in Function.Arguments).
	CodeListElementNull = "IS-8"
	// CodeListElementUnexpectedKind is emitted when a list property
	// element has a kind other than the one the property requires.
	CodeListElementUnexpectedKind = "IS-9"

	// CodeUnsupportedUnion flags a union declaration.
	CodeUnsupportedUnion = "ES-1"
	// CodeUnsupportedInterface flags an interface declaration.
	CodeUnsupportedInterface = "ES-2"
	// CodeUnsupportedOptional flags a property flagged optional.
	CodeUnsupportedOptional = "ES-3"
	// CodeUnsupportedSpread flags a property flagged spread.
	CodeUnsupportedSpread = "ES-4"
	// CodeUnsupportedKeywordArgument flags a function argument flagged
	// keyword.
	CodeUnsupportedKeywordArgument = "ES-5"
	// CodeUnsupportedDefaultArgumentValue flags a function argument with
	// a default value.
	CodeUnsupportedDefaultArgumentValue = "ES-6"
	// CodeUnsupportedOverride flags a function flagged override.
	CodeUnsupportedOverride = "ES-7"
	// CodeUnsupportedCharacterLiteral flags a character literal value.
	CodeUnsupportedCharacterLiteral = "ES-8"
	// CodeUnsupportedStringLiteral flags a string literal value.
	CodeUnsupportedStringLiteral = "ES-9"
	// CodeUnsupportedOperatorDeclaration flags a function declared under
	// an operator symbol name.
	CodeUnsupportedOperatorDeclaration = "ES-10"
	// CodeUnsupportedVariadicArguments flags a function type with
	// variadic positional or keyword arguments.
	CodeUnsupportedVariadicArguments = "ES-11"
	// CodeUnsupportedDynamicObjectReturn flags a function returning an
	// array type by value.
	CodeUnsupportedDynamicObjectReturn = "ES-12"

	// CodeOperandNotInteger is emitted when a bitwise operand is not an
	// integer type.
	CodeOperandNotInteger = "ET-1"
	// CodeShiftAmountNotU32 is emitted when a shift's right-hand operand
	// is not exactly u32.
	CodeShiftAmountNotU32 = "ET-2"
	// CodeOperandNotNumericArithmetic is emitted when an arithmetic
	// operand is not numeric (integer or float).
	CodeOperandNotNumericArithmetic = "ET-3"
	// CodeOperandNotNumericComparison is emitted when a comparison
	// operand is not numeric (integer or float).
	CodeOperandNotNumericComparison = "ET-4"
	// CodeReturnTypeMismatch is emitted when a statement-return's value
	// type doesn't structurally match its enclosing function's declared
	// return type.
	CodeReturnTypeMismatch = "ET-5"
	// CodeOperandNotBool is emitted when a logical operator's operand is
	// not bool.
	CodeOperandNotBool = "ET-6"
	// CodeOperandUnresolved is emitted when a return statement's value
	// type cannot be resolved at all (distinct from resolving to the
	// wrong type). A unary or binary operand whose type cannot be
	// resolved is not reported.
	CodeOperandUnresolved = "ET-7"
)
