package ast

// Compare reports whether a and b are structurally equal, ignoring
// source Range (two nodes parsed from different positions but with the
// same shape compare equal). Two nils compare equal; a nil and a
// non-nil never do.
func Compare(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	compareSlice := func(x, y []Node) bool {
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Compare(x[i], y[i]) {
				return false
			}
		}
		return true
	}

	switch x := a.(type) {
	case *TypeVoid, *TypeBool:
		return true
	case *TypeInt:
		y := b.(*TypeInt)
		return x.Flags == y.Flags && x.BitWidth == y.BitWidth
	case *TypeFloat:
		y := b.(*TypeFloat)
		return x.BitWidth == y.BitWidth
	case *TypeSymbol:
		y := b.(*TypeSymbol)
		return x.Name == y.Name
	case *TypePointer:
		y := b.(*TypePointer)
		return x.Flags == y.Flags && Compare(x.Value, y.Value)
	case *TypeArray:
		y := b.(*TypeArray)
		return x.Length == y.Length && Compare(x.Value, y.Value)
	case *TypeFunction:
		y := b.(*TypeFunction)
		return compareSlice(x.Arguments, y.Arguments) &&
			Compare(x.VariadicPositionalArguments, y.VariadicPositionalArguments) &&
			Compare(x.VariadicKeywordArguments, y.VariadicKeywordArguments) &&
			Compare(x.ReturnType, y.ReturnType)

	case *DeclarationUnion:
		y := b.(*DeclarationUnion)
		return x.Name == y.Name && compareSlice(x.Properties, y.Properties)
	case *DeclarationStructure:
		y := b.(*DeclarationStructure)
		return x.Name == y.Name && compareSlice(x.Declarations, y.Declarations)
	case *DeclarationProperty:
		y := b.(*DeclarationProperty)
		return x.Flags == y.Flags && x.Name == y.Name && Compare(x.Type, y.Type)
	case *DeclarationInterface:
		y := b.(*DeclarationInterface)
		return x.Flags == y.Flags && x.Name == y.Name &&
			compareSlice(x.Extends, y.Extends) && compareSlice(x.Declarations, y.Declarations)
	case *DeclarationFunctionArgument:
		y := b.(*DeclarationFunctionArgument)
		return x.Flags == y.Flags &&
			Compare(propertyToNode(x.Property), propertyToNode(y.Property)) &&
			Compare(x.DefaultValue, y.DefaultValue)
	case *DeclarationFunction:
		y := b.(*DeclarationFunction)
		return x.Flags == y.Flags && x.Name == y.Name &&
			Compare(typeFunctionToNode(x.Type), typeFunctionToNode(y.Type)) &&
			Compare(x.Body, y.Body)
	case *DeclarationAssignment:
		y := b.(*DeclarationAssignment)
		return Compare(propertyToNode(x.Property), propertyToNode(y.Property)) && Compare(x.Value, y.Value)
	case *DeclarationBlock:
		y := b.(*DeclarationBlock)
		return compareSlice(x.Declarations, y.Declarations)

	case *StatementReturn:
		y := b.(*StatementReturn)
		return Compare(x.Value, y.Value)
	case *StatementIfConditionalClause:
		y := b.(*StatementIfConditionalClause)
		return Compare(x.Condition, y.Condition) && Compare(x.Body, y.Body)
	case *StatementIf:
		y := b.(*StatementIf)
		return compareSlice(x.ConditionalClauses, y.ConditionalClauses) && Compare(x.ElseClause, y.ElseClause)
	case *StatementWhile:
		y := b.(*StatementWhile)
		return Compare(x.Condition, y.Condition) && Compare(x.Body, y.Body)
	case *StatementBlock:
		y := b.(*StatementBlock)
		return compareSlice(x.Statements, y.Statements)

	case *ValueBool:
		y := b.(*ValueBool)
		return x.Value == y.Value
	case *ValueInt:
		y := b.(*ValueInt)
		return Compare(x.Type, y.Type) && x.Bits == y.Bits
	case *ValueFloat:
		y := b.(*ValueFloat)
		return Compare(x.Type, y.Type) && x.Value == y.Value
	case *ValueCharacter:
		y := b.(*ValueCharacter)
		return x.Value == y.Value
	case *ValueString:
		y := b.(*ValueString)
		return x.Value == y.Value
	case *ValueArray:
		y := b.(*ValueArray)
		return compareSlice(x.Elements, y.Elements)
	case *ValueArrayRepeated:
		y := b.(*ValueArrayRepeated)
		return x.Length == y.Length && Compare(x.Element, y.Element)
	case *ValueStructure:
		y := b.(*ValueStructure)
		return compareSlice(x.Assignments, y.Assignments)
	case *ValueSymbol:
		y := b.(*ValueSymbol)
		return x.Name == y.Name
	case *ValueCallKeywordArgument:
		y := b.(*ValueCallKeywordArgument)
		return x.Name == y.Name && Compare(x.Value, y.Value)
	case *ValueCall:
		y := b.(*ValueCall)
		return Compare(x.Callee, y.Callee) &&
			compareSlice(x.Arguments, y.Arguments) && compareSlice(x.KeywordArguments, y.KeywordArguments)
	case *ValueCast:
		y := b.(*ValueCast)
		return Compare(x.Value, y.Value) && Compare(x.Type, y.Type)
	case *ValueUnary:
		y := b.(*ValueUnary)
		return Compare(x.Operand, y.Operand)
	case *ValueBinary:
		y := b.(*ValueBinary)
		return Compare(x.Left, y.Left) && Compare(x.Right, y.Right)
	}

	panic("ast: Compare: unhandled node type")
}

func propertyToNode(p *DeclarationProperty) Node {
	if p == nil {
		return nil
	}
	return p
}

func typeFunctionToNode(t *TypeFunction) Node {
	if t == nil {
		return nil
	}
	return t
}
