package ast

// Clone returns a deep, independent copy of n: every child is itself
// cloned, so destroying the original (or the clone) never affects the
// other. A nil n clones to nil.
func Clone(n Node) Node {
	if n == nil {
		return nil
	}

	cloneSlice := func(s []Node) []Node {
		if s == nil {
			return nil
		}
		out := make([]Node, len(s))
		for i, c := range s {
			out[i] = Clone(c)
		}
		return out
	}

	switch t := n.(type) {
	case *TypeVoid:
		return NewTypeVoid(t.rng)
	case *TypeBool:
		return NewTypeBool(t.rng)
	case *TypeInt:
		return NewTypeInt(t.rng, t.Flags, t.BitWidth)
	case *TypeFloat:
		return NewTypeFloat(t.rng, t.BitWidth)
	case *TypeSymbol:
		return NewTypeSymbol(t.rng, t.Name)
	case *TypePointer:
		return NewTypePointer(t.rng, t.Flags, Clone(t.Value))
	case *TypeArray:
		return NewTypeArray(t.rng, t.Length, Clone(t.Value))
	case *TypeFunction:
		return NewTypeFunction(
			t.rng,
			cloneSlice(t.Arguments),
			Clone(t.VariadicPositionalArguments),
			Clone(t.VariadicKeywordArguments),
			Clone(t.ReturnType),
		)

	case *DeclarationUnion:
		return NewDeclarationUnion(t.rng, t.Name, cloneSlice(t.Properties))
	case *DeclarationStructure:
		return NewDeclarationStructure(t.rng, t.Name, cloneSlice(t.Declarations))
	case *DeclarationProperty:
		return NewDeclarationProperty(t.rng, t.Flags, t.Name, Clone(t.Type))
	case *DeclarationInterface:
		return NewDeclarationInterface(t.rng, t.Flags, t.Name, cloneSlice(t.Extends), cloneSlice(t.Declarations))
	case *DeclarationFunctionArgument:
		var prop *DeclarationProperty
		if t.Property != nil {
			prop = Clone(t.Property).(*DeclarationProperty)
		}
		return NewDeclarationFunctionArgument(t.rng, t.Flags, prop, Clone(t.DefaultValue))
	case *DeclarationFunction:
		var typ *TypeFunction
		if t.Type != nil {
			typ = Clone(t.Type).(*TypeFunction)
		}
		return NewDeclarationFunction(t.rng, t.Flags, t.Name, typ, Clone(t.Body))
	case *DeclarationAssignment:
		var prop *DeclarationProperty
		if t.Property != nil {
			prop = Clone(t.Property).(*DeclarationProperty)
		}
		return NewDeclarationAssignment(t.rng, prop, Clone(t.Value))
	case *DeclarationBlock:
		return NewDeclarationBlock(t.rng, cloneSlice(t.Declarations))

	case *StatementReturn:
		return NewStatementReturn(t.rng, Clone(t.Value))
	case *StatementIfConditionalClause:
		return NewStatementIfConditionalClause(t.rng, Clone(t.Condition), Clone(t.Body))
	case *StatementIf:
		return NewStatementIf(t.rng, cloneSlice(t.ConditionalClauses), Clone(t.ElseClause))
	case *StatementWhile:
		return NewStatementWhile(t.rng, Clone(t.Condition), Clone(t.Body))
	case *StatementBlock:
		return NewStatementBlock(t.rng, cloneSlice(t.Statements))

	case *ValueBool:
		return NewValueBool(t.rng, t.Value)
	case *ValueInt:
		return &ValueInt{newBase(KindValueInt, t.rng), Clone(t.Type).(*TypeInt), t.Bits}
	case *ValueFloat:
		return &ValueFloat{newBase(KindValueFloat, t.rng), Clone(t.Type).(*TypeFloat), t.Value}
	case *ValueCharacter:
		return NewValueCharacter(t.rng, t.Value)
	case *ValueString:
		return NewValueString(t.rng, t.Value)
	case *ValueArray:
		return NewValueArray(t.rng, cloneSlice(t.Elements))
	case *ValueArrayRepeated:
		return NewValueArrayRepeated(t.rng, t.Length, Clone(t.Element))
	case *ValueStructure:
		return NewValueStructure(t.rng, cloneSlice(t.Assignments))
	case *ValueSymbol:
		return NewValueSymbol(t.rng, t.Name)
	case *ValueCallKeywordArgument:
		return NewValueCallKeywordArgument(t.rng, t.Name, Clone(t.Value))
	case *ValueCall:
		return NewValueCall(t.rng, Clone(t.Callee), cloneSlice(t.Arguments), cloneSlice(t.KeywordArguments))
	case *ValueCast:
		return NewValueCast(t.rng, Clone(t.Value), Clone(t.Type))
	case *ValueUnary:
		return NewValueUnary(t.rng, t.kind, Clone(t.Operand))
	case *ValueBinary:
		return NewValueBinary(t.rng, t.kind, Clone(t.Left), Clone(t.Right))
	}

	panic("ast: Clone: unhandled node type")
}
