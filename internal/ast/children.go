package ast

// Children returns the direct child nodes of n, in traversal order, for
// every kind that carries FlagHasChildren. Nodes without children (and
// a nil n) return nil. nil entries inside a child list (e.g. an absent
// else clause) are omitted rather than passed through, so callers never
// have to nil-check list elements.
//
// This is the single place that knows the shape of every node kind for
// the purpose of generic traversal; internal/visitor calls it instead
// of requiring every node type to implement an Accept method.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}

	var out []Node
	push := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	pushAll := func(cs []Node) {
		for _, c := range cs {
			push(c)
		}
	}

	switch t := n.(type) {
	case *TypeVoid, *TypeBool, *TypeInt, *TypeFloat, *TypeSymbol:
		// leaves
	case *TypePointer:
		push(t.Value)
	case *TypeArray:
		push(t.Value)
	case *TypeFunction:
		pushAll(t.Arguments)
		push(t.VariadicPositionalArguments)
		push(t.VariadicKeywordArguments)
		push(t.ReturnType)

	case *DeclarationUnion:
		pushAll(t.Properties)
	case *DeclarationStructure:
		pushAll(t.Declarations)
	case *DeclarationProperty:
		push(t.Type)
	case *DeclarationInterface:
		pushAll(t.Extends)
		pushAll(t.Declarations)
	case *DeclarationFunctionArgument:
		push(propertyToNode(t.Property))
		push(t.DefaultValue)
	case *DeclarationFunction:
		push(typeFunctionToNode(t.Type))
		push(t.Body)
	case *DeclarationAssignment:
		push(propertyToNode(t.Property))
		push(t.Value)
	case *DeclarationBlock:
		pushAll(t.Declarations)

	case *StatementReturn:
		push(t.Value)
	case *StatementIfConditionalClause:
		push(t.Condition)
		push(t.Body)
	case *StatementIf:
		pushAll(t.ConditionalClauses)
		push(t.ElseClause)
	case *StatementWhile:
		push(t.Condition)
		push(t.Body)
	case *StatementBlock:
		pushAll(t.Statements)

	case *ValueBool, *ValueInt, *ValueFloat, *ValueCharacter, *ValueString, *ValueSymbol:
		// leaves
	case *ValueArray:
		pushAll(t.Elements)
	case *ValueArrayRepeated:
		push(t.Element)
	case *ValueStructure:
		pushAll(t.Assignments)
	case *ValueCallKeywordArgument:
		push(t.Value)
	case *ValueCall:
		push(t.Callee)
		pushAll(t.Arguments)
		pushAll(t.KeywordArguments)
	case *ValueCast:
		push(t.Value)
		push(t.Type)
	case *ValueUnary:
		push(t.Operand)
	case *ValueBinary:
		push(t.Left)
		push(t.Right)

	default:
		panic("ast: Children: unhandled node type")
	}

	return out
}

// ReplaceChild sets the child of n currently equal to old (by pointer
// identity) to replacement. It returns false if old was not found among
// n's direct children (including the case where n has no children to
// search). Children held in typed fields (a function argument's or an
// assignment's Property, a function's Type) are not replaced either;
// ReplaceChild returns false for them too. This backs the visitor's
// in-place replacement semantics.
func ReplaceChild(n Node, old, replacement Node) bool {
	replaceInSlice := func(s []Node) bool {
		for i, c := range s {
			if c == old {
				s[i] = replacement
				return true
			}
		}
		return false
	}

	switch t := n.(type) {
	case *TypePointer:
		if t.Value == old {
			t.Value = replacement
			return true
		}
	case *TypeArray:
		if t.Value == old {
			t.Value = replacement
			return true
		}
	case *TypeFunction:
		if replaceInSlice(t.Arguments) {
			return true
		}
		if t.VariadicPositionalArguments == old {
			t.VariadicPositionalArguments = replacement
			return true
		}
		if t.VariadicKeywordArguments == old {
			t.VariadicKeywordArguments = replacement
			return true
		}
		if t.ReturnType == old {
			t.ReturnType = replacement
			return true
		}
	case *DeclarationUnion:
		return replaceInSlice(t.Properties)
	case *DeclarationStructure:
		return replaceInSlice(t.Declarations)
	case *DeclarationProperty:
		if t.Type == old {
			t.Type = replacement
			return true
		}
	case *DeclarationInterface:
		if replaceInSlice(t.Extends) {
			return true
		}
		return replaceInSlice(t.Declarations)
	case *DeclarationFunctionArgument:
		if t.DefaultValue == old {
			t.DefaultValue = replacement
			return true
		}
	case *DeclarationFunction:
		if t.Body == old {
			t.Body = replacement
			return true
		}
	case *DeclarationAssignment:
		if t.Value == old {
			t.Value = replacement
			return true
		}
	case *DeclarationBlock:
		return replaceInSlice(t.Declarations)
	case *StatementReturn:
		if t.Value == old {
			t.Value = replacement
			return true
		}
	case *StatementIfConditionalClause:
		if t.Condition == old {
			t.Condition = replacement
			return true
		}
		if t.Body == old {
			t.Body = replacement
			return true
		}
	case *StatementIf:
		if replaceInSlice(t.ConditionalClauses) {
			return true
		}
		if t.ElseClause == old {
			t.ElseClause = replacement
			return true
		}
	case *StatementWhile:
		if t.Condition == old {
			t.Condition = replacement
			return true
		}
		if t.Body == old {
			t.Body = replacement
			return true
		}
	case *StatementBlock:
		return replaceInSlice(t.Statements)
	case *ValueArray:
		return replaceInSlice(t.Elements)
	case *ValueArrayRepeated:
		if t.Element == old {
			t.Element = replacement
			return true
		}
	case *ValueStructure:
		return replaceInSlice(t.Assignments)
	case *ValueCallKeywordArgument:
		if t.Value == old {
			t.Value = replacement
			return true
		}
	case *ValueCall:
		if t.Callee == old {
			t.Callee = replacement
			return true
		}
		if replaceInSlice(t.Arguments) {
			return true
		}
		return replaceInSlice(t.KeywordArguments)
	case *ValueCast:
		if t.Value == old {
			t.Value = replacement
			return true
		}
		if t.Type == old {
			t.Type = replacement
			return true
		}
	case *ValueUnary:
		if t.Operand == old {
			t.Operand = replacement
			return true
		}
	case *ValueBinary:
		if t.Left == old {
			t.Left = replacement
			return true
		}
		if t.Right == old {
			t.Right = replacement
			return true
		}
	}
	return false
}
