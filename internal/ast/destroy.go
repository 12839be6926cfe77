package ast

// Destroy recursively detaches n's children and zeroes n's own fields.
// Go's garbage collector makes explicit destruction unnecessary for
// memory safety, unlike the arena-owning C original
// (frg_ast_node_destroy); Destroy is kept for API-shape parity and so
// the "destroying either of two clones leaves the other valid" property
// (see TestDestroyLeavesCloneValid in clone_compare_test.go) stays
// meaningful: a node that
// has been destroyed is left in a recognizably empty state rather than
// silently continuing to work.
func Destroy(n Node) {
	if n == nil {
		return
	}

	for _, c := range Children(n) {
		Destroy(c)
	}

	switch t := n.(type) {
	case *TypePointer:
		t.Value = nil
	case *TypeArray:
		t.Value = nil
	case *TypeFunction:
		t.Arguments = nil
		t.VariadicPositionalArguments = nil
		t.VariadicKeywordArguments = nil
		t.ReturnType = nil
	case *DeclarationUnion:
		t.Properties = nil
	case *DeclarationStructure:
		t.Declarations = nil
	case *DeclarationProperty:
		t.Type = nil
	case *DeclarationInterface:
		t.Extends = nil
		t.Declarations = nil
	case *DeclarationFunctionArgument:
		t.Property = nil
		t.DefaultValue = nil
	case *DeclarationFunction:
		t.Type = nil
		t.Body = nil
	case *DeclarationAssignment:
		t.Property = nil
		t.Value = nil
	case *DeclarationBlock:
		t.Declarations = nil
	case *StatementReturn:
		t.Value = nil
	case *StatementIfConditionalClause:
		t.Condition = nil
		t.Body = nil
	case *StatementIf:
		t.ConditionalClauses = nil
		t.ElseClause = nil
	case *StatementWhile:
		t.Condition = nil
		t.Body = nil
	case *StatementBlock:
		t.Statements = nil
	case *ValueArray:
		t.Elements = nil
	case *ValueArrayRepeated:
		t.Element = nil
	case *ValueStructure:
		t.Assignments = nil
	case *ValueCallKeywordArgument:
		t.Value = nil
	case *ValueCall:
		t.Callee = nil
		t.Arguments = nil
		t.KeywordArguments = nil
	case *ValueCast:
		t.Value = nil
		t.Type = nil
	case *ValueUnary:
		t.Operand = nil
	case *ValueBinary:
		t.Left = nil
		t.Right = nil
	}
}

// IsDestroyed reports whether n's direct children have all been cleared
// by Destroy. Leaf kinds are always considered destroyed.
func IsDestroyed(n Node) bool {
	return len(Children(n)) == 0
}
