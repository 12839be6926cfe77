package ast

// DeclarationName returns the identifier a declaration node binds, and
// true if n is a declaration kind that has one. DeclarationFunctionArgument
// has no Name field of its own: it delegates to its nested Property,
// matching frg_ast_declaration_function_argument_name_get in the C
// original (and the same special case scope.Scope.AddDeclaration makes
// when keying a frame entry).
func DeclarationName(n Node) (string, bool) {
	switch t := n.(type) {
	case *DeclarationUnion:
		return t.Name, true
	case *DeclarationStructure:
		return t.Name, true
	case *DeclarationProperty:
		return t.Name, true
	case *DeclarationInterface:
		return t.Name, true
	case *DeclarationFunction:
		return t.Name, true
	case *DeclarationFunctionArgument:
		if t.Property == nil {
			return "", false
		}
		return t.Property.Name, true
	default:
		return "", false
	}
}
