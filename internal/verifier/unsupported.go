package verifier

import (
	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/visitor"
)

// operatorDeclarationNames is every operator symbol a function
// declaration's name could collide with if operator overloading were
// supported — built from the same table kind.go registers operator
// symbols in, so it never drifts out of sync with the kind list.
var operatorDeclarationNames = func() map[string]bool {
	names := make(map[string]bool)
	for i := 0; i < ast.KindCount(); i++ {
		if op := ast.Kind(i).Info().Operator; op != "" {
			names[op] = true
		}
	}
	return names
}()

func newUnsupportedVisitor(ctx *Context) *visitor.Visitor {
	v := visitor.New(ctx)

	v.AddHandler(ast.KindDeclarationUnion, visitor.Handler{OnEnter: unsupportedEmit(CodeUnsupportedUnion, "union declarations are not yet supported")})
	v.AddHandler(ast.KindDeclarationInterface, visitor.Handler{OnEnter: unsupportedEmit(CodeUnsupportedInterface, "interface declarations are not yet supported")})
	v.AddHandler(ast.KindValueCharacter, visitor.Handler{OnEnter: unsupportedEmit(CodeUnsupportedCharacterLiteral, "character literals are not yet supported")})
	v.AddHandler(ast.KindValueString, visitor.Handler{OnEnter: unsupportedEmit(CodeUnsupportedStringLiteral, "string literals are not yet supported")})
	v.AddHandler(ast.KindDeclarationProperty, visitor.Handler{OnEnter: unsupportedProperty})
	v.AddHandler(ast.KindDeclarationFunctionArgument, visitor.Handler{OnEnter: unsupportedFunctionArgument})
	v.AddHandler(ast.KindDeclarationFunction, visitor.Handler{OnEnter: unsupportedFunction})
	v.AddHandler(ast.KindTypeFunction, visitor.Handler{OnEnter: unsupportedTypeFunction})

	return v
}

func unsupportedEmit(code, message string) visitor.Callback {
	return func(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
		ctx := userData.(*Context)
		ctx.Messages.Emit(diag.SeverityError, (*node).Range(), code, "%s", message)
		return visitor.StatusSkip
	}
}

func unsupportedProperty(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.DeclarationProperty)
	ctx := userData.(*Context)

	if t.Flags&ast.PropertyFlagOptional != 0 {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeUnsupportedOptional,
			"optional properties are not yet supported")
		return visitor.StatusSkip
	}
	if t.Flags&ast.PropertyFlagSpread != 0 {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeUnsupportedSpread,
			"spread properties are not yet supported")
		return visitor.StatusSkip
	}

	return visitor.StatusOK
}

func unsupportedFunctionArgument(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.DeclarationFunctionArgument)
	ctx := userData.(*Context)

	if t.Flags&ast.FunctionArgumentFlagKeyword != 0 {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeUnsupportedKeywordArgument,
			"keyword function arguments are not yet supported")
		return visitor.StatusSkip
	}
	if t.DefaultValue != nil {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeUnsupportedDefaultArgumentValue,
			"default argument values are not yet supported")
		return visitor.StatusSkip
	}

	return visitor.StatusOK
}

func unsupportedFunction(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.DeclarationFunction)
	ctx := userData.(*Context)

	if t.Flags&ast.FunctionFlagOverride != 0 {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeUnsupportedOverride,
			"overriding functions is not yet supported")
		return visitor.StatusSkip
	}
	if operatorDeclarationNames[t.Name] {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeUnsupportedOperatorDeclaration,
			"declaring an operator function (%q) is not yet supported", t.Name)
		return visitor.StatusSkip
	}
	if t.Type != nil {
		if _, isArray := t.Type.ReturnType.(*ast.TypeArray); isArray {
			ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeUnsupportedDynamicObjectReturn,
				"returning an array by value is not yet supported")
			return visitor.StatusSkip
		}
	}

	return visitor.StatusOK
}

func unsupportedTypeFunction(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.TypeFunction)
	ctx := userData.(*Context)

	if t.VariadicPositionalArguments != nil || t.VariadicKeywordArguments != nil {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeUnsupportedVariadicArguments,
			"variadic function arguments are not yet supported")
		return visitor.StatusSkip
	}

	return visitor.StatusOK
}
