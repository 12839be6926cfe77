package verifier

import (
	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/position"
	"github.com/sophiekatz/forge-go/internal/visitor"
)

func newTypeVerificationVisitor(ctx *Context) *visitor.Visitor {
	v := visitor.New(ctx)

	v.AddHandler(ast.KindStatementReturn, visitor.Handler{OnEnter: tvEnterReturn})

	unaryKinds := []ast.Kind{
		ast.KindValueBitNot, ast.KindValueNegate, ast.KindValueLogicalNot,
		ast.KindValueIncrement, ast.KindValueDecrement,
	}
	for _, k := range unaryKinds {
		v.AddHandler(k, visitor.Handler{OnEnter: tvEnterUnary})
	}

	binaryKinds := []ast.Kind{
		ast.KindValueBitAnd, ast.KindValueBitOr, ast.KindValueBitXor,
		ast.KindValueBitShiftLeft, ast.KindValueBitShiftRight,
		ast.KindValueLogicalAnd, ast.KindValueLogicalOr,
		ast.KindValueAdd, ast.KindValueSubtract, ast.KindValueMultiply,
		ast.KindValueDivide, ast.KindValueDivideInt, ast.KindValueModulo, ast.KindValueExponentiate,
		ast.KindValueEquals, ast.KindValueNotEquals,
		ast.KindValueIsLessThan, ast.KindValueIsLessThanOrEqualTo,
		ast.KindValueIsGreaterThan, ast.KindValueIsGreaterThanOrEqualTo,
	}
	for _, k := range binaryKinds {
		v.AddHandler(k, visitor.Handler{OnEnter: tvEnterBinary})
	}

	return v
}

// tvEnterReturn resolves the enclosing function's declared return type
// via the parents chain (innermost first, per internal/visitor's
// contract) and compares it structurally against the returned value's
// resolved type.
func tvEnterReturn(node *ast.Node, userData any, parents []ast.Node) visitor.Status {
	t := (*node).(*ast.StatementReturn)
	ctx := userData.(*Context)

	var fn *ast.DeclarationFunction
	for _, p := range parents {
		if f, ok := p.(*ast.DeclarationFunction); ok {
			fn = f
			break
		}
	}
	if fn == nil || fn.Type == nil || fn.Type.ReturnType == nil {
		return visitor.StatusOK
	}

	if t.Value == nil {
		_, isVoid := fn.Type.ReturnType.(*ast.TypeVoid)
		if !isVoid {
			// No value node exists to cite here, so the statement's own
			// range is the narrowest one available.
			ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeReturnTypeMismatch,
				"Cannot return without a value in function with return type '%s'",
				ast.FormattedPrint(fn.Type.ReturnType))
		}
		return visitor.StatusOK
	}

	valueType := ast.TypeResolve(t.Value, ctx.Scope, ctx.Messages)
	if valueType == nil {
		ctx.Messages.Emit(diag.SeverityError, t.Value.Range(), CodeOperandUnresolved,
			"could not resolve the type of this return value")
		return visitor.StatusOK
	}

	if !ast.Compare(valueType, fn.Type.ReturnType) {
		ctx.Messages.Emit(diag.SeverityError, t.Value.Range(), CodeReturnTypeMismatch,
			"Cannot return value of type '%s' in function with return type '%s'",
			ast.FormattedPrint(valueType), ast.FormattedPrint(fn.Type.ReturnType))
	}

	return visitor.StatusOK
}

func isIntegerType(n ast.Node) bool {
	_, ok := n.(*ast.TypeInt)
	return ok
}

func isNumericType(n ast.Node) bool {
	switch n.(type) {
	case *ast.TypeInt, *ast.TypeFloat:
		return true
	default:
		return false
	}
}

func isBoolType(n ast.Node) bool {
	_, ok := n.(*ast.TypeBool)
	return ok
}

func isU32(n ast.Node) bool {
	t, ok := n.(*ast.TypeInt)
	return ok && t.IsUnsigned() && t.BitWidth == 32
}

func tvEnterUnary(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.ValueUnary)
	ctx := userData.(*Context)

	operandType := ast.TypeResolve(t.Operand, ctx.Scope, ctx.Messages)
	if operandType == nil {
		return visitor.StatusOK
	}

	switch t.Kind() {
	case ast.KindValueBitNot:
		if !isIntegerType(operandType) {
			emitOperandMismatch(ctx, t.Operand.Range(), CodeOperandNotInteger, t.Kind(), "an integer type", operandType)
		}
	case ast.KindValueLogicalNot:
		if !isBoolType(operandType) {
			emitOperandMismatch(ctx, t.Operand.Range(), CodeOperandNotBool, t.Kind(), "'bool'", operandType)
		}
	case ast.KindValueNegate, ast.KindValueIncrement, ast.KindValueDecrement:
		if !isNumericType(operandType) {
			emitOperandMismatch(ctx, t.Operand.Range(), CodeOperandNotNumericArithmetic, t.Kind(), "a numeric type", operandType)
		}
	}

	return visitor.StatusOK
}

func tvEnterBinary(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.ValueBinary)
	ctx := userData.(*Context)

	leftType := ast.TypeResolve(t.Left, ctx.Scope, ctx.Messages)
	rightType := ast.TypeResolve(t.Right, ctx.Scope, ctx.Messages)

	switch t.Kind() {
	case ast.KindValueBitAnd, ast.KindValueBitOr, ast.KindValueBitXor:
		checkBothOperands(ctx, t, leftType, rightType, isIntegerType, CodeOperandNotInteger, "an integer type")

	case ast.KindValueBitShiftLeft, ast.KindValueBitShiftRight:
		if leftType != nil && !isIntegerType(leftType) {
			emitOperandMismatch(ctx, t.Left.Range(), CodeOperandNotInteger, t.Kind(), "an integer type", leftType)
		}
		if rightType != nil && !isU32(rightType) {
			emitOperandMismatch(ctx, t.Right.Range(), CodeShiftAmountNotU32, t.Kind(), "'u32'", rightType)
		}

	case ast.KindValueLogicalAnd, ast.KindValueLogicalOr:
		checkBothOperands(ctx, t, leftType, rightType, isBoolType, CodeOperandNotBool, "'bool'")

	case ast.KindValueAdd, ast.KindValueSubtract, ast.KindValueMultiply,
		ast.KindValueDivide, ast.KindValueDivideInt, ast.KindValueModulo, ast.KindValueExponentiate:
		checkBothOperands(ctx, t, leftType, rightType, isNumericType, CodeOperandNotNumericArithmetic, "a numeric type")

	case ast.KindValueIsLessThan, ast.KindValueIsLessThanOrEqualTo,
		ast.KindValueIsGreaterThan, ast.KindValueIsGreaterThanOrEqualTo:
		checkBothOperands(ctx, t, leftType, rightType, isNumericType, CodeOperandNotNumericComparison, "a numeric type")
	}

	return visitor.StatusOK
}

// checkBothOperands emits one diagnostic per offending side, since
// both the left and right operand of a binary operator may fail
// independently (§4.5.3).
func checkBothOperands(ctx *Context, t *ast.ValueBinary, left, right ast.Node, predicate func(ast.Node) bool, code, expected string) {
	if left != nil && !predicate(left) {
		emitOperandMismatch(ctx, t.Left.Range(), code, t.Kind(), expected, left)
	}
	if right != nil && !predicate(right) {
		emitOperandMismatch(ctx, t.Right.Range(), code, t.Kind(), expected, right)
	}
}

// emitOperandMismatch's wording follows spec's pinned example text for
// the bool-operand case ("Operator !'s operand must be 'bool', but is
// 'u8'") and generalizes it to the other operand-kind checks.
func emitOperandMismatch(ctx *Context, rng position.Range, code string, op ast.Kind, expected string, found ast.Node) {
	ctx.Messages.Emit(diag.SeverityError, rng, code,
		"Operator %s's operand must be %s, but is '%s'", op.Info().Operator, expected, ast.FormattedPrint(found))
}
