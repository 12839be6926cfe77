package verifier

import (
	"unicode"
	"unicode/utf8"

	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/position"
	"github.com/sophiekatz/forge-go/internal/visitor"
)

// isValidIntBitWidth reports whether width is one of the four widths
// the backend actually supports.
func isValidIntBitWidth(width ast.BitWidth) bool {
	switch width {
	case 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

// isValidFloatBitWidth reports whether width is one of the two IEEE-754
// widths the backend actually supports.
func isValidFloatBitWidth(width ast.BitWidth) bool {
	switch width {
	case 32, 64:
		return true
	default:
		return false
	}
}

// verifySourceRange enforces the structural invariant every node's
// range must satisfy: either the distinguished Null range, or a
// non-empty path with strictly positive line, column, and length. A
// violation here means the parser handed us a malformed node, which is
// an internal bug, not a recoverable diagnostic condition — so it
// panics rather than emitting a message, mirroring frg_die in the
// original.
func verifySourceRange(rng position.Range) {
	if rng.IsNull() {
		return
	}
	if !rng.IsValid() {
		panic("verifier: malformed source range " + rng.String())
	}
}

// isValidSymbolCodepointFirst reports whether r may begin a symbol
// identifier: a letter, underscore, or any code point outside the
// control/format/surrogate/private-use categories other than a digit
// (Go never produces a real Cs rune from valid UTF-8, but invalid
// encoding surfaces as utf8.RuneError, which unicode.Co would not
// catch, so it's rejected explicitly).
func isValidSymbolCodepointFirst(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	if unicode.IsDigit(r) {
		return false
	}
	return !unicode.In(r, unicode.Cc, unicode.Cf, unicode.Co)
}

func isValidSymbolCodepoint(r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	return isValidSymbolCodepointFirst(r)
}

// verifySymbolName validates name against the rules in §4.5.1: non-empty,
// first code point a letter or underscore (or otherwise any non-digit
// outside control/format/private-use categories), subsequent code
// points may additionally be digits. It reports the failing diagnostic
// code, or "" if name is valid.
func verifySymbolName(name string) string {
	if name == "" {
		return CodeSymbolNameEmpty
	}
	for i, r := range name {
		valid := isValidSymbolCodepoint(r)
		if i == 0 {
			valid = isValidSymbolCodepointFirst(r)
		}
		if !valid {
			return CodeSymbolNameInvalid
		}
	}
	return ""
}

func newWellFormedVisitor(ctx *Context) *visitor.Visitor {
	v := visitor.New(ctx)

	v.AddHandler(ast.KindTypeVoid, visitor.Handler{OnEnter: wfEnterPrimary})
	v.AddHandler(ast.KindTypeBool, visitor.Handler{OnEnter: wfEnterPrimary})
	v.AddHandler(ast.KindTypeInt, visitor.Handler{OnEnter: wfEnterTypeInt})
	v.AddHandler(ast.KindTypeFloat, visitor.Handler{OnEnter: wfEnterTypeFloat})
	v.AddHandler(ast.KindTypeSymbol, visitor.Handler{OnEnter: wfEnterTypeSymbol})
	v.AddHandler(ast.KindTypePointer, visitor.Handler{OnEnter: wfEnterTypePointer})
	v.AddHandler(ast.KindTypeFunction, visitor.Handler{OnEnter: wfEnterTypeFunction})
	v.AddHandler(ast.KindValueSymbol, visitor.Handler{OnEnter: wfEnterValueSymbol})

	return v
}

func wfEnterPrimary(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	verifySourceRange((*node).Range())
	return visitor.StatusOK
}

func wfEnterTypeInt(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.TypeInt)
	verifySourceRange(t.Range())

	if !isValidIntBitWidth(t.BitWidth) {
		panic("verifier: invalid int bit width")
	}

	return visitor.StatusOK
}

func wfEnterTypeFloat(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.TypeFloat)
	verifySourceRange(t.Range())

	if !isValidFloatBitWidth(t.BitWidth) {
		panic("verifier: invalid float bit width")
	}

	return visitor.StatusOK
}

func wfEnterTypeSymbol(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.TypeSymbol)
	verifySourceRange(t.Range())

	ctx := userData.(*Context)
	if code := verifySymbolName(t.Name); code != "" {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), code, "invalid type-symbol name %q", t.Name)
		return visitor.StatusSkip
	}

	return visitor.StatusOK
}

func wfEnterValueSymbol(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.ValueSymbol)
	verifySourceRange(t.Range())

	ctx := userData.(*Context)
	if code := verifySymbolName(t.Name); code != "" {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), code, "invalid value-symbol name %q", t.Name)
		return visitor.StatusSkip
	}

	return visitor.StatusOK
}

func wfEnterTypePointer(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.TypePointer)
	verifySourceRange(t.Range())
	ctx := userData.(*Context)

	if t.Value == nil {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeRequiredChildNull,
			"type-pointer node is missing its pointee type")
		return visitor.StatusSkip
	}

	return visitor.StatusOK
}

func wfEnterTypeFunction(node *ast.Node, userData any, _ []ast.Node) visitor.Status {
	t := (*node).(*ast.TypeFunction)
	verifySourceRange(t.Range())
	ctx := userData.(*Context)

	for i, arg := range t.Arguments {
		if arg == nil {
			ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeListElementNull,
				"type-function arguments[%d] is missing", i)
			return visitor.StatusSkip
		}
		if arg.Kind() != ast.KindDeclarationFunctionArgument {
			ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeListElementUnexpectedKind,
				"type-function arguments[%d] must be a function argument, found %s", i, arg.Kind())
			return visitor.StatusSkip
		}
	}

	if t.ReturnType == nil {
		ctx.Messages.Emit(diag.SeverityError, t.Range(), CodeRequiredChildNull,
			"type-function node is missing its return type")
		return visitor.StatusSkip
	}

	return visitor.StatusOK
}
