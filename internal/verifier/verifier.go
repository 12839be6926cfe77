// Package verifier runs the semantic verification passes over a root
// AST: well-formedness, unsupported-feature detection, and type
// verification. Each pass is a visitor.Visitor sharing one Context, run
// in order over the same root.
package verifier

import (
	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/scope"
)

// Context is shared by every pass: where diagnostics go, and the
// lexical scope built up as the passes descend into the tree.
type Context struct {
	Messages *diag.Buffer
	Scope    *scope.Scope
}

// NewContext constructs a Context with a fresh base scope.
func NewContext(messages *diag.Buffer) *Context {
	return &Context{Messages: messages, Scope: scope.New()}
}

// Verifier composes the three passes and runs them over a root node in
// order: well-formedness first (so later passes can assume the tree is
// structurally sound), then unsupported-feature detection, then type
// verification.
type Verifier struct {
	ctx *Context
}

// New constructs a Verifier reporting to ctx.
func New(ctx *Context) *Verifier {
	return &Verifier{ctx: ctx}
}

// Run walks root through every pass in sequence. It does not stop early
// if a pass reports errors: later passes still run, so a single
// invocation surfaces as many diagnostics as possible in one compile.
func (v *Verifier) Run(root *ast.Node) {
	newWellFormedVisitor(v.ctx).Accept(root)
	newUnsupportedVisitor(v.ctx).Accept(root)
	newTypeVerificationVisitor(v.ctx).Accept(root)
}
