package ast

import "github.com/sophiekatz/forge-go/internal/position"

// Node is implemented by every concrete AST node type. It is
// intentionally small: the operations that act on every node kind
// (Clone, Compare, DebugPrint, ...) live as free functions in this
// package and dispatch on the concrete type with a type switch, rather
// than being methods every node type would otherwise need to repeat.
type Node interface {
	Kind() Kind
	Range() position.Range
}

// base is embedded in every concrete node struct to supply the two
// fields every node carries: its Kind and its source Range. Concrete
// constructors copy the Range they are given so a node never aliases
// caller-owned position data.
type base struct {
	kind Kind
	rng  position.Range
}

func newBase(kind Kind, rng position.Range) base {
	return base{kind: kind, rng: rng}
}

func (b base) Kind() Kind             { return b.kind }
func (b base) Range() position.Range { return b.rng }

// ScopeReader is the minimal view of a lexical scope that ast's
// generic type-resolution dispatch needs. It is declared here, not in
// package scope, so that ast never imports scope: scope.Scope
// satisfies this interface structurally. This keeps ast a leaf package
// per the front-end's layering (position -> ast -> visitor -> scope ->
// diag -> verifier).
type ScopeReader interface {
	LookupDeclaration(name string) (Node, bool)
}

// DiagnosticSink is the minimal view of a diagnostic buffer that ast's
// generic operations need in order to report a problem without
// importing package diag. diag.Buffer satisfies this interface
// structurally.
type DiagnosticSink interface {
	Emitf(severity int, rng position.Range, code, format string, args ...any)
}
