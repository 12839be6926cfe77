// Package visitor implements a single-threaded, depth-first AST walk:
// pre-order on entering a node, post-order on leaving it, with handlers
// registered per node kind and able to stop or skip the walk, or
// replace the node in place.
package visitor

import "github.com/sophiekatz/forge-go/internal/ast"

// Status is what a handler callback returns to steer the walk.
type Status int

const (
	// StatusOK continues the walk normally.
	StatusOK Status = iota
	// StatusSkip, returned from an Enter callback, stops descent into
	// that node's children and skips its Leave event entirely. Returned
	// from a Leave callback, it behaves the same as StatusOK (there is
	// nothing left to skip).
	StatusSkip
	// StatusStop aborts the entire walk immediately, unwinding through
	// every enclosing Accept call.
	StatusStop
)

// Event identifies which half of a node's visit a handler fires on.
type Event int

const (
	EventEnter Event = iota
	EventLeave
)

// Callback is a handler function. node points to the slot currently
// holding the node being visited: a callback may reassign *node to
// replace it in place. parents lists enclosing nodes innermost-first
// (parents[0] is the direct parent, or nil at the root).
type Callback func(node *ast.Node, userData any, parents []ast.Node) Status

// Handler is one registered pair of Enter/Leave callbacks for a node
// kind. Either field may be nil.
type Handler struct {
	OnEnter Callback
	OnLeave Callback
}

// Visitor holds, per node kind, the ordered list of handlers to run
// during a walk, plus arbitrary user data threaded through to every
// callback.
type Visitor struct {
	handlers [][]Handler
	userData any
}

// New constructs a Visitor. userData is passed through to every
// callback unchanged; it is the walk's shared mutable state (e.g. a
// scope stack or a diagnostic sink), not interpreted by the visitor
// itself.
func New(userData any) *Visitor {
	return &Visitor{handlers: make([][]Handler, ast.KindCount()), userData: userData}
}

// AddHandler registers h to run whenever a node of the given kind is
// entered or left, after every previously registered handler for that
// kind.
func (v *Visitor) AddHandler(kind ast.Kind, h Handler) {
	v.handlers[kind] = append(v.handlers[kind], h)
}

// HasHandlerForKind reports whether any handler is registered for kind.
func (v *Visitor) HasHandlerForKind(kind ast.Kind) bool {
	return len(v.handlers[kind]) > 0
}

// Accept walks the tree rooted at *node. node must point to an
// addressable ast.Node variable; a handler may replace *node itself
// (at the root) or any descendant it holds a slot for.
func (v *Visitor) Accept(node *ast.Node) Status {
	return v.acceptRecursive(node, nil)
}

func (v *Visitor) acceptRecursive(node *ast.Node, parents []ast.Node) Status {
	if *node == nil {
		return StatusOK
	}

	status := v.handleEvent(node, parents, EventEnter)
	if status == StatusSkip {
		return StatusOK
	}
	if status != StatusOK {
		return status
	}

	if *node == nil {
		return StatusOK
	}

	parentsNext := append([]ast.Node{*node}, parents...)

	status = v.acceptChildren(node, parentsNext)
	if status == StatusSkip {
		return StatusOK
	}
	if status != StatusOK {
		return status
	}

	status = v.handleEvent(node, parents, EventLeave)
	if status == StatusStop {
		return status
	}
	return StatusOK
}

// acceptChildren visits every direct child of *parent in order,
// splicing any in-place replacement back into the parent via
// ast.ReplaceChild once that child's own walk completes.
func (v *Visitor) acceptChildren(parent *ast.Node, parents []ast.Node) Status {
	for _, child := range ast.Children(*parent) {
		slot := child

		status := v.acceptRecursive(&slot, parents)
		if status != StatusOK {
			return status
		}

		if slot != child {
			ast.ReplaceChild(*parent, child, slot)
		}
	}
	return StatusOK
}

// handleEvent runs every handler registered for (*node)'s kind, in
// registration order. If a callback replaces *node with a node of a
// different kind, or nils it out, the remaining handlers for this
// event are skipped without that counting as an error: the C original
// treats this as "no longer our business", not a fault.
func (v *Visitor) handleEvent(node *ast.Node, parents []ast.Node, event Event) Status {
	originalKind := (*node).Kind()

	for _, h := range v.handlers[originalKind] {
		if *node == nil || (*node).Kind() != originalKind {
			break
		}

		callback := h.OnEnter
		if event == EventLeave {
			callback = h.OnLeave
		}
		if callback == nil {
			continue
		}

		status := callback(node, v.userData, parents)
		if status != StatusOK {
			return status
		}
	}

	return StatusOK
}
