// Package scope models the lexical scoping chain the verifier and any
// future codegen pass walk while resolving names: a stack of frames,
// innermost first, each holding the declarations and (eventually)
// codegen values visible at that nesting level.
package scope

import "github.com/sophiekatz/forge-go/internal/ast"

// Scope is a stack of frames. It is never empty: the constructor
// pushes an initial frame, and that frame can never be popped — it
// exists for the lifetime of the whole compilation unit.
type Scope struct {
	frames []*frame // innermost first
}

// New constructs a Scope with a single, unpoppable base frame.
func New() *Scope {
	s := &Scope{}
	s.PushFrame()
	return s
}

// PushFrame opens a new, innermost lexical frame.
func (s *Scope) PushFrame() {
	s.frames = append([]*frame{newFrame()}, s.frames...)
}

// PopFrame closes the innermost lexical frame. It panics if called on
// the base frame: popping the last frame would leave the scope with no
// frame at all, which is never valid for the lifetime of a Scope.
func (s *Scope) PopFrame() {
	if len(s.frames) == 0 {
		panic("scope: no frame to pop")
	}
	if len(s.frames) == 1 {
		panic("scope: must not pop the base scope frame")
	}
	s.frames = s.frames[1:]
}

func (s *Scope) currentFrame() *frame {
	if len(s.frames) == 0 {
		panic("scope: no current frame")
	}
	return s.frames[0]
}

// AddDeclaration records node in the current (innermost) frame under
// its declaration name.
func (s *Scope) AddDeclaration(node ast.Node) {
	s.currentFrame().addDeclaration(node)
}

// LookupDeclaration searches frames from innermost to outermost for a
// declaration named name. It satisfies ast.ScopeReader.
func (s *Scope) LookupDeclaration(name string) (ast.Node, bool) {
	for _, f := range s.frames {
		if n, ok := f.getDeclaration(name); ok {
			return n, true
		}
	}
	return nil, false
}

// AddIRValue records an opaque codegen handle for name in the current
// frame.
func (s *Scope) AddIRValue(name string, value any) {
	s.currentFrame().addIRValue(name, value)
}

// LookupIRValue searches frames from innermost to outermost for a
// codegen handle named name.
func (s *Scope) LookupIRValue(name string) (any, bool) {
	for _, f := range s.frames {
		if v, ok := f.getIRValue(name); ok {
			return v, true
		}
	}
	return nil, false
}

// LoadDeclarationBlock adds every declaration in block to the current
// frame. A convenience for entering a module or compound-declaration
// scope in one call.
func (s *Scope) LoadDeclarationBlock(block *ast.DeclarationBlock) {
	s.currentFrame().loadDeclarationBlock(block)
}

// LoadFunctionArguments adds every argument of fn's type to the
// current frame. A convenience for entering a function body's scope.
func (s *Scope) LoadFunctionArguments(fn *ast.DeclarationFunction) {
	s.currentFrame().loadFunctionArguments(fn)
}

var _ ast.ScopeReader = (*Scope)(nil)
