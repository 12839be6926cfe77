package scope

import "github.com/sophiekatz/forge-go/internal/ast"

// frame is a single lexical layer: a set of AST declarations visible
// within it, keyed by name, plus a parallel set of opaque codegen
// handles keyed the same way. The codegen map holds `any` rather than
// a concrete IR type because nothing in this module produces code yet;
// it exists so a future codegen pass has somewhere to record "this
// name compiled to this backend value" without scope needing to import
// codegen.
type frame struct {
	declarations map[string]ast.Node
	irValues     map[string]any
}

func newFrame() *frame {
	return &frame{
		declarations: make(map[string]ast.Node),
		irValues:     make(map[string]any),
	}
}

// addDeclaration records node under its declaration name. It panics if
// node has no declaration name or the name is empty: both are caller
// bugs (attempting to scope something that was never a named
// declaration), not recoverable diagnostics.
func (f *frame) addDeclaration(node ast.Node) {
	name, ok := ast.DeclarationName(node)
	if !ok || name == "" {
		panic("scope: node has no declaration name")
	}
	f.declarations[name] = node
}

func (f *frame) getDeclaration(name string) (ast.Node, bool) {
	n, ok := f.declarations[name]
	return n, ok
}

func (f *frame) addIRValue(name string, value any) {
	if name == "" {
		panic("scope: empty name")
	}
	f.irValues[name] = value
}

func (f *frame) getIRValue(name string) (any, bool) {
	v, ok := f.irValues[name]
	return v, ok
}

func (f *frame) loadDeclarationBlock(block *ast.DeclarationBlock) {
	for _, decl := range block.Declarations {
		f.addDeclaration(decl)
	}
}

func (f *frame) loadFunctionArguments(fn *ast.DeclarationFunction) {
	if fn.Type == nil {
		return
	}
	for _, arg := range fn.Type.Arguments {
		f.addDeclaration(arg)
	}
}
