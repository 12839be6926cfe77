package codegen

import (
	"fmt"
	"io"

	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/position"
)

// NoopGenerator is a placeholder Generator that always succeeds
// without lowering anything, so callers that need a Generator (CLI
// --print-ir, the compiletest harness) have something real to invoke
// until a machine-code backend is wired in. It is not a stand-in for
// an actual code generator.
type NoopGenerator struct{}

// Generate implements Generator by wrapping node in a NoopModule.
func (NoopGenerator) Generate(node ast.Node) (Module, bool) {
	return &NoopModule{node: node}, true
}

// NoopModule is the Module NoopGenerator produces.
type NoopModule struct {
	node ast.Node
}

// Print reports that no real IR was generated, rather than silently
// printing nothing, so --print-ir output is never mistaken for an
// empty but real module.
func (m *NoopModule) Print(w io.Writer) {
	fmt.Fprintf(w, "(no codegen backend wired in; would lower %s)\n", ast.FormattedPrint(m.node))
}

// WriteObjectFile always reports failure: there is no machine code to
// write without a real backend.
func (m *NoopModule) WriteObjectFile(messages *diag.Buffer, path string) bool {
	messages.Emit(diag.SeverityError, position.Null, "EC-1",
		"no codegen backend wired in; cannot write object file to %q", path)
	return false
}
