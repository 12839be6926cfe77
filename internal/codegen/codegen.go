// Package codegen defines the interface between the verified AST and
// a concrete code generator, mirroring frg_codegen/frg_codegen_module_t
// from _frg_configuration_commands_callback_compile's compile
// pipeline. No concrete backend lives here — lowering an AST to
// machine code is an external collaborator (§1) — but
// internal/compiletest exercises this interface against a no-op stub
// so the pipeline shape has a real caller.
package codegen

import (
	"io"

	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/diag"
)

// Module is a generated intermediate representation ready to be
// printed for inspection (--print-ir) or written out as an object
// file, mirroring frg_codegen_module_t's two consumers in
// compile.c.
type Module interface {
	// Print renders a human-readable dump of the module to w,
	// mirroring frg_codegen_module_print.
	Print(w io.Writer)
	// WriteObjectFile writes the module's machine code to path,
	// mirroring frg_codegen_module_write_object_file. Failures are
	// reported through messages rather than a bare bool, consistent
	// with every other phase in this front end.
	WriteObjectFile(messages *diag.Buffer, path string) bool
}

// Generator lowers a verified AST node into a Module, mirroring
// frg_codegen. Concrete generators are external collaborators; this
// interface is what cmd/forge and internal/compiletest program
// against.
type Generator interface {
	Generate(node ast.Node) (Module, bool)
}
