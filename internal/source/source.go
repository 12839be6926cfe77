// Package source defines the minimal surface a concrete lexer/parser
// needs to plug into the compiler core: a Source identifying what's
// being read, and a Parser turning it into an AST. Ported from
// lib/forge/parsing/{source,token_reader}.h's responsibilities — the
// actual lexer/parser is an external collaborator this front end
// never implements (§1), so this package stops at the interface.
package source

import (
	"io"
	"os"

	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/position"
)

// Source identifies a single compilation unit: a path (used for
// diagnostic locations, mirroring frg_parsing_location_t.path) and
// its textual content.
type Source struct {
	Path    string
	Content string
}

// Open reads path into a Source, mirroring
// _frg_configuration_commands_callback_compile's fopen/frg_stream_input_new_file
// sequence: one read of the whole file up front, since forge compiles
// exactly one source file per invocation and holds no streaming
// reader state across phases.
func Open(path string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Source{Path: path, Content: string(content)}, nil
}

// FromReader builds a Source named path from r's full contents,
// primarily for tests that don't want to touch the filesystem.
func FromReader(path string, r io.Reader) (*Source, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Source{Path: path, Content: string(content)}, nil
}

// StartLocation returns the position.Location a parser should begin
// reading src from: line 1, column 1, offset 0, mirroring
// token_reader_test.c's initial frg_parsing_location_t.
func (s *Source) StartLocation() position.Location {
	return position.Location{Path: s.Path, Line: 1, Column: 1, Offset: 0}
}

// Parser turns a Source into an AST node, reporting problems to
// messages and returning (nil, false) on unrecoverable parse failure
// — mirroring frg_parse's "returns NULL on error" contract, but
// through messages instead of a bare pointer so the reason is always
// recorded. Concrete lexer/parser implementations are external
// collaborators; this interface is what cmd/forge and
// internal/compiletest program against.
type Parser interface {
	Parse(messages *diag.Buffer, src *Source) (ast.Node, bool)
}
