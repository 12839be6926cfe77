package source

import (
	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/position"
)

// NoopParser is a placeholder Parser that always reports that no
// concrete lexer/parser is wired in, mirroring
// internal/codegen.NoopGenerator's role: it gives cmd/forge's compile
// pipeline a real Parser to call before a real one exists, rather
// than requiring every caller to special-case a nil interface.
type NoopParser struct{}

// Parse implements Parser by reporting failure through messages.
func (NoopParser) Parse(messages *diag.Buffer, src *Source) (ast.Node, bool) {
	messages.Emit(diag.SeverityError, position.Null, "EEXT-1",
		"no parser wired in; %s was not compiled", src.Path)
	return nil, false
}
