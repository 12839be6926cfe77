// Package compiletest is a fixture-driven harness that runs a
// pre-built AST through the verifier and, for fixtures expected to
// verify cleanly, through a codegen.Generator (a no-op stub in the
// tests), checking the resulting diagnostics against expectations.
// Nothing is linked, loaded or invoked.
// Ported from lib/forge-testing/compilation_test/{options,test}.c: the
// C original drives its fixtures from source text through a real
// parser; since that parser is an external collaborator this front
// end never implements (§1), fixtures here build their AST directly
// with internal/ast constructors, the same way
// tests/compilation/*.c's on_ast callbacks assert against an
// already-parsed tree.
package compiletest

import (
	"fmt"
	"strings"

	"github.com/sophiekatz/forge-go/internal/ast"
	"github.com/sophiekatz/forge-go/internal/codegen"
	"github.com/sophiekatz/forge-go/internal/diag"
	"github.com/sophiekatz/forge-go/internal/verifier"
)

// Kind mirrors frg_testing_compilation_test_kind_t: what outcome a
// fixture expects from verification.
type Kind int

const (
	// KindExpectSuccess mirrors FRG_TESTING_COMPILATION_TEST_KIND_EXPECT_SUCCESS:
	// verification must produce zero errors and zero warnings.
	KindExpectSuccess Kind = iota
	// KindExpectUnableToVerify mirrors
	// FRG_TESTING_COMPILATION_TEST_KIND_EXPECT_UNABLE_TO_VERIFY:
	// verification is expected to report specific diagnostics.
	KindExpectUnableToVerify
)

// ExpectedMessage names a diagnostic a fixture expects the verifier
// to emit, mirroring the {with_severity, with_code} fields of
// frg_message_query_t as used by tests/compilation/*.c's
// on_messages callbacks. Line/Column/Length pin the exact source range
// the message must carry (0 means "don't care" for that field),
// matching the original C's assertions against
// statement_return->value->source_range /
// value_unary->operand->source_range /
// value_binary->{left,right}->source_range rather than the whole
// enclosing expression.
type ExpectedMessage struct {
	Code   string
	Text   string
	Line   int
	Column int
	Length int
}

// Fixture is one compilation test case, mirroring
// frg_testing_compilation_test_options_t trimmed to what this front
// end can exercise without a real parser: BuildAST stands in for
// frg_parse's result, constructed directly rather than lexed from
// SourceText. SourceText is kept for documentation/traceability back
// to the original *.forge-shaped source it represents.
type Fixture struct {
	Name             string
	SourceText       string
	BuildAST         func() ast.Node
	Kind             Kind
	ExpectedMessages []ExpectedMessage
}

// Result is what Run reports back about one Fixture.
type Result struct {
	Fixture  Fixture
	Messages *diag.Buffer
	Passed   bool
	Failures []string
}

// Run verifies fixture.BuildAST() and checks the resulting
// diagnostics against fixture's expectations, mirroring
// frg_testing_test_compilation's verify-then-assert shape. gen is
// consulted afterward purely to give internal/codegen a real caller,
// mirroring compile.c's post-verification codegen step; its result
// does not affect pass/fail for KindExpectUnableToVerify fixtures,
// since a verification failure means codegen should never run for
// real (matching compile.c's early-return-on-parse/verify-failure
// shape).
func Run(fixture Fixture, gen codegen.Generator) Result {
	messages := diag.NewBuffer()
	root := fixture.BuildAST()

	ctx := verifier.NewContext(messages)
	verifier.New(ctx).Run(&root)

	result := Result{Fixture: fixture, Messages: messages}

	switch fixture.Kind {
	case KindExpectSuccess:
		if messages.ErrorCount != 0 || messages.WarningCount != 0 {
			result.Failures = append(result.Failures,
				fmt.Sprintf("expected zero diagnostics, got %d errors and %d warnings",
					messages.ErrorCount, messages.WarningCount))
		} else if _, ok := gen.Generate(root); !ok {
			result.Failures = append(result.Failures, "codegen rejected a fixture that passed verification")
		}
	case KindExpectUnableToVerify:
		result.Failures = append(result.Failures, checkExpectedMessages(messages, fixture.ExpectedMessages)...)
	}

	result.Passed = len(result.Failures) == 0
	return result
}

// checkExpectedMessages groups expected entries by code first, since
// spec.md §8 scenario 4 expects *two* ET-6 messages for one fixture —
// QuerySingle alone can't express "exactly N of this code", only
// "exactly one". Each entry is then matched individually against the
// code's messages on text/line/column/length, so scenario 4's two
// ET-6 diagnostics (one per operand, at different columns) are each
// checked against their own expected range rather than either one
// satisfying both expectations.
func checkExpectedMessages(messages *diag.Buffer, expected []ExpectedMessage) []string {
	var failures []string

	wantCounts := map[string]int{}
	for _, want := range expected {
		wantCounts[want.Code]++
	}

	for code, wantCount := range wantCounts {
		code := code
		gotCount := messages.QueryCount(diag.Query{WithCode: &code})
		if gotCount != wantCount {
			failures = append(failures, fmt.Sprintf("expected %d message(s) with code %s, got %d", wantCount, code, gotCount))
		}
	}

	for _, want := range expected {
		code := want.Code
		candidates := messages.QueryAll(diag.Query{WithCode: &code})
		if !anyMessageMatches(candidates, want) {
			failures = append(failures, fmt.Sprintf(
				"code %s: no message matched text %q at line %d column %d length %d",
				want.Code, want.Text, want.Line, want.Column, want.Length))
		}
	}

	return failures
}

// anyMessageMatches reports whether any of candidates satisfies want's
// text substring and line/column/length (a zero field in want means
// "don't care" for that field).
func anyMessageMatches(candidates []*diag.Message, want ExpectedMessage) bool {
	for _, m := range candidates {
		if want.Text != "" && !strings.Contains(m.Text, want.Text) {
			continue
		}
		if want.Line != 0 && m.Range.Start.Line != want.Line {
			continue
		}
		if want.Column != 0 && m.Range.Start.Column != want.Column {
			continue
		}
		if want.Length != 0 && m.Range.Length != want.Length {
			continue
		}
		return true
	}
	return false
}
