package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sophiekatz/forge-go/internal/position"
)

func rangeAt(path string, line, offset, length int) position.Range {
	return position.Range{
		Start:  position.Location{Path: path, Line: line, Column: 1, Offset: offset},
		Length: length,
	}
}

func TestEmitUpdatesCounters(t *testing.T) {
	b := NewBuffer()

	b.Emit(SeverityWarning, position.Null, "W001", "unused variable %q", "x")
	b.Emit(SeverityError, position.Null, "E001", "type mismatch")
	b.Emit(SeverityNote, position.Null, "", "see also")

	assert.Equal(t, 3, b.MessageCount)
	assert.Equal(t, 1, b.ErrorCount)
	assert.Equal(t, 1, b.WarningCount)
}

func TestEmitFatalAndInternalCountAsErrors(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityFatalError, position.Null, "", "disk full")
	b.Emit(SeverityInternalError, position.Null, "", "unreachable reached")

	assert.Equal(t, 2, b.ErrorCount)
	assert.Equal(t, 0, b.WarningCount)
}

func TestEmitChildDoesNotBecomeTopLevel(t *testing.T) {
	b := NewBuffer()
	parent := b.Emit(SeverityError, position.Null, "E002", "bad call")
	b.EmitChild(parent, SeverityNote, position.Null, "", "argument %d here", 1)

	assert.Len(t, parent.Children, 1)
	assert.Equal(t, 2, b.MessageCount)
	all := b.QueryAll(Query{})
	assert.Len(t, all, 1, "child messages must not appear as top-level buffer entries")
}

func TestEmitfSatisfiesDiagnosticSink(t *testing.T) {
	b := NewBuffer()
	b.Emitf(int(SeverityError), position.Null, "E003", "boom")

	assert.Equal(t, 1, b.ErrorCount)
}

func TestQueryCountFiltersBySeverityCodeAndText(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityError, position.Null, "E100", "duplicate declaration of foo")
	b.Emit(SeverityError, position.Null, "E101", "duplicate declaration of bar")
	b.Emit(SeverityWarning, position.Null, "E100", "unused foo")

	sev := SeverityError
	assert.Equal(t, 2, b.QueryCount(Query{WithSeverity: &sev}))

	code := "E100"
	assert.Equal(t, 2, b.QueryCount(Query{WithCode: &code}))

	text := "bar"
	assert.Equal(t, 1, b.QueryCount(Query{WithText: &text}))

	assert.Equal(t, 1, b.QueryCount(Query{WithSeverity: &sev, WithCode: &code}))
}

func TestQuerySingleNone(t *testing.T) {
	b := NewBuffer()
	code := "E999"
	msg, result := b.QuerySingle(Query{WithCode: &code})

	assert.Nil(t, msg)
	assert.Equal(t, QuerySingleNone, result)
}

func TestQuerySingleOne(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityError, position.Null, "E200", "only one of these")

	code := "E200"
	msg, result := b.QuerySingle(Query{WithCode: &code})

	require.NotNil(t, msg)
	assert.Equal(t, QuerySingleOne, result)
	assert.Equal(t, "only one of these", msg.Text)
}

func TestQuerySingleMultipleReturnsNilNotFirst(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityError, position.Null, "E300", "first")
	b.Emit(SeverityError, position.Null, "E300", "second")

	code := "E300"
	msg, result := b.QuerySingle(Query{WithCode: &code})

	assert.Nil(t, msg, "ambiguous match must not silently pick a message")
	assert.Equal(t, QuerySingleMultiple, result)
}

func TestQueryAllReturnsIndependentSlice(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityError, position.Null, "E400", "a")
	b.Emit(SeverityError, position.Null, "E400", "b")

	code := "E400"
	all := b.QueryAll(Query{WithCode: &code})
	require.Len(t, all, 2)

	all[0] = nil
	all2 := b.QueryAll(Query{WithCode: &code})
	assert.NotNil(t, all2[0], "mutating a returned slice must not affect the buffer")
}

func TestRenderSortsBySeverityDescendingThenPath(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityWarning, rangeAt("b.forge", 1, 0, 1), "", "warn in b")
	b.Emit(SeverityError, rangeAt("a.forge", 5, 10, 1), "", "error in a")
	b.Emit(SeverityError, position.Null, "", "error with no range")

	var sb strings.Builder
	b.Render(&sb, SeverityDebug, false)
	out := sb.String()

	errNoRangeIdx := strings.Index(out, "error with no range")
	errAIdx := strings.Index(out, "error in a")
	warnBIdx := strings.Index(out, "warn in b")

	require.NotEqual(t, -1, errNoRangeIdx)
	require.NotEqual(t, -1, errAIdx)
	require.NotEqual(t, -1, warnBIdx)

	assert.Less(t, errNoRangeIdx, errAIdx, "nil source path sorts before a real one")
	assert.Less(t, errAIdx, warnBIdx, "errors sort before warnings")
}

func TestRenderRespectsMinSeverity(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityNote, position.Null, "", "a note")
	b.Emit(SeverityError, position.Null, "", "an error")

	var sb strings.Builder
	b.Render(&sb, SeverityWarning, false)
	out := sb.String()

	assert.NotContains(t, out, "a note")
	assert.Contains(t, out, "an error")
}

func TestRenderSummaryLineUncolored(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityError, position.Null, "", "one")
	b.Emit(SeverityError, position.Null, "", "two")
	b.Emit(SeverityWarning, position.Null, "", "three")

	var sb strings.Builder
	b.Render(&sb, SeverityDebug, false)
	out := sb.String()

	assert.Contains(t, out, "Failed with 2 errors and 1 warning.")
}

func TestRenderSummaryLineSucceededWithWarningsOnly(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityWarning, position.Null, "", "only warning")

	var sb strings.Builder
	b.Render(&sb, SeverityDebug, false)
	out := sb.String()

	assert.Contains(t, out, "Succeeded with 1 warning.")
}

func TestRenderSummaryLineColored(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityError, position.Null, "", "boom")

	var sb strings.Builder
	b.Render(&sb, SeverityDebug, true)
	out := sb.String()

	assert.Contains(t, out, colorBoldRed)
	assert.Contains(t, out, colorReset)
}

func TestRenderOmitsSummaryWhenClean(t *testing.T) {
	b := NewBuffer()
	b.Emit(SeverityNote, position.Null, "", "fyi")

	var sb strings.Builder
	b.Render(&sb, SeverityDebug, false)
	out := sb.String()

	assert.NotContains(t, out, "Succeeded")
	assert.NotContains(t, out, "Failed")
}

func TestEmitCapturesLogOrigin(t *testing.T) {
	b := NewBuffer()
	msg := b.Emit(SeverityError, position.Null, "", "boom")

	assert.NotEmpty(t, msg.LogPath)
	assert.Greater(t, msg.LogLine, 0)
}
