package diag

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/sophiekatz/forge-go/internal/position"
)

// ANSI escape codes for Render's colored summary line: plain
// constants, no external color library.
const (
	colorReset      = "\x1b[0m"
	colorWhite      = "\x1b[37m"
	colorBoldRed    = "\x1b[1;31m"
	colorBoldYellow = "\x1b[1;93m"
)

// Buffer accumulates Messages. It is the only place diagnostics are
// reported through anywhere in the front end — there is no separate
// error-return channel for compiler-internal problems.
type Buffer struct {
	messages      []*Message
	maxLineNumber int

	MessageCount int
	ErrorCount   int
	WarningCount int
}

// NewBuffer constructs an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Emit appends a new top-level message and returns it, so the caller
// may attach children to it with (*Message).AddChild. format and args
// are interpolated eagerly: the buffer stores text, not a deferred
// closure.
func (b *Buffer) Emit(severity Severity, rng position.Range, code, format string, args ...any) *Message {
	msg := &Message{
		Severity: severity,
		Code:     code,
		Range:    rng,
		Text:     fmt.Sprintf(format, args...),
	}
	msg.LogPath, msg.LogLine = callerLocation()

	b.messages = append(b.messages, msg)
	b.updateCounters(msg)
	return msg
}

// Emitf implements ast.DiagnosticSink so internal/ast's generic
// operations (TypeResolve in particular) can report problems without
// importing this package. severity is an int here only because
// ast.DiagnosticSink cannot reference diag.Severity without creating
// the import cycle ast is built to avoid; it is immediately converted.
func (b *Buffer) Emitf(severity int, rng position.Range, code, format string, args ...any) {
	b.Emit(Severity(severity), rng, code, format, args...)
}

// EmitChild attaches a new message as a child of parent. Children are
// never top-level buffer members: they don't count toward
// QueryCount/QueryAll results and don't affect rendering order, but
// they still update the buffer's counters.
func (b *Buffer) EmitChild(parent *Message, severity Severity, rng position.Range, code, format string, args ...any) *Message {
	msg := &Message{
		Severity: severity,
		Code:     code,
		Range:    rng,
		Text:     fmt.Sprintf(format, args...),
	}
	msg.LogPath, msg.LogLine = callerLocation()

	parent.AddChild(msg)
	b.updateCounters(msg)
	return msg
}

func callerLocation() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "<unknown>", 1
	}
	return file, line
}

func (b *Buffer) updateCounters(msg *Message) {
	if msg.Range.Start.Line > b.maxLineNumber {
		b.maxLineNumber = msg.Range.Start.Line
	}
	b.MessageCount++
	switch {
	case msg.Severity >= SeverityError:
		b.ErrorCount++
	case msg.Severity == SeverityWarning:
		b.WarningCount++
	}
}

// QueryCount returns the number of top-level messages matching q.
func (b *Buffer) QueryCount(q Query) int {
	count := 0
	for _, m := range b.messages {
		if q.Matches(m) {
			count++
		}
	}
	return count
}

// QuerySingle returns the one top-level message matching q, or nil
// with QuerySingleNone/QuerySingleMultiple when zero or more than one
// match. It never guesses at a "first" match under Multiple: buffer
// order is not a stable, queryable property.
func (b *Buffer) QuerySingle(q Query) (*Message, QuerySingleResult) {
	var found *Message
	for _, m := range b.messages {
		if !q.Matches(m) {
			continue
		}
		if found != nil {
			return nil, QuerySingleMultiple
		}
		found = m
	}
	if found == nil {
		return nil, QuerySingleNone
	}
	return found, QuerySingleOne
}

// QueryAll returns every top-level message matching q, as a fresh
// slice the caller may freely mutate.
func (b *Buffer) QueryAll(q Query) []*Message {
	var out []*Message
	for _, m := range b.messages {
		if q.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// messageLess implements the rendering sort order: severity
// descending, then source path ascending (nil path first), then
// source offset ascending, then source range length descending, then
// log path ascending, then log line ascending, then text ascending.
func messageLess(a, b *Message) bool {
	if a.Severity != b.Severity {
		return a.Severity > b.Severity
	}

	ap, bp := a.Range.Start.Path, b.Range.Start.Path
	if ap != bp {
		if ap == "" {
			return true
		}
		if bp == "" {
			return false
		}
		if ap != bp {
			return ap < bp
		}
	}

	if a.Range.Start.Offset != b.Range.Start.Offset {
		return a.Range.Start.Offset < b.Range.Start.Offset
	}

	if a.Range.Length != b.Range.Length {
		return a.Range.Length > b.Range.Length
	}

	if a.LogPath != b.LogPath {
		return a.LogPath < b.LogPath
	}

	if a.LogLine != b.LogLine {
		return a.LogLine < b.LogLine
	}

	return a.Text < b.Text
}

// Render sorts every top-level message at or above minSeverity and
// writes it to w, followed by a colored summary line reporting error
// and warning counts. Rendering never mutates the buffer's own message
// order outside of this call (the underlying slice is sorted in
// place, same as the C original's in-place g_list_sort, so repeated
// renders are idempotent).
func (b *Buffer) Render(w io.Writer, minSeverity Severity, color bool) {
	sort.SliceStable(b.messages, func(i, j int) bool {
		return messageLess(b.messages[i], b.messages[j])
	})

	lineWidth := digitCount(b.maxLineNumber)

	for _, m := range b.messages {
		if m.Severity < minSeverity {
			continue
		}
		printMessage(w, m, lineWidth, 0)
	}

	printSummary(w, b, color)
}

func printMessage(w io.Writer, m *Message, lineWidth, depth int) {
	prefix := strings.Repeat("  ", depth)
	location := "<no source range>"
	if !m.Range.IsNull() {
		location = fmt.Sprintf("%*d", lineWidth, m.Range.Start.Line)
		if m.Range.Start.Path != "" {
			location = m.Range.Start.Path + ":" + location
		}
	}

	code := ""
	if m.Code != "" {
		code = " [" + m.Code + "]"
	}

	fmt.Fprintf(w, "%s%s: %s%s: %s\n", prefix, location, m.Severity, code, m.Text)

	for _, c := range m.Children {
		printMessage(w, c, lineWidth, depth+1)
	}
}

func printSummary(w io.Writer, b *Buffer, color bool) {
	if b.ErrorCount == 0 && b.WarningCount == 0 {
		return
	}

	c := func(code, text string) string {
		if !color {
			return text
		}
		return code + text + colorReset
	}

	if b.ErrorCount > 0 {
		fmt.Fprint(w, c(colorWhite, "Failed with "))
	} else {
		fmt.Fprint(w, c(colorWhite, "Succeeded with "))
	}

	if b.ErrorCount > 0 {
		fmt.Fprint(w, c(colorBoldRed, fmt.Sprintf("%d error%s", b.ErrorCount, plural(b.ErrorCount))))
	}
	if b.ErrorCount > 0 && b.WarningCount > 0 {
		fmt.Fprint(w, c(colorWhite, " and "))
	}
	if b.WarningCount > 0 {
		fmt.Fprint(w, c(colorBoldYellow, fmt.Sprintf("%d warning%s", b.WarningCount, plural(b.WarningCount))))
	}
	fmt.Fprint(w, c(colorWhite, ".\n"))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func digitCount(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}

// ensure *Buffer satisfies ast.DiagnosticSink structurally; checked
// here rather than in package ast to avoid an import cycle.
var _ interface {
	Emitf(severity int, rng position.Range, code, format string, args ...any)
} = (*Buffer)(nil)
