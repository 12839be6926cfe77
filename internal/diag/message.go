package diag

import "github.com/sophiekatz/forge-go/internal/position"

// Message is a single diagnostic: the buffer is the only place errors
// are reported through — there is no separate error-return channel for
// compiler-internal problems (see ast.DiagnosticSink).
type Message struct {
	Severity Severity
	Code     string
	Range    position.Range
	LogPath  string
	LogLine  int
	Text     string
	Children []*Message
}

// AddChild attaches child as a child of m. Children are not top-level
// buffer members and do not affect sort order.
func (m *Message) AddChild(child *Message) {
	m.Children = append(m.Children, child)
}
