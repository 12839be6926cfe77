package diag

import "strings"

// Query filters messages by any combination of severity, code, and a
// text substring. A nil field means "don't filter on this".
type Query struct {
	WithSeverity *Severity
	WithCode     *string
	WithText     *string
}

// Matches reports whether m satisfies every filter set on q.
func (q Query) Matches(m *Message) bool {
	if q.WithSeverity != nil && m.Severity != *q.WithSeverity {
		return false
	}
	if q.WithCode != nil && m.Code != *q.WithCode {
		return false
	}
	if q.WithText != nil && !strings.Contains(m.Text, *q.WithText) {
		return false
	}
	return true
}

// QuerySingleResult reports how many messages a QuerySingle call
// matched.
type QuerySingleResult int

const (
	// QuerySingleNone means no message matched.
	QuerySingleNone QuerySingleResult = iota
	// QuerySingleOne means exactly one message matched; it is returned.
	QuerySingleOne
	// QuerySingleMultiple means more than one message matched.
	// QuerySingle then returns a nil message: buffer iteration order is
	// not guaranteed stable, so returning "the first" one found would be
	// a silent, unreproducible choice.
	QuerySingleMultiple
)
