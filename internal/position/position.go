// Package position models a location in a source file and a contiguous
// range starting at that location.
package position

import "fmt"

// Location identifies a single point in a source file: the path to the
// file, a 1-indexed line and column, and a 0-indexed byte offset.
//
// Paths are treated as shared immutable strings; Location never mutates
// the Path it was given.
type Location struct {
	Path   string
	Line   int
	Column int
	Offset int
}

// IsValid reports whether l satisfies the well-formedness invariants: a
// non-empty path and strictly positive line/column.
func (l Location) IsValid() bool {
	return l.Path != "" && l.Line > 0 && l.Column > 0 && l.Offset >= 0
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}

// Range is a contiguous span of source text: a starting Location and a
// length in bytes. Length must be strictly positive for a well-formed
// range; the distinguished zero value, Null, marks "no source range"
// (used by synthetic nodes that were never parsed from text).
type Range struct {
	Start  Location
	Length int
}

// Null is the distinguished empty range used by nodes that do not
// correspond to any span of real source text.
var Null = Range{}

// IsNull reports whether r is the distinguished Null range.
func (r Range) IsNull() bool {
	return r == Range{}
}

// IsValid reports whether r is either Null or a well-formed non-empty
// range anchored at a valid Location.
func (r Range) IsValid() bool {
	if r.IsNull() {
		return true
	}
	return r.Start.IsValid() && r.Length > 0
}

func (r Range) String() string {
	if r.IsNull() {
		return "<no source range>"
	}
	return fmt.Sprintf("%s (%d bytes)", r.Start, r.Length)
}
