package ast

import "github.com/sophiekatz/forge-go/internal/position"

// StatementReturn returns from the enclosing function, optionally with
// a value (nil Value means a bare `return;`).
type StatementReturn struct {
	base
	Value Node
}

// NewStatementReturn constructs a StatementReturn node.
func NewStatementReturn(rng position.Range, value Node) *StatementReturn {
	return &StatementReturn{newBase(KindStatementReturn, rng), value}
}

// StatementIfConditionalClause pairs a condition with the body that
// runs when it holds; it is never visited standalone, only as an
// element of StatementIf.ConditionalClauses.
type StatementIfConditionalClause struct {
	base
	Condition Node
	Body      Node
}

// NewStatementIfConditionalClause constructs a StatementIfConditionalClause node.
func NewStatementIfConditionalClause(rng position.Range, condition, body Node) *StatementIfConditionalClause {
	return &StatementIfConditionalClause{newBase(KindStatementIfConditionalClause, rng), condition, body}
}

// StatementIf is an if/else-if/else chain: one or more conditional
// clauses tried in order, with an optional else clause.
type StatementIf struct {
	base
	ConditionalClauses []Node
	ElseClause         Node
}

// NewStatementIf constructs a StatementIf node.
func NewStatementIf(rng position.Range, conditionalClauses []Node, elseClause Node) *StatementIf {
	return &StatementIf{newBase(KindStatementIf, rng), conditionalClauses, elseClause}
}

// StatementWhile is a condition-checked loop.
type StatementWhile struct {
	base
	Condition Node
	Body      Node
}

// NewStatementWhile constructs a StatementWhile node.
func NewStatementWhile(rng position.Range, condition, body Node) *StatementWhile {
	return &StatementWhile{newBase(KindStatementWhile, rng), condition, body}
}

// StatementBlock is an ordered sequence of statements forming a
// compound statement.
type StatementBlock struct {
	base
	Statements []Node
}

// NewStatementBlock constructs a StatementBlock node.
func NewStatementBlock(rng position.Range, statements []Node) *StatementBlock {
	return &StatementBlock{newBase(KindStatementBlock, rng), statements}
}
