package source

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sophiekatz/forge-go/internal/diag"
)

func TestNoopParserReportsFailure(t *testing.T) {
	messages := diag.NewBuffer()
	src := &Source{Path: "a.forge", Content: "fn f() {}"}

	node, ok := (NoopParser{}).Parse(messages, src)
	assert.False(t, ok)
	assert.Nil(t, node)
	assert.Equal(t, 1, messages.ErrorCount)
}
