package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "compile")
	assert.Contains(t, names, "link")
	assert.Contains(t, names, "version")
}

func TestRootCommandRegistersGlobalFlags(t *testing.T) {
	root := newRootCommand()

	assert.NotNil(t, root.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, root.PersistentFlags().Lookup("color-mode"))
	assert.NotNil(t, root.PersistentFlags().Lookup("unicode-mode"))
}
