package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandSections(t *testing.T) {
	out, err := commandSections("cix")
	require.NoError(t, err)

	assert.Contains(t, out, "### echo\n")
	assert.Contains(t, out, "### service start\n")
	assert.Contains(t, out, "### alias set\n")
	assert.NotContains(t, out, "### service\n", "groups have no section")
}
