package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommands(t *testing.T) {
	cmds := getCommands("test")

	names := make(map[string]bool)
	for _, cmd := range cmds {
		assert.False(t, names[cmd.Name], "duplicate command %s", cmd.Name)
		names[cmd.Name] = true
	}

	for _, name := range []string{"server", "migrate", "create-device-key", "issue-token", "vault"} {
		assert.True(t, names[name], "missing command %s", name)
	}

	vault := getVaultCommand()
	sub := make([]string, 0, len(vault.Commands))
	for _, cmd := range vault.Commands {
		require.NotNil(t, cmd.Action, cmd.Name)
		sub = append(sub, cmd.Name)
	}
	assert.Equal(t, []string{"add", "get", "list", "remove", "clear", "stats"}, sub)
}
