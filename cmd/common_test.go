package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/callmegreg/gh-hulud-users/internal/types"
	"github.com/callmegreg/gh-hulud-users/internal/utils"
)

func TestReplicationFlagsOmitToken(t *testing.T) {
	cfg := &types.Config{
		Enterprise:  "acme",
		Token:       "secret",
		Concurrency: 5,
		Debug:       true,
	}

	flags := replicationFlags(cfg)
	assert.NotContains(t, flags, "token")
	assert.Equal(t, "gh hulud-users scan -e acme -c 5 --debug", utils.BuildReplicationCommand("scan", flags))
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"scan", "check", "search"} {
		cmd, _, err := rootCmd.Find([]string{name})
		assert.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
