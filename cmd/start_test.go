package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartCommandFlags(t *testing.T) {
	startCmd := newStartCmd()

	for _, name := range []string{"debug", "no-alt-screen", "config"} {
		assert.NotNil(t, startCmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, "false", startCmd.Flags().Lookup("debug").DefValue)
	assert.Empty(t, startCmd.Flags().Lookup("config").DefValue)
	assert.Error(t, startCmd.Args(startCmd, []string{"extra"}))
	assert.NoError(t, startCmd.Args(startCmd, nil))
}
