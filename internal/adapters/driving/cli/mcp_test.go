package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "port flag should exist")
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_Long(t *testing.T) {
	assert.Contains(t, mcpServeCmd.Long, "vocabulary://document")
	assert.Contains(t, mcpServeCmd.Long, "resolve_module")
}

func TestMCPServeCmd_NoProvider(t *testing.T) {
	defer resetFlags()
	SetServices(nil)

	_, _, err := execute("mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "module provider not configured")
}
