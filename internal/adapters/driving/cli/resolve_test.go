package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

func TestResolveCmd_Use(t *testing.T) {
	assert.Equal(t, "resolve [id]", resolveCmd.Use)
}

func TestResolveCmd_RequiresExactlyOneArg(t *testing.T) {
	_, cleanup := setupTestServices(testDocument())
	defer cleanup()

	_, _, err := execute("resolve")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestResolveCmd_ReservedID(t *testing.T) {
	_, cleanup := setupTestServices(testDocument())
	defer cleanup()

	stdout, _, err := execute("resolve", "virtual:vocabulary")

	require.NoError(t, err)
	assert.Equal(t, "\"\\x00virtual:vocabulary\"\n", stdout)
}

func TestResolveCmd_OtherID(t *testing.T) {
	_, cleanup := setupTestServices(testDocument())
	defer cleanup()

	_, _, err := execute("resolve", "./local.js")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotHandled)
}

func TestResolveCmd_NoProvider(t *testing.T) {
	defer resetFlags()
	SetServices(nil)

	_, _, err := execute("resolve", "virtual:vocabulary")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "module provider not configured")
}
