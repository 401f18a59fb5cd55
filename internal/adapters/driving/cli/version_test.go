package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	setupTestServices(t, nil, nil)

	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "panseek version")
	assert.Contains(t, out, version)
}
