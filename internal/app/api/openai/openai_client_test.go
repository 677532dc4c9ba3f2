package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := GetClient()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestGetClientReturnsSharedInstance(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	first, err := GetClient()
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := GetClient()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
