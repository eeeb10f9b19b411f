package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestNewRunID(t *testing.T) {
	first := NewRunID()
	second := NewRunID()

	require.True(t, strings.HasPrefix(first, "run-"))
	_, err := uuid.Parse(strings.TrimPrefix(first, "run-"))
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
