package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_ByID(t *testing.T) {
	directory := DefaultDirectory()

	oulu, ok := directory.ByID("oulu")
	require.True(t, ok)
	assert.Equal(t, "Oulu", oulu.Name)
	assert.InDelta(t, 65.0121, oulu.Latitude, 0.0001)

	_, ok = directory.ByID("atlantis")
	assert.False(t, ok)
}

func TestDirectory_AllReturnsCopy(t *testing.T) {
	directory := DefaultDirectory()

	all := directory.All()
	require.NotEmpty(t, all)
	all[0].Name = "mutated"

	again := directory.All()
	assert.NotEqual(t, "mutated", again[0].Name)
}
