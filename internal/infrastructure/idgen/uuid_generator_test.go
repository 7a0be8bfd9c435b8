package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	g := New()

	id := g.NewID("PT")
	require.True(t, strings.HasPrefix(id, "PT-"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "PT-"))
	assert.NoError(t, err)

	_, err = uuid.Parse(g.NewID(""))
	assert.NoError(t, err)

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := g.NewID("M")
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
