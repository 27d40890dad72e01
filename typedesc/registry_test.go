package typedesc_test

import (
	"testing"

	"github.com/saylorsolutions/signals/typedesc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshRegistry(t *testing.T) {
	t.Helper()
	typedesc.Reset()
	t.Cleanup(typedesc.Reset)
}

func TestID_Interning(t *testing.T) {
	freshRegistry(t)
	first := typedesc.ID(typedesc.Of[int]())
	second := typedesc.ID(typedesc.Of[string]())
	assert.Equal(t, uint32(1), first)
	assert.Equal(t, uint32(2), second)
	// Interning is stable, the same type keeps its first ID.
	assert.Equal(t, first, typedesc.ID(typedesc.Of[int]()))
	assert.Zero(t, typedesc.ID(typedesc.OfValue(nil)))
	assert.Equal(t, 2, typedesc.Count())
}

func TestSetName(t *testing.T) {
	freshRegistry(t)
	require.NoError(t, typedesc.SetName(typedesc.Of[int](), "counter"))
	assert.Equal(t, "counter", typedesc.Name(typedesc.Of[int]()))

	found, ok := typedesc.Lookup("counter")
	require.True(t, ok)
	assert.Equal(t, typedesc.Of[int](), found)
	// The derived name still resolves.
	found, ok = typedesc.Lookup("int")
	require.True(t, ok)
	assert.Equal(t, typedesc.Of[int](), found)

	// Re-binding the same pair is fine, stealing the name is not.
	assert.NoError(t, typedesc.SetName(typedesc.Of[int](), "counter"))
	assert.ErrorIs(t, typedesc.SetName(typedesc.Of[string](), "counter"), typedesc.ErrNameTaken)
}

func TestSetName_Rebind(t *testing.T) {
	freshRegistry(t)
	require.NoError(t, typedesc.SetName(typedesc.Of[int](), "counter"))
	require.NoError(t, typedesc.SetName(typedesc.Of[int](), "tally"))
	assert.Equal(t, "tally", typedesc.Name(typedesc.Of[int]()))
	_, ok := typedesc.Lookup("counter")
	assert.False(t, ok)
	_, ok = typedesc.Lookup("tally")
	assert.True(t, ok)
}

func TestSetName_Degenerate(t *testing.T) {
	freshRegistry(t)
	assert.Error(t, typedesc.SetName(typedesc.OfValue(nil), "nothing"))
	assert.Error(t, typedesc.SetName(typedesc.Of[int](), ""))
}

func TestEntries_Order(t *testing.T) {
	freshRegistry(t)
	typedesc.ID(typedesc.Of[int]())
	typedesc.ID(typedesc.Of[string]())
	typedesc.ID(typedesc.Of[float64]())
	require.NoError(t, typedesc.SetName(typedesc.Of[string](), "text"))

	entries := typedesc.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, uint32(1), entries[0].ID)
	assert.Equal(t, "int", entries[0].Name)
	assert.Equal(t, uint32(2), entries[1].ID)
	assert.Equal(t, "text", entries[1].Name)
	assert.Equal(t, uint32(3), entries[2].ID)
	assert.Equal(t, "float64", entries[2].Name)
}

func TestReset(t *testing.T) {
	freshRegistry(t)
	typedesc.ID(typedesc.Of[int]())
	require.Equal(t, 1, typedesc.Count())
	typedesc.Reset()
	assert.Zero(t, typedesc.Count())
	assert.Empty(t, typedesc.Entries())
	// IDs restart after a reset.
	assert.Equal(t, uint32(1), typedesc.ID(typedesc.Of[string]()))
}
