package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindLookupUnbind(t *testing.T) {
	r := New()

	_, ok := r.Lookup("h1")
	assert.False(t, ok)

	r.Bind("h1", "arena")
	roomID, ok := r.Lookup("h1")
	assert.True(t, ok)
	assert.Equal(t, "arena", roomID)

	r.Unbind("h1")
	_, ok = r.Lookup("h1")
	assert.False(t, ok)
}

func TestRebindReplacesRoom(t *testing.T) {
	r := New()
	r.Bind("h1", "arena")
	r.Bind("h1", "tower")

	roomID, ok := r.Lookup("h1")
	assert.True(t, ok)
	assert.Equal(t, "tower", roomID)
}

func TestUnbindUnknownHandleIsNoop(t *testing.T) {
	r := New()
	r.Bind("h1", "arena")
	r.Unbind("h9")

	roomID, ok := r.Lookup("h1")
	assert.True(t, ok)
	assert.Equal(t, "arena", roomID)
}
