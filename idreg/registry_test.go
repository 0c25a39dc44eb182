package idreg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdrplan/fdplan/idreg"
)

func TestGetIDIsIdempotent(t *testing.T) {
	r := idreg.New[string]()

	id1 := r.GetID("a")
	id2 := r.GetID("a")
	assert.Equal(t, id1, id2)

	idB := r.GetID("b")
	assert.NotEqual(t, id1, idB)
}

func TestGetIDIsDenseAndOrdered(t *testing.T) {
	r := idreg.New[string]()

	assert.Equal(t, 0, r.GetID("x"))
	assert.Equal(t, 1, r.GetID("y"))
	assert.Equal(t, 0, r.GetID("x"))
	assert.Equal(t, 2, r.Len())
}

func TestGetValueRoundTrips(t *testing.T) {
	r := idreg.New[string]()
	id := r.GetID("hello")

	v, ok := r.GetValue(id)
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestGetValueUnknownID(t *testing.T) {
	r := idreg.New[string]()
	r.GetID("a")

	_, ok := r.GetValue(42)
	assert.False(t, ok)
}

func TestLookupIDDoesNotIntern(t *testing.T) {
	r := idreg.New[string]()
	r.GetID("a")

	_, ok := r.LookupID("never-seen")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestMustGetValuePanicsOnMiss(t *testing.T) {
	r := idreg.New[int]()
	r.GetID(1)

	assert.Panics(t, func() {
		r.MustGetValue(99)
	})
}
