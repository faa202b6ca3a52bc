package registry

import (
	"testing"

	"github.com/madhatterpub/site/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter struct{ name string }

var (
	keyGreeter = Key[*greeter]("test.greeter")
	keyCount   = Key[int]("test.count")
)

func TestRegistry_SetGet(t *testing.T) {
	cfg := &config.Config{Addr: ":1"}
	r := New(cfg)
	assert.Same(t, cfg, r.Config())

	_, ok := Get(r, keyGreeter)
	assert.False(t, ok)

	g := &greeter{name: "alice"}
	Set(r, keyGreeter, g)

	got, ok := Get(r, keyGreeter)
	require.True(t, ok)
	assert.Same(t, g, got)
	assert.Same(t, g, MustGet(r, keyGreeter))
}

func TestRegistry_TypeMismatch(t *testing.T) {
	r := New(nil)
	Set(r, keyCount, 3)

	// Same string id, different type parameter.
	_, ok := Get(r, Key[string]("test.count"))
	assert.False(t, ok)
}

func TestRegistry_Provide(t *testing.T) {
	r := New(nil)
	require.NoError(t, Provide(r, keyCount, 1))

	err := Provide(r, keyCount, 2)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Equal(t, 1, MustGet(r, keyCount))
}

func TestMustGet_PanicsWhenMissing(t *testing.T) {
	r := New(nil)
	assert.PanicsWithValue(t, "service not found for key: test.greeter", func() {
		MustGet(r, keyGreeter)
	})
}
