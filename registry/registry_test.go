package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oop-concepts/registry"
)

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

type spanish struct{}

func (spanish) Greet() string { return "hola" }

func newGreeters(t *testing.T) *registry.Registry[greeter] {
	t.Helper()
	r := registry.New[greeter]("greeter")
	r.Abstract("Greeter")
	require.NoError(t, r.Register("Spanish", func() greeter { return spanish{} }))
	require.NoError(t, r.Register("English", func() greeter { return english{} }))
	return r
}

func TestNew(t *testing.T) {
	r := newGreeters(t)

	g, err := r.New("Spanish")
	require.NoError(t, err)
	assert.Equal(t, "hola", g.Greet())
	assert.True(t, r.Has("English"))
	assert.Equal(t, 2, r.Len())
}

func TestNewAbstract(t *testing.T) {
	r := newGreeters(t)

	g, err := r.New("Greeter")
	assert.Nil(t, g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrAbstract))

	var absErr *registry.AbstractError
	require.True(t, errors.As(err, &absErr))
	assert.Equal(t, "Greeter", absErr.Type)
	assert.Equal(t, "cannot instantiate abstract type: Greeter", err.Error())
}

func TestNewUnknown(t *testing.T) {
	_, err := newGreeters(t).New("Klingon")
	assert.True(t, errors.Is(err, registry.ErrNotRegistered))
	assert.False(t, errors.Is(err, registry.ErrAbstract))
}

func TestRegisterErrors(t *testing.T) {
	r := newGreeters(t)
	ctor := func() greeter { return english{} }

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "empty name", key: "", wantErr: registry.ErrEmptyName},
		{name: "duplicate concrete", key: "English", wantErr: registry.ErrDuplicate},
		{name: "shadows abstract", key: "Greeter", wantErr: registry.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.Register(tt.key, ctor), tt.wantErr)
		})
	}

	assert.Panics(t, func() { r.MustRegister("English", ctor) })
}

func TestNamesAndString(t *testing.T) {
	r := newGreeters(t)

	assert.Equal(t, []string{"English", "Spanish"}, r.Names())
	assert.Equal(t, "{\n    'English': <greeter English>\n    'Spanish': <greeter Spanish>\n}", r.String())
}
