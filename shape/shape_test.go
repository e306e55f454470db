package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oop-concepts/registry"
	"github.com/marcodamonte/oop-concepts/shape"
)

func TestSquare(t *testing.T) {
	s := shape.Square{Side: 6}
	assert.Equal(t, 36.0, s.Area())
	assert.Equal(t, 24.0, s.Perimeter())
	assert.Equal(t, "Square(side=6)", s.String())
}

func TestCircle(t *testing.T) {
	c := shape.Circle{Radius: 1 / math.Pi}
	assert.InDelta(t, 0.3183098861837907, c.Area(), 1e-12)
	assert.InDelta(t, 2.0, c.Perimeter(), 1e-12)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		kind    shape.Kind
		size    float64
		want    shape.Shape
		wantErr error
	}{
		{name: "square", kind: shape.KindSquare, size: 6, want: shape.Square{Side: 6}},
		{name: "circle", kind: shape.KindCircle, size: 2, want: shape.Circle{Radius: 2}},
		{name: "abstract shape", kind: shape.KindShape, size: 1, wantErr: registry.ErrAbstract},
		{name: "unknown kind", kind: "Hexagon", size: 1, wantErr: registry.ErrNotRegistered},
		{name: "negative size", kind: shape.KindSquare, size: -1, wantErr: shape.ErrNegativeSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shape.New(tt.kind, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalArea(t *testing.T) {
	assert.Equal(t, 0.0, shape.TotalArea())
	assert.InDelta(t, 36+math.Pi, shape.TotalArea(shape.Square{Side: 6}, shape.Circle{Radius: 1}), 1e-12)
}
