// Package shape is the interface counterpart of an abstract Shape class.
// Go has no way to instantiate an interface, so the "cannot build the base
// type" rule holds at compile time; New keeps the same rule for lookups by
// name.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/marcodamonte/oop-concepts/registry"
)

var ErrNegativeSize = errors.New("size must not be negative")

// Shape is any closed 2D figure.
type Shape interface {
	Area() float64
	Perimeter() float64
}

var (
	_ Shape = Square{}
	_ Shape = Circle{}
)

type Square struct {
	Side float64
}

func (s Square) Area() float64      { return s.Side * s.Side }
func (s Square) Perimeter() float64 { return 4 * s.Side }
func (s Square) String() string     { return fmt.Sprintf("Square(side=%g)", s.Side) }

type Circle struct {
	Radius float64
}

func (c Circle) Area() float64      { return c.Radius * c.Radius * math.Pi }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }
func (c Circle) String() string     { return fmt.Sprintf("Circle(r=%g)", c.Radius) }

type Kind string

const (
	KindShape  Kind = "Shape"
	KindSquare Kind = "Square"
	KindCircle Kind = "Circle"
)

// New builds a shape by kind; size is the side of a square or the radius of
// a circle.
func New(kind Kind, size float64) (Shape, error) {
	if size < 0 {
		return nil, fmt.Errorf("new %s: %w", kind, ErrNegativeSize)
	}
	switch kind {
	case KindSquare:
		return Square{Side: size}, nil
	case KindCircle:
		return Circle{Radius: size}, nil
	case KindShape:
		return nil, &registry.AbstractError{Type: string(kind)}
	default:
		return nil, fmt.Errorf("shape %q: %w", kind, registry.ErrNotRegistered)
	}
}

// TotalArea sums the area of every shape.
func TotalArea(shapes ...Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
