// Package temperature stores kelvin and exposes celsius through a validated
// accessor: the constructor and the setter share one validation routine, and
// the kelvin field is never reachable directly.
package temperature

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrBelowAbsoluteZero is matched by every *BelowAbsoluteZeroError.
var ErrBelowAbsoluteZero = errors.New("temperature cannot be below absolute zero")

// BelowAbsoluteZeroError carries the rejected celsius value.
type BelowAbsoluteZeroError struct {
	Celsius float64
}

func (e *BelowAbsoluteZeroError) Error() string {
	return fmt.Sprintf("%s: %g°C", ErrBelowAbsoluteZero, e.Celsius)
}

func (e *BelowAbsoluteZeroError) Is(target error) bool { return target == ErrBelowAbsoluteZero }

// ErrNotFinite is returned for NaN and +Inf.
var ErrNotFinite = errors.New("temperature must be a finite number")

// celsiusOffset is 0°C in kelvin.
var celsiusOffset = decimal.RequireFromString("273.15")

// Temperature is kept in exact decimal kelvin so that a value written in
// celsius reads back unchanged (30 → 30, not 29.999999999999996).
type Temperature struct {
	kelvin decimal.Decimal
}

// New returns a temperature of celsius degrees, or a *BelowAbsoluteZeroError.
func New(celsius float64) (*Temperature, error) {
	k, err := toKelvin(celsius)
	if err != nil {
		return nil, err
	}
	return &Temperature{kelvin: k}, nil
}

// Celsius reads the temperature in degrees celsius.
func (t *Temperature) Celsius() float64 {
	return t.kelvin.Sub(celsiusOffset).InexactFloat64()
}

// SetCelsius replaces the temperature. On error the previous value is kept.
func (t *Temperature) SetCelsius(celsius float64) error {
	k, err := toKelvin(celsius)
	if err != nil {
		return err
	}
	t.kelvin = k
	return nil
}

func (t *Temperature) Kelvin() float64 { return t.kelvin.InexactFloat64() }

func (t *Temperature) String() string {
	return t.kelvin.Sub(celsiusOffset).String() + "°C"
}

// toKelvin is the single validation point for every write.
func toKelvin(celsius float64) (decimal.Decimal, error) {
	switch {
	case math.IsInf(celsius, -1):
		return decimal.Decimal{}, &BelowAbsoluteZeroError{Celsius: celsius}
	case math.IsNaN(celsius), math.IsInf(celsius, 1):
		return decimal.Decimal{}, fmt.Errorf("%w: %g", ErrNotFinite, celsius)
	}
	k := decimal.NewFromFloat(celsius).Add(celsiusOffset)
	if k.IsNegative() {
		return decimal.Decimal{}, &BelowAbsoluteZeroError{Celsius: celsius}
	}
	return k, nil
}
