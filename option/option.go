// Package option provides Option[T], a two-variant container that is either
// Present with a value or Absent.
//
// Absence is a normal outcome, not a fault: a lookup or a pop that finds
// nothing returns None instead of an error. Only Unwrap on an Absent value
// reports ErrEmptyValue.
package option

import (
	"errors"
	"fmt"
)

// ErrEmptyValue is returned (or panicked with, for MustUnwrap) when the value
// of an Absent option is requested.
var ErrEmptyValue = errors.New("option: unwrap of absent value")

// Option holds a value of type T or nothing. The zero value is Absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps v as a Present option.
func Some[T any](v T) Option[T] { return Option[T]{value: v, present: true} }

// None returns an Absent option.
func None[T any]() Option[T] { return Option[T]{} }

// IsPresent reports whether the option holds a value.
func (o Option[T]) IsPresent() bool { return o.present }

// IsAbsent is the negation of IsPresent.
func (o Option[T]) IsAbsent() bool { return !o.IsPresent() }

// Unwrap returns the held value, or ErrEmptyValue when the option is Absent.
// Check IsPresent first or use UnwrapOr when absence has a sensible default.
func (o Option[T]) Unwrap() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrEmptyValue
	}
	return o.value, nil
}

// MustUnwrap returns the held value and panics when the option is Absent.
// Useful in tests or when the caller already guarantees presence.
func (o Option[T]) MustUnwrap() T {
	v, err := o.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}

// Get mirrors the "(value, ok)" idiom of map lookups and type assertions.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// UnwrapOr returns the held value, or def when Absent.
func (o Option[T]) UnwrapOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// String renders "Present(<value>)" or "Absent".
func (o Option[T]) String() string {
	if !o.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", o.value)
}

// Map applies f to a present value. Absent stays Absent.
//
// It is a free function because methods cannot introduce new type
// parameters: Option[T].Map[U] does not compile.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}
