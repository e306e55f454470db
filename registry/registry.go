// Package registry provides an explicit name → constructor table.
//
// Nothing registers itself when a type is declared. Each table is filled by
// one initialization routine that lists every variant, so the mapping is
// plain data that can be inspected, printed and tested.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrAbstract is matched by every *AbstractError.
	ErrAbstract      = errors.New("cannot instantiate abstract type")
	ErrNotRegistered = errors.New("not registered")
	ErrDuplicate     = errors.New("already registered")
	ErrEmptyName     = errors.New("name must not be empty")
)

// AbstractError reports an attempt to build the supertype of a family
// (Shape, PaymentMethod, BaseJob) instead of one of its variants.
type AbstractError struct {
	Type string
}

func (e *AbstractError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAbstract, e.Type)
}

// Is lets errors.Is(err, ErrAbstract) match any AbstractError.
func (e *AbstractError) Is(target error) bool { return target == ErrAbstract }

// Constructor builds a fresh instance of one variant.
type Constructor[T any] func() T

// Registry maps names to constructors for one family of types. It is not
// safe for concurrent writes; fill it once, then only read it.
type Registry[T any] struct {
	kind     string
	ctors    map[string]Constructor[T]
	abstract map[string]bool
}

// New returns an empty registry. kind names the family in error messages.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:     kind,
		ctors:    make(map[string]Constructor[T]),
		abstract: make(map[string]bool),
	}
}

// Register adds a concrete variant under name.
func (r *Registry[T]) Register(name string, ctor Constructor[T]) error {
	if name == "" {
		return fmt.Errorf("register %s: %w", r.kind, ErrEmptyName)
	}
	if _, ok := r.ctors[name]; ok || r.abstract[name] {
		return fmt.Errorf("register %s %q: %w", r.kind, name, ErrDuplicate)
	}
	r.ctors[name] = ctor
	return nil
}

// MustRegister is Register for init routines, where a failure is a
// programming mistake.
func (r *Registry[T]) MustRegister(name string, ctor Constructor[T]) {
	if err := r.Register(name, ctor); err != nil {
		panic(err)
	}
}

// Abstract declares name as the family's supertype. Looking it up with New
// fails with an *AbstractError.
func (r *Registry[T]) Abstract(name string) {
	r.abstract[name] = true
}

// New builds the variant registered under name.
func (r *Registry[T]) New(name string) (T, error) {
	var zero T
	if r.abstract[name] {
		return zero, &AbstractError{Type: name}
	}
	ctor, ok := r.ctors[name]
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", r.kind, name, ErrNotRegistered)
	}
	return ctor(), nil
}

// Has reports whether name is a registered concrete variant.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.ctors[name]
	return ok
}

// Names returns the concrete variant names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry[T]) Len() int { return len(r.ctors) }

// String lists the table, one "'Name': <kind Name>" entry per line.
func (r *Registry[T]) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, name := range r.Names() {
		fmt.Fprintf(&b, "    '%s': <%s %s>\n", name, r.kind, name)
	}
	b.WriteString("}")
	return b.String()
}
