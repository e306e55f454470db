// Package record holds small immutable value types and a serializer that
// works on any of them through composition instead of a mixin base class.
//
// Immutability comes from unexported fields with getters only. Set exists
// so callers that address fields by name get the same refusal a frozen
// record would give.
package record

import (
	"errors"
	"fmt"
)

// ErrImmutableField is matched by every *ImmutableFieldError.
var ErrImmutableField = errors.New("record is immutable")

type ImmutableFieldError struct {
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("cannot assign to field '%s'", e.Field)
}

func (e *ImmutableFieldError) Is(target error) bool { return target == ErrImmutableField }

// ── Config ───────────────────────────────────────────────────────────────────

// Config is a database connection setting. Values are comparable with ==.
type Config struct {
	host  string
	port  int
	debug bool
}

type ConfigOption func(*Config)

// Debug sets debug_mode, which defaults to false.
func Debug(on bool) ConfigOption { return func(c *Config) { c.debug = on } }

func NewConfig(host string, port int, opts ...ConfigOption) Config {
	c := Config{host: host, port: port}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) Host() string { return c.host }
func (c Config) Port() int    { return c.port }
func (c Config) Debug() bool  { return c.debug }

// Set always fails: a Config cannot change after construction.
func (c Config) Set(field string, value any) error {
	return &ImmutableFieldError{Field: field}
}

// WithPort returns a copy of c with a different port. c is not modified.
func (c Config) WithPort(port int) Config {
	c.port = port
	return c
}

func (c Config) Fields() []Field {
	return []Field{
		{Name: "db_host", Value: c.host},
		{Name: "db_port", Value: c.port},
		{Name: "debug_mode", Value: c.debug},
	}
}

func (c Config) String() string { return render("Config", c.Fields()) }

// ── Employee ─────────────────────────────────────────────────────────────────

type Employee struct {
	name        string
	age         int
	replaceable bool
}

type EmployeeOption func(*Employee)

// Replaceable sets is_replaceable_by_ai, which defaults to true.
func Replaceable(yes bool) EmployeeOption { return func(e *Employee) { e.replaceable = yes } }

func NewEmployee(name string, age int, opts ...EmployeeOption) Employee {
	e := Employee{name: name, age: age, replaceable: true}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e Employee) Name() string      { return e.name }
func (e Employee) Age() int          { return e.age }
func (e Employee) Replaceable() bool { return e.replaceable }

func (e Employee) Set(field string, value any) error {
	return &ImmutableFieldError{Field: field}
}

func (e Employee) Fields() []Field {
	return []Field{
		{Name: "name", Value: e.name},
		{Name: "age", Value: e.age},
		{Name: "is_replaceable_by_ai", Value: e.replaceable},
	}
}

func (e Employee) String() string { return render("Employee", e.Fields()) }
