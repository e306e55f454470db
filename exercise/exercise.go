// Package exercise is the table of runnable demos. Each demo writes the
// console output its exercise is expected to produce; the CLI prints a
// section header in front of it.
package exercise

import (
	"io"
	"slices"

	"go.uber.org/zap"

	"github.com/marcodamonte/oop-concepts/record"
)

// Env carries what a demo may take from the outside: a logger and the
// database settings loaded by the CLI.
type Env struct {
	Log *zap.Logger
	DB  record.Config
}

// DefaultEnv is what the demos use when no configuration is loaded.
func DefaultEnv() Env {
	return Env{
		Log: zap.NewNop(),
		DB:  record.NewConfig("arcturus", 255),
	}
}

type Exercise struct {
	Name  string
	Title string
	Run   func(w io.Writer, env Env) error
}

// exercises is listed in teaching order.
var exercises = []Exercise{
	{Name: "robot", Title: "First class: fields and a method", Run: demoRobot},
	{Name: "light", Title: "Smart light: state and behavior together", Run: demoLight},
	{Name: "payment", Title: "Payment processor: interface instead of a base class", Run: demoPayment},
	{Name: "stack", Title: "Stack[T]: Len, Concat and a Pop that returns Option[T]", Run: demoStack},
	{Name: "shape", Title: "Shape: the abstract type cannot be built", Run: demoShape},
	{Name: "dbconn", Title: "Scoped cleanup: defer closes the connection on every path", Run: demoConnection},
	{Name: "registry", Title: "Registry: an explicit table instead of self-registration", Run: demoRegistry},
	{Name: "temperature", Title: "Temperature: a validated accessor", Run: demoTemperature},
	{Name: "jobs", Title: "Job runner: interface, registry and logged scope", Run: demoJobs},
	{Name: "config", Title: "Immutable configuration", Run: demoConfig},
	{Name: "countdown", Title: "Countdown: an iterator", Run: demoCountdown},
	{Name: "json", Title: "Serializing records by composition", Run: demoJSON},
	{Name: "version", Title: "Version: ordering from one Compare", Run: demoVersion},
}

// All returns every exercise in teaching order.
func All() []Exercise { return slices.Clone(exercises) }

// Lookup finds an exercise by name.
func Lookup(name string) (Exercise, bool) {
	i := slices.IndexFunc(exercises, func(e Exercise) bool { return e.Name == name })
	if i < 0 {
		return Exercise{}, false
	}
	return exercises[i], true
}

// Names returns every exercise name in teaching order.
func Names() []string {
	names := make([]string, len(exercises))
	for i, e := range exercises {
		names[i] = e.Name
	}
	return names
}
