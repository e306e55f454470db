// Package robot is the smallest possible "class": two fields and one method.
package robot

import (
	"fmt"
	"io"
)

type Robot struct {
	Name  string
	Model string
}

func New(name, model string) Robot { return Robot{Name: name, Model: model} }

// Greet writes a one-line introduction to w.
func (r Robot) Greet(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Hello World! I am %s, and my model is %s\n", r.Name, r.Model)
	return err
}
