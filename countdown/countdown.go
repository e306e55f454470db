// Package countdown is a stateful iterator: every Next call either yields the
// next value or reports exhaustion, and exhaustion is a separate boolean so it
// can never be confused with a yielded value.
package countdown

import (
	"fmt"
	"iter"
)

// Countdown yields start, start-1, …, 1 and is then exhausted. It cannot be
// restarted; build a new one instead.
type Countdown struct {
	value int
}

func New(start int) *Countdown { return &Countdown{value: start} }

// Next returns the current value and moves the cursor down by one. Once the
// cursor reaches zero (or started below it) Next returns (0, false) forever.
func (c *Countdown) Next() (int, bool) {
	if c.value <= 0 {
		return 0, false
	}
	v := c.value
	c.value--
	return v, true
}

// Remaining is the cursor value: how many elements are still to come.
func (c *Countdown) Remaining() int {
	if c.value < 0 {
		return 0
	}
	return c.value
}

func (c *Countdown) String() string { return fmt.Sprintf("Remaining: %d", c.Remaining()) }

// All drains the countdown as a range-over-func sequence:
//
//	for n := range countdown.New(3).All() { … } // 3, 2, 1
//
// It shares the cursor with Next, so breaking out early leaves the rest for
// a later Next or All.
func (c *Countdown) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
