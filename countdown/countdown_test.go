package countdown

import (
	"slices"
	"testing"
)

func TestNextTrace(t *testing.T) {
	c := New(2)

	for _, want := range []string{"Remaining: 2", "Remaining: 1"} {
		if got := c.String(); got != want {
			t.Errorf("String() = %q; want %q", got, want)
		}
		if _, ok := c.Next(); !ok {
			t.Fatal("Next() reported exhaustion too early")
		}
	}

	if v, ok := c.Next(); ok {
		t.Errorf("third Next() = (%d, true); want exhausted", v)
	}
	if got := c.String(); got != "Remaining: 0" {
		t.Errorf("String() after exhaustion = %q", got)
	}
}

func TestNextValues(t *testing.T) {
	c := New(3)

	var got []int
	for {
		v, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}

	if want := []int{3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("values = %v; want %v", got, want)
	}
}

func TestExhaustedStaysExhausted(t *testing.T) {
	c := New(0)
	for i := 0; i < 3; i++ {
		if _, ok := c.Next(); ok {
			t.Fatalf("Next() on zero countdown returned ok on call %d", i+1)
		}
	}
}

func TestNegativeStartIsExhausted(t *testing.T) {
	c := New(-5)
	if _, ok := c.Next(); ok {
		t.Error("Next() on negative start returned ok")
	}
	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d; want 0", got)
	}
}

func TestAll(t *testing.T) {
	if got := slices.Collect(New(4).All()); !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("All() = %v", got)
	}
}

func TestAllIsNotRestartable(t *testing.T) {
	c := New(4)
	for v := range c.All() {
		if v == 3 {
			break
		}
	}

	// 4 and 3 were consumed by the loop above.
	if got := slices.Collect(c.All()); !slices.Equal(got, []int{2, 1}) {
		t.Errorf("second All() = %v; want [2 1]", got)
	}
	if got := slices.Collect(c.All()); len(got) != 0 {
		t.Errorf("third All() = %v; want empty", got)
	}
}
