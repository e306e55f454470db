package exercise

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/marcodamonte/oop-concepts/countdown"
	"github.com/marcodamonte/oop-concepts/dbconn"
	"github.com/marcodamonte/oop-concepts/job"
	"github.com/marcodamonte/oop-concepts/light"
	"github.com/marcodamonte/oop-concepts/payment"
	"github.com/marcodamonte/oop-concepts/plugin"
	"github.com/marcodamonte/oop-concepts/record"
	"github.com/marcodamonte/oop-concepts/registry"
	"github.com/marcodamonte/oop-concepts/robot"
	"github.com/marcodamonte/oop-concepts/shape"
	"github.com/marcodamonte/oop-concepts/stack"
	"github.com/marcodamonte/oop-concepts/temperature"
	"github.com/marcodamonte/oop-concepts/version"
)

func demoRobot(w io.Writer, _ Env) error {
	return robot.New("Robbie", "RB-34").Greet(w)
}

func demoLight(w io.Writer, _ Env) error {
	l := light.New(200)
	fmt.Fprintln(w, l)

	l.TurnOn()
	fmt.Fprintln(w, l)

	l.SetBrightness(50)
	fmt.Fprintln(w, l)

	// off, so SetBrightness does nothing
	l.TurnOff()
	l.SetBrightness(150)
	fmt.Fprintln(w, l)
	return nil
}

func demoPayment(w io.Writer, _ Env) error {
	methods := []payment.Method{
		payment.CreditCard{CardNumber: "4111-1111-1111-1111"},
		payment.Crypto{WalletAddress: "0x52908400098527886E0F7030069857D2E4169EE7"},
	}
	if err := payment.ProcessAll(w, 42, methods...); err != nil {
		return err
	}

	if _, err := payment.New(payment.KindMethod, "n/a"); errors.Is(err, registry.ErrAbstract) {
		fmt.Fprintf(w, "got error: %v\n", err)
	}
	return nil
}

func demoStack(w io.Writer, _ Env) error {
	s := stack.New[string]()
	s.Push("Hello")
	s.Push("World!")
	more := stack.New("What", "A", "Wonderfull", "Day", "Innit?")
	s = s.Concat(more)

	fmt.Fprintln(w, s.Len())
	for i := 0; i < 8; i++ {
		fmt.Fprintln(w, s.Pop())
	}
	return nil
}

func demoShape(w io.Writer, _ Env) error {
	if _, err := shape.New(shape.KindShape, 1); err != nil {
		fmt.Fprintf(w, "got error: %v\n", err)
	}

	sq := shape.Square{Side: 6}
	fmt.Fprintln(w, sq.Area(), sq.Perimeter())

	pi := math.Pi
	c := shape.Circle{Radius: 1 / pi}
	fmt.Fprintln(w, decimalPoint(c.Area()), decimalPoint(c.Perimeter()))
	return nil
}

// decimalPoint renders f in shortest form and always keeps a decimal point,
// so 2 prints as "2.0".
func decimalPoint(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func demoConnection(w io.Writer, env Env) error {
	const dsn = "postgres://localhost:5432/demo"

	err := dbconn.With(w, dsn, env.Log, func(c *dbconn.Connection) error {
		return c.Execute("SELECT name FROM users")
	})
	if err != nil {
		return err
	}

	// the body fails, Close still runs
	err = dbconn.With(w, dsn, env.Log, func(c *dbconn.Connection) error {
		return c.Execute("")
	})
	if errors.Is(err, dbconn.ErrEmptyQuery) {
		fmt.Fprintf(w, "got error: %v\n", err)
		return nil
	}
	return err
}

func demoRegistry(w io.Writer, _ Env) error {
	fmt.Fprintln(w, plugin.Registry())
	return nil
}

func demoTemperature(w io.Writer, _ Env) error {
	t, err := temperature.New(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Temperature: %.1f\n", t.Celsius())

	if err := t.SetCelsius(-274.15); err != nil {
		var bz *temperature.BelowAbsoluteZeroError
		if !errors.As(err, &bz) {
			return err
		}
		fmt.Fprintf(w, "got value error: %v\n", err)
		if err := t.SetCelsius(30); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "Temperature: %.1f\n", t.Celsius())
	return nil
}

func demoJobs(w io.Writer, env Env) error {
	runner := job.NewRunner(w, env.Log)
	if err := runner.Run("EmailJob"); err != nil {
		return err
	}
	if err := runner.Run(job.BaseJob); errors.Is(err, registry.ErrAbstract) {
		fmt.Fprintf(w, "got error: %v\n", err)
	}
	return nil
}

func demoConfig(w io.Writer, env Env) error {
	cfg := env.DB
	fmt.Fprintln(w, cfg)

	if err := cfg.Set("db_port", 9000); err != nil {
		var fe *record.ImmutableFieldError
		if !errors.As(err, &fe) {
			return err
		}
		fmt.Fprintf(w, "Got Error: %v\n", err)
	}
	return nil
}

func demoCountdown(w io.Writer, _ Env) error {
	const start = 2
	c := countdown.New(start)
	for i := 0; i < start; i++ {
		fmt.Fprintln(w, c)
		c.Next()
	}
	if _, ok := c.Next(); !ok {
		fmt.Fprintln(w, "Stopped Iteration")
	}
	return nil
}

func demoJSON(w io.Writer, _ Env) error {
	ron := record.NewEmployee("Ron Weasley", 20, record.Replaceable(false))
	draco := record.NewEmployee("Draco Malfoy", 20)

	for _, e := range []record.Employee{ron, draco} {
		b, err := record.JSON(e)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", b)
	}
	return nil
}

func demoVersion(w io.Writer, _ Env) error {
	fmt.Fprintln(w, version.New(1, 2, 0).Greater(version.New(1, 1, 9)))
	fmt.Fprintln(w, version.New(1, 2, 0) == version.New(1, 2, 0))
	return nil
}
