// Package dbconn is a pretend database connection used to show scoped
// cleanup. With opens a connection, hands it to a function and closes it on
// every way out: normal return, error return and panic.
//
// Nothing here talks to a real database; executed queries are only recorded.
package dbconn

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcodamonte/oop-concepts/internal/logging"
)

var (
	ErrClosed     = errors.New("connection is closed")
	ErrEmptyQuery = errors.New("query must not be empty")
)

type Connection struct {
	dsn     string
	session string
	out     io.Writer
	log     *zap.Logger
	queries []string
	closed  bool
}

// Open announces the connection on w and returns it ready for use.
func Open(w io.Writer, dsn string, log *zap.Logger) (*Connection, error) {
	if dsn == "" {
		return nil, errors.New("dbconn: dsn must not be empty")
	}
	c := &Connection{
		dsn:     dsn,
		session: uuid.NewString(),
		out:     w,
	}
	c.log = logging.OrNop(log).With(zap.String("dsn", dsn), zap.String("session", c.session))

	if _, err := fmt.Fprintln(w, "Connecting to DB..."); err != nil {
		return nil, err
	}
	c.log.Debug("connection opened")
	return c, nil
}

// Execute echoes and records query. It fails on a closed connection or a
// blank query.
func (c *Connection) Execute(query string) error {
	if c.closed {
		return fmt.Errorf("execute %q: %w", query, ErrClosed)
	}
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("execute: %w", ErrEmptyQuery)
	}
	if _, err := fmt.Fprintf(c.out, "Executing: %s\n", query); err != nil {
		return err
	}
	c.queries = append(c.queries, query)
	c.log.Debug("query executed", zap.String("query", query))
	return nil
}

// Queries returns the executed queries in order.
func (c *Connection) Queries() []string {
	out := make([]string, len(c.queries))
	copy(out, c.queries)
	return out
}

func (c *Connection) Closed() bool { return c.closed }

// Close releases the connection. Calling it again is a no-op.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.log.Debug("connection closed", zap.Int("queries", len(c.queries)))
	_, err := fmt.Fprintln(c.out, "Closing Connection safely.")
	return err
}

// With runs fn on a fresh connection and always closes it afterwards. A
// close failure is joined with fn's error. A panic in fn still closes the
// connection and then continues unwinding.
func With(w io.Writer, dsn string, log *zap.Logger, fn func(*Connection) error) (err error) {
	c, err := Open(w, dsn, log)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, c.Close())
	}()
	return fn(c)
}
