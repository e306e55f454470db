// Package job runs named jobs inside a logged scope.
//
// Three ideas meet here: Job is an interface every job implements, the jobs
// table is an explicit registry filled once, and Logged brackets a run with
// "Job Started." / "Job Finished." on every exit path via defer.
package job

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcodamonte/oop-concepts/internal/logging"
	"github.com/marcodamonte/oop-concepts/registry"
)

// BaseJob is the name of the abstract supertype in the jobs table.
const BaseJob = "BaseJob"

// Job is a unit of work that writes its progress to w.
type Job interface {
	Run(w io.Writer) error
}

// Logged writes "Job Started.", runs fn and then writes "Job Finished.",
// even when fn returns an error or panics. The panic is not swallowed; it
// keeps unwinding after the closing line is written.
func Logged(w io.Writer, log *zap.Logger, name string, fn func() error) (err error) {
	log = logging.OrNop(log).With(
		zap.String("job", name),
		zap.String("run_id", uuid.NewString()),
	)

	if _, werr := fmt.Fprintln(w, "Job Started."); werr != nil {
		return werr
	}
	log.Debug("job started")

	defer func() {
		_, werr := fmt.Fprintln(w, "Job Finished.")
		err = errors.Join(err, werr)
		if r := recover(); r != nil {
			log.Error("job panicked", zap.Any("panic", r))
			panic(r)
		}
		if err != nil {
			log.Error("job failed", zap.Error(err))
			return
		}
		log.Debug("job finished")
	}()

	return fn()
}

// LoggerAware jobs get the runner's logger before they run.
type LoggerAware interface {
	WithLogger(log *zap.Logger) Job
}

// EmailJob is the one concrete job.
type EmailJob struct {
	Log *zap.Logger
}

func (j EmailJob) WithLogger(log *zap.Logger) Job {
	j.Log = log
	return j
}

func (j EmailJob) Run(w io.Writer) error {
	return Logged(w, j.Log, "EmailJob", func() error {
		_, err := fmt.Fprintln(w, "Job is running")
		return err
	})
}

var (
	jobs     *registry.Registry[Job]
	jobsOnce sync.Once
)

// Registry returns the jobs table, built on first use.
func Registry() *registry.Registry[Job] {
	jobsOnce.Do(func() {
		jobs = registry.New[Job]("job")
		jobs.Abstract(BaseJob)
		jobs.MustRegister("EmailJob", func() Job { return EmailJob{} })
	})
	return jobs
}

// Runner looks jobs up by name and runs them.
type Runner struct {
	Out  io.Writer
	Log  *zap.Logger
	Jobs *registry.Registry[Job]
}

// NewRunner returns a runner over the default jobs table.
func NewRunner(out io.Writer, log *zap.Logger) *Runner {
	return &Runner{Out: out, Log: logging.OrNop(log), Jobs: Registry()}
}

// Run builds the job registered under name and runs it. LoggerAware jobs
// get the runner's logger.
func (r *Runner) Run(name string) error {
	j, err := r.Jobs.New(name)
	if err != nil {
		return fmt.Errorf("run job: %w", err)
	}
	if la, ok := j.(LoggerAware); ok {
		j = la.WithLogger(r.Log)
	}
	if err := j.Run(r.Out); err != nil {
		return fmt.Errorf("run job %s: %w", name, err)
	}
	return nil
}
