package console

import (
	"context"
	"errors"
	"sync/atomic"

	"pump_console/internal/models"
)

// ErrLoopStopped is returned when work is submitted after the loop exited.
var ErrLoopStopped = errors.New("console loop stopped")

const defaultQueueSize = 64

// Job states. A queued job is either claimed by the loop or abandoned by
// its submitter, never both.
const (
	jobPending int32 = iota
	jobClaimed
	jobAbandoned
)

type job struct {
	fn    func(*Console)
	done  chan struct{}
	state atomic.Int32
}

func (j *job) claim() bool   { return j.state.CompareAndSwap(jobPending, jobClaimed) }
func (j *job) abandon() bool { return j.state.CompareAndSwap(jobPending, jobAbandoned) }

// Loop is the single event queue of a session. Operator requests and
// background feeds submit closures; the loop runs them one at a time so no
// two transitions interleave.
type Loop struct {
	console *Console
	jobs    chan *job
	stopped chan struct{}
}

// NewLoop wraps c. A non-positive queueSize uses the default.
func NewLoop(c *Console, queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Loop{
		console: c,
		jobs:    make(chan *job, queueSize),
		stopped: make(chan struct{}),
	}
}

// Run processes submitted work until ctx is canceled.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-l.jobs:
			if !j.claim() {
				continue
			}
			j.fn(l.console)
			close(j.done)
		}
	}
}

// Do runs fn on the loop and waits for it to finish.
// An error means fn did not run and never will; once the loop has started
// fn, Do waits for it and returns nil even if ctx ends meanwhile.
func (l *Loop) Do(ctx context.Context, fn func(*Console)) error {
	j := &job{fn: fn, done: make(chan struct{})}
	select {
	case l.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		return ErrLoopStopped
	}
	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		if j.abandon() {
			return ctx.Err()
		}
	case <-l.stopped:
		if j.abandon() {
			return ErrLoopStopped
		}
	}
	// claimed before we gave up: the loop finishes it before exiting
	<-j.done
	return nil
}

// Snapshot captures the session state through the loop.
func (l *Loop) Snapshot(ctx context.Context) (models.ConsoleState, error) {
	var st models.ConsoleState
	err := l.Do(ctx, func(c *Console) { st = c.Snapshot() })
	return st, err
}
