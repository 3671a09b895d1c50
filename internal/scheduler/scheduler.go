// Package scheduler owns the compilation queue above the engine adapter. It
// debounces rapid document changes, serializes engine access, and settles
// each compile request independently.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonathan/resume-studio/internal/engine"
	"github.com/jonathan/resume-studio/internal/latex"
	"github.com/jonathan/resume-studio/internal/types"
)

// DefaultDebounce is the window within which rapid compile requests collapse
// into a single engine invocation using the latest document state
const DefaultDebounce = 600 * time.Millisecond

// ErrClosed is returned for requests made after Close
var ErrClosed = errors.New("scheduler closed")

const mainFileName = "main.tex"

// job is one unit of queued compilation work. Callers sharing a job settle
// together; a job is owned by the queue until its done channel closes.
type job struct {
	source string
	done   chan struct{}
	pdf    []byte
	err    error
}

func newJob(source string) *job {
	return &job{source: source, done: make(chan struct{})}
}

// Scheduler drives the engine with single-flight discipline: at most one
// compilation in flight, remaining requests queued FIFO.
type Scheduler struct {
	eng      engine.Engine
	debounce time.Duration

	mu      sync.Mutex
	pending *job // accumulating waiters during the open debounce window
	timer   *time.Timer
	queue   []*job
	closed  bool
	wake    chan struct{}
}

// New creates a scheduler over the given engine. A negative debounce
// disables debouncing (requests enqueue immediately).
func New(eng engine.Engine, debounce time.Duration) *Scheduler {
	return &Scheduler{
		eng:      eng,
		debounce: debounce,
		wake:     make(chan struct{}, 1),
	}
}

// RequestCompile compiles the document snapshot to LaTeX and schedules an
// engine run, blocking until the run this request triggered settles. Bursts
// of calls within the debounce window share a single run built from the
// latest state at the time the window elapses; intermediate states are never
// individually compiled.
func (s *Scheduler) RequestCompile(ctx context.Context, doc *types.Document, sections []types.Section) ([]byte, error) {
	source := latex.Compile(doc, sections)
	return s.requestSource(ctx, source)
}

func (s *Scheduler) requestSource(ctx context.Context, source string) ([]byte, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}

	var j *job
	if s.debounce <= 0 {
		j = newJob(source)
		s.enqueueLocked(j)
	} else if s.pending != nil {
		// Window already open: adopt the latest state and extend the window
		s.pending.source = source
		s.timer.Reset(s.debounce)
		j = s.pending
	} else {
		j = newJob(source)
		s.pending = j
		s.timer = time.AfterFunc(s.debounce, s.flush)
	}
	s.mu.Unlock()

	select {
	case <-j.done:
		return j.pdf, j.err
	case <-ctx.Done():
		// The run continues as harmless wasted work; only this caller leaves
		return nil, ctx.Err()
	}
}

// flush moves the debounced job onto the queue when its window elapses
func (s *Scheduler) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	j := s.pending
	s.pending = nil
	if j == nil {
		return
	}
	if s.closed {
		j.err = ErrClosed
		close(j.done)
		return
	}
	s.enqueueLocked(j)
}

// enqueueLocked appends a job, collapsing it into the queue tail when that
// job has not started and carries identical source. Callers still settle
// independently — the collapsed job forwards the tail's outcome.
func (s *Scheduler) enqueueLocked(j *job) {
	if n := len(s.queue); n > 0 && s.queue[n-1].source == j.source {
		tail := s.queue[n-1]
		go func() {
			<-tail.done
			j.pdf, j.err = tail.pdf, tail.err
			close(j.done)
		}()
		return
	}

	s.queue = append(s.queue, j)
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run is the single consumer loop. It owns the engine exclusively: jobs are
// dequeued in arrival order and run one at a time, and a failed run settles
// only its own job — the queue keeps draining.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.eng.Init(ctx); err != nil {
		return err
	}

	for {
		s.mu.Lock()
		for len(s.queue) == 0 {
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return nil
			}
			select {
			case <-ctx.Done():
				s.failAll(ctx.Err())
				return ctx.Err()
			case <-s.wake:
			}
			s.mu.Lock()
		}
		j := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		j.pdf, j.err = s.compileOne(ctx, j.source)
		close(j.done)
	}
}

// compileOne performs a single engine invocation
func (s *Scheduler) compileOne(ctx context.Context, source string) ([]byte, error) {
	s.eng.WriteFile(mainFileName, source)
	s.eng.SetMainFile(mainFileName)

	result, err := s.eng.Compile(ctx)
	if err != nil {
		return nil, err
	}
	return result.PDF, nil
}

// Close stops accepting requests and lets Run drain the remaining queue
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	if pending != nil {
		pending.err = ErrClosed
		close(pending.done)
	}

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// failAll settles every queued job with err after the consumer stops
func (s *Scheduler) failAll(err error) {
	s.mu.Lock()
	queue := s.queue
	s.queue = nil
	s.mu.Unlock()

	for _, j := range queue {
		j.err = err
		close(j.done)
	}
}
