package cron

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Job is a named maintenance task run at a fixed interval.
type Job struct {
	Name        string
	Description string
	Interval    time.Duration
	Fn          func(ctx context.Context) error
}

type jobState struct {
	Job
	mu        sync.Mutex
	running   bool
	lastErr   error
	lastRunAt time.Time
	nextRunAt time.Time
}

// Scheduler runs registered jobs until its context is cancelled.
// A job never overlaps itself; a slow run pushes the next one back.
type Scheduler struct {
	mu   sync.RWMutex
	jobs map[string]*jobState
}

func New() *Scheduler {
	return &Scheduler{jobs: make(map[string]*jobState)}
}

// Register adds a job. Must be called before Start.
func (s *Scheduler) Register(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Name] = &jobState{
		Job:       job,
		nextRunAt: time.Now().Add(job.Interval),
	}
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, js := range s.jobs {
		go s.runLoop(ctx, js)
	}
}

func (s *Scheduler) runLoop(ctx context.Context, js *jobState) {
	for {
		js.mu.Lock()
		wait := time.Until(js.nextRunAt)
		js.mu.Unlock()
		if wait < 0 {
			wait = 0
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			s.execute(ctx, js)
			js.mu.Lock()
			js.nextRunAt = time.Now().Add(js.Interval)
			js.mu.Unlock()
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, js *jobState) {
	js.mu.Lock()
	if js.running {
		js.mu.Unlock()
		return
	}
	js.running = true
	js.mu.Unlock()

	started := time.Now()
	err := runRecovered(ctx, js.Fn)

	js.mu.Lock()
	js.running = false
	js.lastRunAt = started
	js.lastErr = err
	js.mu.Unlock()
}

// runRecovered converts a job panic into an error so one bad run
// cannot take down the scheduler goroutine.
func runRecovered(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return fn(ctx)
}

// LastError returns the error from the job's most recent run, if any.
func (s *Scheduler) LastError(name string) error {
	s.mu.RLock()
	js, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("job %q not found", name)
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.lastErr
}
