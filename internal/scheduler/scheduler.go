// Package scheduler triggers ingestion on a cron schedule inside the api
// process.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var ErrAlreadyRunning = errors.New("ingestion already running")

type Runner interface {
	Run(ctx context.Context) error
}

type RunnerFunc func(ctx context.Context) error

func (f RunnerFunc) Run(ctx context.Context) error { return f(ctx) }

type RunState struct {
	Running         bool      `json:"running"`
	StartedAt       time.Time `json:"startedAt"`
	LastCompletedAt time.Time `json:"lastCompletedAt"`
	LastDuration    string    `json:"lastDuration"`
	LastError       string    `json:"lastError"`
	Runs            int       `json:"runs"`
}

type Scheduler struct {
	spec   string
	runner Runner
	cron   *cron.Cron

	mu      sync.Mutex
	running bool
	state   RunState
}

// New validates a standard five-field cron spec (descriptors such as
// "@hourly" are accepted too).
func New(spec string, runner Runner) (*Scheduler, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	logger := slogLogger{}
	s := &Scheduler{
		spec:   spec,
		runner: runner,
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
	return s, nil
}

// Start schedules the runner until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.RunNow(ctx); err != nil {
			slog.Error("Scheduled ingestion failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule ingestion: %w", err)
	}

	s.cron.Start()
	slog.Info("Ingestion scheduler started", "spec", s.spec)

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		slog.Info("Ingestion scheduler stopped")
	}()
	return nil
}

// RunNow runs the job once unless a run is already in flight.
func (s *Scheduler) RunNow(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.state.Running = true
	s.state.StartedAt = time.Now()
	s.mu.Unlock()

	start := time.Now()
	err := s.runner.Run(ctx)

	s.mu.Lock()
	s.running = false
	s.state.Running = false
	s.state.Runs++
	s.state.LastCompletedAt = time.Now()
	s.state.LastDuration = time.Since(start).Round(time.Millisecond).String()
	if err != nil {
		s.state.LastError = err.Error()
	} else {
		s.state.LastError = ""
	}
	s.mu.Unlock()

	return err
}

func (s *Scheduler) Snapshot() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
