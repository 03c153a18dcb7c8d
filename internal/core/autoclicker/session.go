package autoclicker

import (
	"context"
	"fmt"
	"sync"
)

// StateChange is delivered to a Session observer on every transition.
type StateChange struct {
	State  State
	Result RunResult
	// Err is set only when State is StateFailed.
	Err error
}

// Session runs at most one Loop at a time on behalf of an interactive
// front-end. It owns the cancellation of the active run; the loop only
// observes it.
type Session struct {
	loop     *Loop
	logger   Logger
	observer func(StateChange)

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
	result RunResult
	err    error
}

// NewSession returns an idle session. observer may be nil; it is called
// from the loop goroutine and must not block.
func NewSession(loop *Loop, logger Logger, observer func(StateChange)) (*Session, error) {
	if loop == nil {
		return nil, fmt.Errorf("loop is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	return &Session{
		loop:     loop,
		logger:   logger,
		observer: observer,
		state:    StateIdle,
	}, nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Confirm parses the form and starts a run with the result. Nothing is
// started when the form is invalid.
func (s *Session) Confirm(in FormInput) (ClickConfig, error) {
	cfg, err := ParseForm(in)
	if err != nil {
		return ClickConfig{}, err
	}
	if err := s.Start(cfg); err != nil {
		return ClickConfig{}, err
	}
	return cfg, nil
}

// Start launches a run of cfg in its own goroutine.
func (s *Session) Start(cfg ClickConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.state.Active() {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.result = RunResult{}
	s.err = nil
	s.state = StateDelaying
	s.mu.Unlock()

	s.logger.Info("Session started", "button", cfg.Button.String(), "count", cfg.Count, "interval", cfg.Interval)

	go func() {
		defer close(done)
		defer cancel()

		result, err := s.loop.Run(ctx, cfg, func(state State) {
			if state.Terminal() {
				return
			}
			s.transition(StateChange{State: state})
		})
		change := StateChange{State: result.Outcome.State(), Result: result, Err: err}
		if err != nil && result.Outcome != OutcomeFailed {
			change.State = StateFailed
		}
		s.mu.Lock()
		s.result = result
		s.err = err
		s.mu.Unlock()
		s.transition(change)
	}()
	return nil
}

// Stop requests cancellation of the active run and reports whether one was
// active. It does not wait for the loop to exit.
func (s *Session) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Active() || s.cancel == nil {
		return false
	}
	s.cancel()
	return true
}

// Wait blocks until the most recently started run has finished and returns
// its result. It returns immediately when no run was started.
func (s *Session) Wait() (RunResult, error) {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return RunResult{}, nil
	}
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.err
}

func (s *Session) transition(change StateChange) {
	s.mu.Lock()
	s.state = change.State
	s.mu.Unlock()

	s.logger.Debug("Session state", "state", change.State.String())
	if s.observer != nil {
		s.observer(change)
	}
}
