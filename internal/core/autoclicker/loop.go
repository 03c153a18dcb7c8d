package autoclicker

import (
	"context"
	"fmt"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateDelaying
	StateClicking
	StateCompleted
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDelaying:
		return "delaying"
	case StateClicking:
		return "clicking"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCancelled || s == StateFailed
}

func (s State) Active() bool {
	return s == StateDelaying || s == StateClicking
}

type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeCancelled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

func (o Outcome) State() State {
	switch o {
	case OutcomeCancelled:
		return StateCancelled
	case OutcomeFailed:
		return StateFailed
	default:
		return StateCompleted
	}
}

type RunResult struct {
	Clicks  int
	Outcome Outcome
	Elapsed time.Duration
}

// Loop is the clicker loop. It is safe to reuse for consecutive runs but
// does not guard against concurrent ones; Session does that.
type Loop struct {
	clicker Clicker
	logger  Logger
}

func NewLoop(clicker Clicker, logger Logger) (*Loop, error) {
	if clicker == nil {
		return nil, fmt.Errorf("clicker is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	return &Loop{clicker: clicker, logger: logger}, nil
}

// Run waits cfg.Delay, then clicks cfg.Button every cfg.Interval until
// cfg.Count clicks were made or ctx is done. Cancellation is reported as
// OutcomeCancelled with a nil error. A failed click ends the run with an
// *InjectionError.
//
// onState, if non-nil, is called on the loop goroutine for each state the
// run enters.
func (l *Loop) Run(ctx context.Context, cfg ClickConfig, onState func(State)) (RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return RunResult{}, err
	}
	notify := func(s State) {
		if onState != nil {
			onState(s)
		}
	}

	start := time.Now()
	result := RunResult{}
	finish := func(outcome Outcome) RunResult {
		result.Outcome = outcome
		result.Elapsed = time.Since(start)
		notify(outcome.State())
		return result
	}

	l.logger.Debug("Run starting",
		"interval", cfg.Interval,
		"count", cfg.Count,
		"button", cfg.Button.String(),
		"delay", cfg.Delay,
	)

	notify(StateDelaying)
	if !sleepWithContext(ctx, cfg.Delay) {
		l.logger.Info("Cancelled during start delay")
		return finish(OutcomeCancelled), nil
	}

	notify(StateClicking)
	for cfg.Unbounded() || result.Clicks < cfg.Count {
		if ctx.Err() != nil {
			l.logger.Info("Cancelled", "clicks", result.Clicks)
			return finish(OutcomeCancelled), nil
		}

		if err := l.clicker.Click(cfg.Button); err != nil {
			l.logger.Error("Click failed", "click", result.Clicks+1, "err", err)
			injErr := &InjectionError{Click: result.Clicks + 1, Button: cfg.Button, Err: err}
			return finish(OutcomeFailed), injErr
		}
		result.Clicks++

		if !cfg.Unbounded() && result.Clicks >= cfg.Count {
			break
		}
		if !sleepWithContext(ctx, cfg.Interval) {
			l.logger.Info("Cancelled", "clicks", result.Clicks)
			return finish(OutcomeCancelled), nil
		}
	}

	l.logger.Info("Completed", "clicks", result.Clicks)
	return finish(OutcomeCompleted), nil
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if duration <= 0 {
		return true
	}
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
