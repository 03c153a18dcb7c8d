package autoclicker

import (
	"errors"
	"sync"
	"time"
)

type recordingInjector struct {
	mu     sync.Mutex
	events []Event
	closed bool
	failOn func(events []Event) error
}

func (r *recordingInjector) WriteEvents(events ...Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn != nil {
		if err := r.failOn(events); err != nil {
			return err
		}
	}
	r.events = append(r.events, events...)
	return nil
}

func (r *recordingInjector) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *recordingInjector) snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingInjector) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

type recordingClicker struct {
	mu     sync.Mutex
	clicks []time.Time
	button []Button
	err    error
	failAt int
}

func (r *recordingClicker) Click(button Button) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil && len(r.clicks)+1 >= r.failAt {
		return r.err
	}
	r.clicks = append(r.clicks, time.Now())
	r.button = append(r.button, button)
	return nil
}

func (r *recordingClicker) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clicks)
}

func (r *recordingClicker) times() []time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Time, len(r.clicks))
	copy(out, r.clicks)
	return out
}

func (r *recordingClicker) buttons() []Button {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Button, len(r.button))
	copy(out, r.button)
	return out
}

var errInjectorDown = errors.New("injector down")

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
