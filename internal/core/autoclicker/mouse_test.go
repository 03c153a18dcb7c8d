package autoclicker

import (
	"errors"
	"testing"
)

func TestMouseClickWritesPressAndRelease(t *testing.T) {
	injector := &recordingInjector{}
	mouse, err := NewMouse(injector, 0, noopLogger{})
	if err != nil {
		t.Fatalf("NewMouse() error = %v", err)
	}

	if err := mouse.Click(ButtonRight); err != nil {
		t.Fatalf("Click() error = %v", err)
	}

	want := []Event{
		{Type: EventTypeKey, Code: RightButtonCode, Value: 1},
		{Type: EventTypeSyn, Code: SynReportCode, Value: 0},
		{Type: EventTypeKey, Code: RightButtonCode, Value: 0},
		{Type: EventTypeSyn, Code: SynReportCode, Value: 0},
	}
	got := injector.snapshot()
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if mouse.Held(ButtonRight) {
		t.Fatalf("expected right button to be released after click")
	}
}

func TestMouseCloseReleasesButtonAfterFailedRelease(t *testing.T) {
	calls := 0
	injector := &recordingInjector{failOn: func([]Event) error {
		calls++
		if calls == 2 {
			return errInjectorDown
		}
		return nil
	}}
	mouse, err := NewMouse(injector, 0, noopLogger{})
	if err != nil {
		t.Fatalf("NewMouse() error = %v", err)
	}

	if err := mouse.Click(ButtonLeft); !errors.Is(err, errInjectorDown) {
		t.Fatalf("Click() error = %v, want %v", err, errInjectorDown)
	}
	if !mouse.Held(ButtonLeft) {
		t.Fatalf("expected left button to be tracked as held")
	}

	if err := mouse.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !injector.isClosed() {
		t.Fatalf("expected injector to be closed")
	}
	if mouse.Held(ButtonLeft) {
		t.Fatalf("expected left button released on close")
	}

	events := injector.snapshot()
	last := events[len(events)-2]
	if last != (Event{Type: EventTypeKey, Code: LeftButtonCode, Value: 0}) {
		t.Fatalf("unexpected release event: %#v", last)
	}
}

func TestMouseFailedPressIsTrackedAsHeld(t *testing.T) {
	injector := &recordingInjector{failOn: func([]Event) error { return errInjectorDown }}
	mouse, err := NewMouse(injector, 0, noopLogger{})
	if err != nil {
		t.Fatalf("NewMouse() error = %v", err)
	}

	if err := mouse.Click(ButtonLeft); !errors.Is(err, errInjectorDown) {
		t.Fatalf("Click() error = %v", err)
	}
	if !mouse.Held(ButtonLeft) {
		t.Fatalf("expected a failed press to be tracked as held")
	}
}

func TestMouseClickAfterCloseFails(t *testing.T) {
	mouse, err := NewMouse(&recordingInjector{}, 0, noopLogger{})
	if err != nil {
		t.Fatalf("NewMouse() error = %v", err)
	}
	if err := mouse.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := mouse.Click(ButtonLeft); err == nil {
		t.Fatalf("expected error clicking a closed mouse")
	}
	if err := mouse.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}

func TestNewMouseRejectsNegativeClickDown(t *testing.T) {
	if _, err := NewMouse(&recordingInjector{}, -1, noopLogger{}); err == nil {
		t.Fatalf("expected error for negative click down")
	}
}
