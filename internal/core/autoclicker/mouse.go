package autoclicker

import (
	"fmt"
	"sync"
	"time"
)

// Mouse injects synthetic clicks through an Injector and keeps track of
// buttons it has pressed so that Close never leaves one held down.
type Mouse struct {
	injector  Injector
	logger    Logger
	clickDown time.Duration

	mu       sync.Mutex
	held     map[uint16]bool
	closed   bool
	closeErr error
}

func NewMouse(injector Injector, clickDown time.Duration, logger Logger) (*Mouse, error) {
	if injector == nil {
		return nil, fmt.Errorf("injector is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if clickDown < 0 {
		return nil, fmt.Errorf("click down duration must be >= 0")
	}
	return &Mouse{
		injector:  injector,
		logger:    logger,
		clickDown: clickDown,
		held:      make(map[uint16]bool),
	}, nil
}

// Click presses and releases button. If the press was written but the
// release failed, the button stays tracked as held and is released on Close.
func (m *Mouse) Click(button Button) error {
	if !button.valid() {
		return fmt.Errorf("unknown button %s", button)
	}
	code := button.Code()

	if err := m.writeEvents(
		Event{Type: EventTypeKey, Code: code, Value: 1},
		Event{Type: EventTypeSyn, Code: SynReportCode, Value: 0},
	); err != nil {
		return err
	}

	if m.clickDown > 0 {
		time.Sleep(m.clickDown)
	}

	return m.writeEvents(
		Event{Type: EventTypeKey, Code: code, Value: 0},
		Event{Type: EventTypeSyn, Code: SynReportCode, Value: 0},
	)
}

func (m *Mouse) Held(button Button) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held[button.Code()]
}

func (m *Mouse) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return m.closeErr
	}
	m.closed = true

	for code, down := range m.held {
		if !down {
			continue
		}
		if err := m.injector.WriteEvents(
			Event{Type: EventTypeKey, Code: code, Value: 0},
			Event{Type: EventTypeSyn, Code: SynReportCode, Value: 0},
		); err != nil {
			m.logger.Warn("Failed to release held button", "code", code, "err", err)
			continue
		}
		m.held[code] = false
	}

	m.closeErr = m.injector.Close()
	return m.closeErr
}

func (m *Mouse) writeEvents(events ...Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("mouse is closed")
	}

	if err := m.injector.WriteEvents(events...); err != nil {
		// A partial write may have pressed the button; releasing an
		// unpressed button is harmless.
		for _, event := range events {
			if event.Type == EventTypeKey && event.Value != 0 {
				m.held[event.Code] = true
			}
		}
		return err
	}
	for _, event := range events {
		if event.Type != EventTypeKey {
			continue
		}
		m.held[event.Code] = event.Value != 0
	}
	return nil
}
