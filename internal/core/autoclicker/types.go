package autoclicker

import (
	"fmt"
	"strings"
)

const (
	EventTypeSyn uint16 = 0x00
	EventTypeKey uint16 = 0x01

	SynReportCode   uint16 = 0
	LeftButtonCode  uint16 = 0x110
	RightButtonCode uint16 = 0x111
)

type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

type Injector interface {
	WriteEvents(events ...Event) error
	Close() error
}

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Clicker performs one synthetic press-and-release of a mouse button.
type Clicker interface {
	Click(button Button) error
}

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
)

func ParseButton(value string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	default:
		return 0, fmt.Errorf("%w: button %q (expected left|right)", ErrInvalidConfig, value)
	}
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", uint8(b))
	}
}

// Code returns the evdev key code used for b in injected events.
func (b Button) Code() uint16 {
	if b == ButtonRight {
		return RightButtonCode
	}
	return LeftButtonCode
}

func (b Button) valid() bool {
	return b == ButtonLeft || b == ButtonRight
}
