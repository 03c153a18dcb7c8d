//go:build linux

package linuxinput

import (
	"fmt"

	"clicker/internal/core/autoclicker"

	evdev "github.com/holoplot/go-evdev"
)

const (
	CodeBTNLeft  uint16 = uint16(evdev.BTN_LEFT)
	CodeBTNRight uint16 = uint16(evdev.BTN_RIGHT)
)

func toInputEvent(event autoclicker.Event) (evdev.InputEvent, error) {
	switch event.Type {
	case autoclicker.EventTypeSyn:
		return evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT}, nil
	case autoclicker.EventTypeKey:
		switch event.Code {
		case autoclicker.LeftButtonCode, autoclicker.RightButtonCode:
		default:
			return evdev.InputEvent{}, fmt.Errorf("unsupported button code %#x", event.Code)
		}
		return evdev.InputEvent{
			Type:  evdev.EV_KEY,
			Code:  evdev.EvCode(event.Code),
			Value: event.Value,
		}, nil
	default:
		return evdev.InputEvent{}, fmt.Errorf("unsupported event type %#x", event.Type)
	}
}
