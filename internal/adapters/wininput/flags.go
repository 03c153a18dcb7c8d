package wininput

import (
	"fmt"

	"clicker/internal/core/autoclicker"
)

const (
	mouseeventfLeftDown  = 0x0002
	mouseeventfLeftUp    = 0x0004
	mouseeventfRightDown = 0x0008
	mouseeventfRightUp   = 0x0010
)

// mouseFlags returns the MOUSEINPUT dwFlags for events, skipping sync
// events, which have no SendInput equivalent.
func mouseFlags(events []autoclicker.Event) ([]uint32, error) {
	flags := make([]uint32, 0, len(events))
	for _, event := range events {
		switch event.Type {
		case autoclicker.EventTypeSyn:
			continue
		case autoclicker.EventTypeKey:
		default:
			return nil, fmt.Errorf("unsupported event type %#x", event.Type)
		}

		var flag uint32
		switch {
		case event.Code == autoclicker.LeftButtonCode && event.Value == 1:
			flag = mouseeventfLeftDown
		case event.Code == autoclicker.LeftButtonCode && event.Value == 0:
			flag = mouseeventfLeftUp
		case event.Code == autoclicker.RightButtonCode && event.Value == 1:
			flag = mouseeventfRightDown
		case event.Code == autoclicker.RightButtonCode && event.Value == 0:
			flag = mouseeventfRightUp
		default:
			return nil, fmt.Errorf("unsupported button event code=%#x value=%d", event.Code, event.Value)
		}
		flags = append(flags, flag)
	}
	return flags, nil
}
