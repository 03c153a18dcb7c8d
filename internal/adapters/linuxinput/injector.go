//go:build linux

package linuxinput

import (
	"fmt"

	"clicker/internal/core/autoclicker"

	evdev "github.com/holoplot/go-evdev"
)

const DeviceName = "clicker virtual mouse"

// Injector writes synthetic button events to a uinput virtual mouse. It
// works on Wayland and the console, but needs write access to /dev/uinput.
type Injector struct {
	dev    *evdev.InputDevice
	logger autoclicker.Logger
}

func NewInjector(logger autoclicker.Logger) (*Injector, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	id := evdev.InputID{
		BusType: uint16(evdev.BUS_VIRTUAL),
		Vendor:  0x1,
		Product: 0x1,
		Version: 1,
	}
	if sourceID, ok := physicalPointerID(); ok {
		id = sourceID
		id.BusType = uint16(evdev.BUS_VIRTUAL)
	}

	// REL_X/REL_Y make libinput treat the device as a pointer.
	capabilities := map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: {evdev.BTN_LEFT, evdev.BTN_RIGHT},
		evdev.EV_REL: {evdev.REL_X, evdev.REL_Y},
	}

	dev, err := evdev.CreateDevice(DeviceName, id, capabilities)
	if err != nil {
		return nil, err
	}
	logger.Debug("Created uinput device", "name", DeviceName, "vendor", id.Vendor, "product", id.Product)
	return &Injector{dev: dev, logger: logger}, nil
}

func (i *Injector) WriteEvents(events ...autoclicker.Event) error {
	for _, event := range events {
		ev, err := toInputEvent(event)
		if err != nil {
			return err
		}
		if err := i.dev.WriteOne(&ev); err != nil {
			return err
		}
	}
	return nil
}

func (i *Injector) Close() error {
	if i.dev == nil {
		return nil
	}
	return i.dev.Close()
}
