//go:build linux

package linuxinput

import (
	"os"
	"sort"
	"strings"

	evdev "github.com/holoplot/go-evdev"
)

type DeviceInfo struct {
	Path      string
	Name      string
	IsVirtual bool
	IsPointer bool
}

func ListInputDevices() ([]DeviceInfo, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, err
	}

	sort.Slice(paths, func(i, j int) bool {
		return paths[i].Path < paths[j].Path
	})

	devices := make([]DeviceInfo, 0, len(paths))
	for _, path := range paths {
		dev, err := openInputDevice(path.Path)
		if err != nil {
			continue
		}

		name := path.Name
		if actualName, err := dev.Name(); err == nil && actualName != "" {
			name = actualName
		}

		devices = append(devices, DeviceInfo{
			Path:      path.Path,
			Name:      name,
			IsVirtual: deviceIsVirtual(dev, name),
			IsPointer: deviceIsPointer(dev),
		})
		_ = dev.Close()
	}

	return devices, nil
}

// physicalPointerID returns the input ID of the first non-virtual pointer,
// so the virtual mouse is classified the same way by the compositor.
func physicalPointerID() (evdev.InputID, bool) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return evdev.InputID{}, false
	}
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].Path < paths[j].Path
	})

	for _, path := range paths {
		dev, err := openInputDevice(path.Path)
		if err != nil {
			continue
		}
		name, _ := dev.Name()
		if deviceIsVirtual(dev, name) || !deviceIsPointer(dev) {
			_ = dev.Close()
			continue
		}
		id, err := dev.InputID()
		_ = dev.Close()
		if err == nil {
			return id, true
		}
	}
	return evdev.InputID{}, false
}

func openInputDevice(path string) (*evdev.InputDevice, error) {
	return evdev.OpenWithFlags(path, os.O_RDONLY)
}

func deviceIsVirtual(device *evdev.InputDevice, name string) bool {
	id, err := device.InputID()
	if err == nil && id.BusType == uint16(evdev.BUS_VIRTUAL) {
		return true
	}
	return nameLooksVirtual(name)
}

func nameLooksVirtual(name string) bool {
	lower := strings.ToLower(name)
	for _, token := range []string{"virtual", "uinput", "ydotool", DeviceName} {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func deviceIsPointer(device *evdev.InputDevice) bool {
	var hasRelX, hasRelY bool
	for _, code := range device.CapableEvents(evdev.EV_REL) {
		if code == evdev.REL_X {
			hasRelX = true
		}
		if code == evdev.REL_Y {
			hasRelY = true
		}
	}
	if hasRelX && hasRelY {
		return true
	}
	return len(device.CapableEvents(evdev.EV_ABS)) > 0
}
