//go:build windows

package wininput

import (
	"fmt"
	"syscall"
	"unsafe"

	"clicker/internal/core/autoclicker"
)

const inputMouse = 0

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procSendInput = user32.NewProc("SendInput")
)

type mouseInput struct {
	Dx          int32
	Dy          int32
	MouseData   uint32
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

type input struct {
	Type uint32
	Mi   mouseInput
}

// Injector sends synthetic mouse button input with SendInput.
type Injector struct {
	logger autoclicker.Logger
}

func NewInjector(logger autoclicker.Logger) (*Injector, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if err := procSendInput.Find(); err != nil {
		return nil, err
	}
	return &Injector{logger: logger}, nil
}

func (i *Injector) WriteEvents(events ...autoclicker.Event) error {
	flags, err := mouseFlags(events)
	if err != nil {
		return err
	}
	if len(flags) == 0 {
		return nil
	}

	inputs := make([]input, 0, len(flags))
	for _, flag := range flags {
		inputs = append(inputs, input{
			Type: inputMouse,
			Mi:   mouseInput{DwFlags: flag},
		})
	}

	sent, _, callErr := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if sent != uintptr(len(inputs)) {
		if callErr != nil && callErr != syscall.Errno(0) {
			return callErr
		}
		return fmt.Errorf("SendInput sent %d of %d inputs", sent, len(inputs))
	}
	return nil
}

func (i *Injector) Close() error {
	return nil
}
