package autoclicker

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInjectionFailed = errors.New("click injection failed")
	ErrAlreadyRunning  = errors.New("autoclicker is already running")
)

// InjectionError reports the click that the platform refused to perform.
type InjectionError struct {
	Click  int
	Button Button
	Err    error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("%s click %d failed: %v", e.Button, e.Click, e.Err)
}

func (e *InjectionError) Unwrap() error {
	return e.Err
}

func (e *InjectionError) Is(target error) bool {
	return target == ErrInjectionFailed
}
