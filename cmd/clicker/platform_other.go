//go:build !linux && !windows

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"clicker/internal/core/autoclicker"
)

func parseBackendChoice(value string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(value))
	if backend == "" || backend == "auto" {
		return "auto", nil
	}
	return "", fmt.Errorf("invalid --backend %q (unsupported platform)", value)
}

func listInputDevices(_ io.Writer) error {
	return fmt.Errorf("input device listing is not supported on this platform")
}

func permissionDeniedHint() string {
	return "Permission denied opening input backend."
}

func newInjectorFromConfig(_ config, _ *slog.Logger) (autoclicker.Injector, error) {
	return nil, fmt.Errorf("synthetic clicks are not supported on this platform")
}
