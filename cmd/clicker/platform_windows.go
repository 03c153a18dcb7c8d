//go:build windows

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"clicker/internal/adapters/wininput"
	"clicker/internal/core/autoclicker"
)

func parseBackendChoice(value string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(value))
	if backend == "" {
		backend = "auto"
	}
	switch backend {
	case "auto", "windows":
		return backend, nil
	default:
		return "", fmt.Errorf("invalid --backend %q (windows supports auto|windows)", value)
	}
}

func listInputDevices(_ io.Writer) error {
	return fmt.Errorf("input device listing is not supported on Windows")
}

func permissionDeniedHint() string {
	return "Permission denied sending synthetic input. Target windows running as Administrator only accept input from elevated processes."
}

func newInjectorFromConfig(_ config, logger *slog.Logger) (autoclicker.Injector, error) {
	injector, err := wininput.NewInjector(logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Input mode", "mode", "windows-sendinput")
	return injector, nil
}
