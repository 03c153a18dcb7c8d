//go:build linux

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"clicker/internal/adapters/linuxinput"
	"clicker/internal/adapters/x11input"
	"clicker/internal/core/autoclicker"
)

func parseBackendChoice(value string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(value))
	if backend == "" {
		backend = "auto"
	}
	switch backend {
	case "auto", "wayland", "x11", "uinput":
		return backend, nil
	default:
		return "", fmt.Errorf("invalid --backend %q (linux supports auto|wayland|x11)", value)
	}
}

func listInputDevices(out io.Writer) error {
	devices, err := linuxinput.ListInputDevices()
	if err != nil {
		return err
	}
	for _, dev := range devices {
		virtualTag := "physical"
		if dev.IsVirtual {
			virtualTag = "virtual"
		}
		pointerTag := "non-pointer"
		if dev.IsPointer {
			pointerTag = "pointer"
		}
		fmt.Fprintf(out, "%s: %s [%s, %s]\n", dev.Path, dev.Name, virtualTag, pointerTag)
	}
	return nil
}

func permissionDeniedHint() string {
	return "Permission denied opening input backend. On Wayland run as root or grant write access to /dev/uinput. On X11 ensure an active X11 session and DISPLAY is set."
}

func newInjectorFromConfig(cfg config, logger *slog.Logger) (autoclicker.Injector, error) {
	switch resolveLinuxBackend(cfg.backend) {
	case "x11":
		injector, err := x11input.NewInjector(logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Backend", "name", "x11")
		return injector, nil
	default:
		injector, err := linuxinput.NewInjector(logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Backend", "name", "wayland", "device", linuxinput.DeviceName)
		return injector, nil
	}
}

func resolveLinuxBackend(configured string) string {
	choice := strings.ToLower(strings.TrimSpace(configured))
	if choice == "" {
		choice = "auto"
	}
	if choice == "uinput" {
		choice = "wayland"
	}
	if choice != "auto" {
		return choice
	}

	sessionType := strings.ToLower(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE")))
	switch sessionType {
	case "wayland":
		return "wayland"
	case "x11":
		return "x11"
	}

	if strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) != "" {
		return "wayland"
	}
	if strings.TrimSpace(os.Getenv("DISPLAY")) != "" {
		return "x11"
	}
	return "wayland"
}
