package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"clicker/internal/core/autoclicker"
)

type config struct {
	click       autoclicker.ClickConfig
	backend     string
	downMS      float64
	listDevices bool
	gui         bool
	logLevel    slog.Level
}

type lineSinkWriter struct {
	sink  func(line string)
	mu    sync.Mutex
	lines bytes.Buffer
}

func (w *lineSinkWriter) Write(p []byte) (int, error) {
	if w.sink == nil {
		return len(p), nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(p)
	for len(p) > 0 {
		idx := bytes.IndexByte(p, '\n')
		if idx == -1 {
			_, _ = w.lines.Write(p)
			break
		}
		_, _ = w.lines.Write(p[:idx])
		line := strings.TrimSpace(w.lines.String())
		w.lines.Reset()
		if line != "" {
			w.sink(line)
		}
		p = p[idx+1:]
	}
	return total, nil
}

func newSlogLogger(level slog.Level, sink func(line string)) *slog.Logger {
	if !debugLogsEnabled() {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: level,
		}))
	}

	out := io.Writer(os.Stderr)
	if sink != nil {
		out = io.MultiWriter(os.Stderr, &lineSinkWriter{sink: sink})
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
}

func debugLogsEnabled() bool {
	return strings.TrimSpace(os.Getenv("DEBUG")) == "1"
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warning", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid --log-level %q (expected debug|info|warning|error)", value)
	}
}

func parseConfig(args []string, output io.Writer) (config, error) {
	cfg := config{}
	flags := flag.NewFlagSet("clicker", flag.ContinueOnError)
	flags.SetOutput(output)

	var (
		interval    float64
		count       int
		buttonRaw   string
		delay       float64
		backendRaw  string
		logLevelRaw string
	)

	flags.Float64Var(&interval, "interval", autoclicker.DefaultInterval.Seconds(), "Seconds between clicks.")
	flags.IntVar(&count, "count", autoclicker.DefaultCount, "Number of clicks (0 = until stopped).")
	flags.StringVar(&buttonRaw, "button", "left", "Mouse button to click: left|right.")
	flags.Float64Var(&delay, "delay", autoclicker.DefaultDelay.Seconds(), "Seconds to wait before the first click.")
	flags.BoolVar(&cfg.gui, "gui", false, "Open the overlay to configure and start clicking interactively.")
	flags.StringVar(&backendRaw, "backend", "auto", "Input backend. Linux: auto|wayland|x11. Windows: auto|windows.")
	flags.Float64Var(&cfg.downMS, "down-ms", 10.0, "How long each synthetic click stays down in ms.")
	flags.BoolVar(&cfg.listDevices, "list-devices", false, "Print available input devices and exit.")
	flags.StringVar(&logLevelRaw, "log-level", "info", "Log verbosity. Allowed: debug, info, warning, error.")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	if flags.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}
	if cfg.downMS < 0 || math.IsNaN(cfg.downMS) {
		return cfg, fmt.Errorf("--down-ms must be >= 0")
	}

	click, err := autoclicker.ConfigFromSeconds(interval, count, buttonRaw, delay)
	if err != nil {
		return cfg, err
	}
	parsedLevel, err := parseLogLevel(logLevelRaw)
	if err != nil {
		return cfg, err
	}
	backendChoice, err := parseBackendChoice(backendRaw)
	if err != nil {
		return cfg, err
	}

	cfg.click = click
	cfg.logLevel = parsedLevel
	cfg.backend = backendChoice
	return cfg, nil
}

func (c config) clickDown() time.Duration {
	return time.Duration(math.Max(0, c.downMS) * float64(time.Millisecond))
}

func isPermissionError(err error) bool {
	return errors.Is(err, os.ErrPermission) || errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES)
}

func newMouseFromConfig(cfg config, logger *slog.Logger) (*autoclicker.Mouse, error) {
	injector, err := newInjectorFromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}
	mouse, err := autoclicker.NewMouse(injector, cfg.clickDown(), logger)
	if err != nil {
		_ = injector.Close()
		return nil, err
	}
	return mouse, nil
}

func describeBackendError(err error) string {
	if isPermissionError(err) {
		return permissionDeniedHint()
	}
	return err.Error()
}

// runClicks runs one CLI session and maps its outcome to an exit code.
func runClicks(ctx context.Context, click autoclicker.ClickConfig, clicker autoclicker.Clicker, logger *slog.Logger, stdout, stderr io.Writer) int {
	loop, err := autoclicker.NewLoop(clicker, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	limit := "until stopped"
	if !click.Unbounded() {
		limit = fmt.Sprintf("%d clicks", click.Count)
	}
	fmt.Fprintf(stdout, "Autoclicker starts in %.2fs: %s button every %s, %s (stop with Ctrl+C)...\n",
		click.Delay.Seconds(), click.Button, click.Interval, limit)

	result, err := loop.Run(ctx, click, nil)
	switch {
	case err != nil:
		fmt.Fprintf(stderr, "Autoclicker failed after %d clicks: %v\n", result.Clicks, err)
		return 1
	case result.Outcome == autoclicker.OutcomeCancelled:
		fmt.Fprintf(stdout, "Autoclicker stopped after %d clicks.\n", result.Clicks)
		return 0
	default:
		fmt.Fprintf(stdout, "Autoclicker done: %d clicks in %s.\n", result.Clicks, result.Elapsed.Round(time.Millisecond))
		return 0
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		if errors.Is(err, autoclicker.ErrInvalidConfig) {
			fmt.Fprintln(stderr, "Run with -h for usage.")
		}
		return 2
	}

	if cfg.listDevices {
		if err := listInputDevices(stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	if cfg.gui {
		if err := runUI(cfg); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	logger := newSlogLogger(cfg.logLevel, nil)
	mouse, err := newMouseFromConfig(cfg, logger)
	if err != nil {
		fmt.Fprintln(stderr, describeBackendError(err))
		return 1
	}
	defer func() {
		if err := mouse.Close(); err != nil {
			logger.Warn("Failed to close input backend", "err", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return runClicks(ctx, cfg.click, mouse, logger, stdout, stderr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
