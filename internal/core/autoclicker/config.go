package autoclicker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultInterval = 100 * time.Millisecond
	DefaultCount    = 100
	DefaultDelay    = 3 * time.Second
)

// ClickConfig is the parameter set for one run. It is passed by value, so a
// running loop never observes later edits.
type ClickConfig struct {
	Interval time.Duration
	// Count of clicks to perform; 0 clicks until cancelled.
	Count  int
	Button Button
	Delay  time.Duration
}

func (c ClickConfig) Unbounded() bool {
	return c.Count == 0
}

func (c ClickConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be > 0", ErrInvalidConfig)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count must be >= 0", ErrInvalidConfig)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must be >= 0", ErrInvalidConfig)
	}
	if !c.Button.valid() {
		return fmt.Errorf("%w: unknown button %s", ErrInvalidConfig, c.Button)
	}
	return nil
}

// ConfigFromSeconds builds a validated ClickConfig from command-line style
// values expressed in seconds.
func ConfigFromSeconds(interval float64, count int, button string, delay float64) (ClickConfig, error) {
	intervalDur, err := secondsToDuration("interval", interval)
	if err != nil {
		return ClickConfig{}, err
	}
	delayDur, err := secondsToDuration("delay", delay)
	if err != nil {
		return ClickConfig{}, err
	}
	btn, err := ParseButton(button)
	if err != nil {
		return ClickConfig{}, err
	}

	cfg := ClickConfig{
		Interval: intervalDur,
		Count:    count,
		Button:   btn,
		Delay:    delayDur,
	}
	if err := cfg.Validate(); err != nil {
		return ClickConfig{}, err
	}
	return cfg, nil
}

func secondsToDuration(field string, seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: %s must be a finite number", ErrInvalidConfig, field)
	}
	if seconds > math.MaxInt64/float64(time.Second) {
		return 0, fmt.Errorf("%w: %s is too large", ErrInvalidConfig, field)
	}
	return time.Duration(math.Round(seconds * float64(time.Second))), nil
}

// FormInput holds the raw text of the overlay form fields.
type FormInput struct {
	Count      string
	IntervalMS string
	Button     string
	// Delay in seconds; empty means no delay.
	Delay string
}

// ParseForm converts overlay text fields into a ClickConfig. Non-numeric or
// negative values are rejected before any ClickConfig is produced.
func ParseForm(in FormInput) (ClickConfig, error) {
	count, err := strconv.Atoi(strings.TrimSpace(in.Count))
	if err != nil {
		return ClickConfig{}, fmt.Errorf("%w: clicks must be a whole number", ErrInvalidConfig)
	}
	if count < 0 {
		return ClickConfig{}, fmt.Errorf("%w: clicks must not be negative", ErrInvalidConfig)
	}

	intervalMS, err := strconv.Atoi(strings.TrimSpace(in.IntervalMS))
	if err != nil {
		return ClickConfig{}, fmt.Errorf("%w: interval must be a whole number of milliseconds", ErrInvalidConfig)
	}
	if intervalMS <= 0 {
		return ClickConfig{}, fmt.Errorf("%w: interval must be greater than 0", ErrInvalidConfig)
	}

	delay := 0.0
	if raw := strings.TrimSpace(in.Delay); raw != "" {
		delay, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return ClickConfig{}, fmt.Errorf("%w: delay must be a number of seconds", ErrInvalidConfig)
		}
		if delay < 0 {
			return ClickConfig{}, fmt.Errorf("%w: delay must not be negative", ErrInvalidConfig)
		}
	}

	return ConfigFromSeconds(float64(intervalMS)/1000, count, in.Button, delay)
}
