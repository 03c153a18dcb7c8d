package autoclicker

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestConfigFromSecondsDefaults(t *testing.T) {
	cfg, err := ConfigFromSeconds(0.1, 100, "left", 3.0)
	if err != nil {
		t.Fatalf("ConfigFromSeconds() error = %v", err)
	}
	want := ClickConfig{Interval: DefaultInterval, Count: DefaultCount, Button: ButtonLeft, Delay: DefaultDelay}
	if cfg != want {
		t.Fatalf("ConfigFromSeconds() = %#v, want %#v", cfg, want)
	}
}

func TestConfigFromSecondsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		count    int
		button   string
		delay    float64
	}{
		{name: "negative interval", interval: -1, count: 1, button: "left"},
		{name: "zero interval", interval: 0, count: 1, button: "left"},
		{name: "sub-nanosecond interval", interval: 1e-12, count: 1, button: "left"},
		{name: "negative count", interval: 0.1, count: -5, button: "left"},
		{name: "middle button", interval: 0.1, count: 1, button: "middle"},
		{name: "negative delay", interval: 0.1, count: 1, button: "right", delay: -0.5},
		{name: "nan interval", interval: math.NaN(), count: 1, button: "left"},
		{name: "infinite delay", interval: 0.1, count: 1, button: "left", delay: math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConfigFromSeconds(tt.interval, tt.count, tt.button, tt.delay)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("ConfigFromSeconds() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseButton(t *testing.T) {
	if b, err := ParseButton(" Right "); err != nil || b != ButtonRight {
		t.Fatalf("ParseButton(Right) = %v, %v", b, err)
	}
	if b, err := ParseButton("left"); err != nil || b != ButtonLeft {
		t.Fatalf("ParseButton(left) = %v, %v", b, err)
	}
	if _, err := ParseButton("middle"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("ParseButton(middle) error = %v", err)
	}
}

func TestValidateRejectsUnknownButton(t *testing.T) {
	cfg := ClickConfig{Interval: time.Millisecond, Button: Button(7)}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestParseFormConvertsMilliseconds(t *testing.T) {
	cfg, err := ParseForm(FormInput{Count: "25", IntervalMS: "250", Button: "right", Delay: "1.5"})
	if err != nil {
		t.Fatalf("ParseForm() error = %v", err)
	}
	want := ClickConfig{Interval: 250 * time.Millisecond, Count: 25, Button: ButtonRight, Delay: 1500 * time.Millisecond}
	if cfg != want {
		t.Fatalf("ParseForm() = %#v, want %#v", cfg, want)
	}
}

func TestParseFormEmptyDelayMeansNone(t *testing.T) {
	cfg, err := ParseForm(FormInput{Count: "0", IntervalMS: "100", Button: "left"})
	if err != nil {
		t.Fatalf("ParseForm() error = %v", err)
	}
	if cfg.Delay != 0 || !cfg.Unbounded() {
		t.Fatalf("ParseForm() = %#v, want zero delay and unbounded count", cfg)
	}
}

func TestParseFormRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   FormInput
	}{
		{name: "non-numeric interval", in: FormInput{Count: "1", IntervalMS: "abc", Button: "left"}},
		{name: "negative interval", in: FormInput{Count: "1", IntervalMS: "-10", Button: "left"}},
		{name: "zero interval", in: FormInput{Count: "1", IntervalMS: "0", Button: "left"}},
		{name: "non-numeric count", in: FormInput{Count: "x", IntervalMS: "100", Button: "left"}},
		{name: "negative count", in: FormInput{Count: "-5", IntervalMS: "100", Button: "left"}},
		{name: "bad delay", in: FormInput{Count: "1", IntervalMS: "100", Button: "left", Delay: "soon"}},
		{name: "negative delay", in: FormInput{Count: "1", IntervalMS: "100", Button: "left", Delay: "-1"}},
		{name: "bad button", in: FormInput{Count: "1", IntervalMS: "100", Button: "middle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseForm(tt.in); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("ParseForm() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
