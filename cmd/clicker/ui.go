package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"clicker/internal/core/autoclicker"
)

type clickerTheme struct {
	base fyne.Theme
}

func newClickerTheme() fyne.Theme {
	return &clickerTheme{base: theme.DarkTheme()}
}

func (t *clickerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x0d, G: 0x10, B: 0x14, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x1d, G: 0x23, B: 0x2c, A: 0xff}
	case theme.ColorNameDisabledButton:
		return color.NRGBA{R: 0x16, G: 0x1a, B: 0x20, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x13, G: 0x18, B: 0x1f, A: 0xff}
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return color.NRGBA{R: 0x2b, G: 0x33, B: 0x40, A: 0xff}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff}
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0xff, G: 0x7a, B: 0x7a, A: 0x66}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xf2, G: 0xf4, B: 0xf8, A: 0xff}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xff, G: 0x82, B: 0x82, A: 0xff}
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 0x7f, G: 0xd4, B: 0xa8, A: 0xff}
	}
	return t.base.Color(name, variant)
}

func (t *clickerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *clickerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *clickerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding, theme.SizeNameInnerPadding, theme.SizeNameInputRadius:
		return 8
	}
	return t.base.Size(name)
}

// statusText renders a session transition for the overlay status line.
func statusText(change autoclicker.StateChange) string {
	switch change.State {
	case autoclicker.StateIdle:
		return "Ready"
	case autoclicker.StateDelaying:
		return "Waiting for start delay..."
	case autoclicker.StateClicking:
		return "Clicking..."
	case autoclicker.StateCompleted:
		return fmt.Sprintf("Done (%d clicks)", change.Result.Clicks)
	case autoclicker.StateCancelled:
		return fmt.Sprintf("Stopped (%d clicks)", change.Result.Clicks)
	case autoclicker.StateFailed:
		if change.Err != nil {
			return "Failed: " + change.Err.Error()
		}
		return "Failed"
	default:
		return change.State.String()
	}
}

// formDefaults pre-fills the overlay from command-line values.
func formDefaults(click autoclicker.ClickConfig) autoclicker.FormInput {
	return autoclicker.FormInput{
		Count:      strconv.Itoa(click.Count),
		IntervalMS: strconv.FormatInt(click.Interval.Milliseconds(), 10),
		Button:     click.Button.String(),
		Delay:      strconv.FormatFloat(click.Delay.Seconds(), 'f', -1, 64),
	}
}

func runUI(baseCfg config) error {
	fApp := app.New()
	fApp.Settings().SetTheme(newClickerTheme())

	window := fApp.NewWindow("Autoclicker Overlay")
	window.Resize(fyne.NewSize(360, 320))
	window.SetFixedSize(true)
	window.CenterOnScreen()

	defaults := formDefaults(baseCfg.click)
	countEntry := widget.NewEntry()
	countEntry.SetText(defaults.Count)
	intervalEntry := widget.NewEntry()
	intervalEntry.SetText(defaults.IntervalMS)
	delayEntry := widget.NewEntry()
	delayEntry.SetText(defaults.Delay)
	buttonSelect := widget.NewSelect([]string{
		autoclicker.ButtonLeft.String(),
		autoclicker.ButtonRight.String(),
	}, nil)
	buttonSelect.SetSelected(defaults.Button)

	statusLabel := widget.NewLabel("Initializing input backend...")
	statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	errorText := canvas.NewText("", theme.Color(theme.ColorNameError))

	logGrid := widget.NewTextGrid()
	logScroll := container.NewVScroll(logGrid)
	logScroll.SetMinSize(fyne.NewSize(0, 120))

	const maxUILogLines = 50
	var logMu sync.Mutex
	logLines := make([]string, 0, maxUILogLines)
	debugLogs := debugLogsEnabled()
	appendLogLine := func(line string) {
		if !debugLogs {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		logMu.Lock()
		logLines = append(logLines, line)
		if len(logLines) > maxUILogLines {
			logLines = logLines[len(logLines)-maxUILogLines:]
		}
		logText := strings.Join(logLines, "\n")
		logMu.Unlock()

		fyne.Do(func() {
			logGrid.SetText(logText)
			logScroll.ScrollToBottom()
		})
	}
	logger := newSlogLogger(baseCfg.logLevel, appendLogLine)

	startBtn := widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), nil)
	startBtn.Importance = widget.HighImportance
	stopBtn := widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), nil)
	startBtn.Disable()
	stopBtn.Disable()
	initProgress := widget.NewProgressBarInfinite()

	setError := func(text string) {
		errorText.Text = text
		errorText.Refresh()
		if text != "" {
			appendLogLine("ERROR " + text)
		}
	}

	applyState := func(change autoclicker.StateChange) {
		statusLabel.SetText(statusText(change))
		if change.State.Active() {
			startBtn.Disable()
			stopBtn.Enable()
			return
		}
		startBtn.Enable()
		stopBtn.Disable()
	}

	var stateMu sync.Mutex
	var mouse *autoclicker.Mouse
	var session *autoclicker.Session

	getSession := func() *autoclicker.Session {
		stateMu.Lock()
		defer stateMu.Unlock()
		return session
	}

	go func() {
		m, err := newMouseFromConfig(baseCfg, logger)
		if err == nil {
			var loop *autoclicker.Loop
			loop, err = autoclicker.NewLoop(m, logger)
			if err == nil {
				var s *autoclicker.Session
				s, err = autoclicker.NewSession(loop, logger, func(change autoclicker.StateChange) {
					fyne.Do(func() { applyState(change) })
				})
				if err == nil {
					stateMu.Lock()
					mouse = m
					session = s
					stateMu.Unlock()
				}
			}
			if err != nil {
				_ = m.Close()
			}
		}

		fyne.Do(func() {
			initProgress.Hide()
			if err != nil {
				statusLabel.SetText("Input backend unavailable")
				setError(describeBackendError(err))
				return
			}
			appendLogLine("INFO Input backend ready")
			applyState(autoclicker.StateChange{State: autoclicker.StateIdle})
		})
	}()

	startBtn.OnTapped = func() {
		s := getSession()
		if s == nil {
			return
		}
		_, err := s.Confirm(autoclicker.FormInput{
			Count:      countEntry.Text,
			IntervalMS: intervalEntry.Text,
			Button:     buttonSelect.Selected,
			Delay:      delayEntry.Text,
		})
		switch {
		case errors.Is(err, autoclicker.ErrAlreadyRunning):
			setError("Autoclicker is already running.")
		case err != nil:
			setError(err.Error())
		default:
			setError("")
		}
	}

	stopBtn.OnTapped = func() {
		if s := getSession(); s != nil && s.Stop() {
			statusLabel.SetText("Stopping...")
		}
	}

	var closeOnce sync.Once
	cleanup := func() {
		closeOnce.Do(func() {
			stateMu.Lock()
			s, m := session, mouse
			stateMu.Unlock()
			if s != nil {
				s.Stop()
				_, _ = s.Wait()
			}
			if m != nil {
				if err := m.Close(); err != nil {
					logger.Warn("Failed to close input backend", "err", err)
				}
			}
		})
	}

	quit := func() {
		cleanup()
		if currentApp := fyne.CurrentApp(); currentApp != nil {
			currentApp.Quit()
			return
		}
		window.SetCloseIntercept(nil)
		window.Close()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			fyne.Do(quit)
		}
	}()

	window.SetCloseIntercept(quit)

	form := widget.NewForm(
		widget.NewFormItem("Clicks (0 = until stopped)", countEntry),
		widget.NewFormItem("Interval (ms)", intervalEntry),
		widget.NewFormItem("Button", buttonSelect),
		widget.NewFormItem("Start delay (s)", delayEntry),
	)
	buttons := container.NewGridWithColumns(2, startBtn, stopBtn)
	mainPanel := container.NewPadded(container.NewVBox(
		form,
		buttons,
		initProgress,
		statusLabel,
		errorText,
	))

	var rootContent fyne.CanvasObject = mainPanel
	if debugLogs {
		split := container.NewVSplit(mainPanel, widget.NewCard("Logs", "", logScroll))
		split.SetOffset(0.7)
		rootContent = split
	}

	window.SetContent(rootContent)
	window.ShowAndRun()
	cleanup()
	return nil
}
