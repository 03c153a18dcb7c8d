//go:build linux

package x11input

import (
	"fmt"
	"sync"

	"clicker/internal/core/autoclicker"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
)

// Injector fakes pointer button events through the XTEST extension.
type Injector struct {
	xu      *xgbutil.XUtil
	conn    *xgb.Conn
	rootWin xproto.Window
	logger  autoclicker.Logger

	mu     sync.Mutex
	closed bool
}

func NewInjector(logger autoclicker.Logger) (*Injector, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	conn := xu.Conn()
	if conn == nil {
		return nil, fmt.Errorf("failed to open X11 connection")
	}

	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Injector{
		xu:      xu,
		conn:    conn,
		rootWin: xu.RootWin(),
		logger:  logger,
	}, nil
}

func (i *Injector) WriteEvents(events ...autoclicker.Event) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return fmt.Errorf("x11 connection is closed")
	}

	dirty := false
	for _, event := range events {
		if event.Type != autoclicker.EventTypeKey {
			continue
		}
		detail, eventType, err := fakeInputFor(event)
		if err != nil {
			return err
		}

		if err := xtest.FakeInputChecked(
			i.conn,
			eventType,
			detail,
			xproto.TimeCurrentTime,
			i.rootWin,
			0,
			0,
			0,
		).Check(); err != nil {
			return err
		}
		dirty = true
	}

	if dirty {
		i.conn.Sync()
	}
	return nil
}

func (i *Injector) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return nil
	}
	i.closed = true
	i.conn.Close()
	return nil
}

func fakeInputFor(event autoclicker.Event) (detail byte, eventType byte, err error) {
	switch event.Code {
	case autoclicker.LeftButtonCode:
		detail = xproto.ButtonIndex1
	case autoclicker.RightButtonCode:
		detail = xproto.ButtonIndex3
	default:
		return 0, 0, fmt.Errorf("unsupported button code %#x", event.Code)
	}

	switch event.Value {
	case 1:
		eventType = xproto.ButtonPress
	case 0:
		eventType = xproto.ButtonRelease
	default:
		return 0, 0, fmt.Errorf("unsupported button value %d", event.Value)
	}
	return detail, eventType, nil
}
