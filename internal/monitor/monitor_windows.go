//go:build windows

package monitor

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// ListScreens returns the attached displays, primary first.
// Screens are named DISPLAY1..n in WinAPI enumeration order.
func ListScreens() ([]Screen, error) {
	var screens []Screen
	callback := syscall.NewCallback(func(hMonitor win.HMONITOR, _ win.HDC, _ *win.RECT, _ uintptr) uintptr {
		if s, ok := screenInfo(hMonitor, len(screens)+1); ok {
			screens = append(screens, s)
		}
		return 1
	})

	if !win.EnumDisplayMonitors(0, nil, callback, 0) {
		return nil, fmt.Errorf("enumerate displays: %w", syscall.GetLastError())
	}
	if len(screens) == 0 {
		return nil, errors.New("enumerate displays: none attached")
	}
	return PrimaryFirst(screens), nil
}

// screenInfo reads the bounds and primary flag of one display.
func screenInfo(h win.HMONITOR, n int) (Screen, bool) {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(h, &info) {
		return Screen{}, false
	}
	r := info.RcMonitor
	return Screen{
		Name:    fmt.Sprintf("DISPLAY%d", n),
		X:       int(r.Left),
		Y:       int(r.Top),
		Width:   int(r.Right - r.Left),
		Height:  int(r.Bottom - r.Top),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	}, true
}
