//go:build windows

// Package monitor reports the virtual-desktop layout of active monitors.
package monitor

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/frudas24/flipmon/internal/display"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
)

// ListMonitors returns the active monitors in enumeration order.
func ListMonitors() ([]Monitor, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	r1, _, callErr := procEnumDisplayMonitors.Call(0, 0, callback, 0)
	if r1 == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", callErr)
	}
	if len(state.list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return state.list, nil
}

// Count returns the number of monitors on the desktop.
func Count() int {
	return int(win.GetSystemMetrics(win.SM_CMONITORS))
}

type enumState struct {
	list []Monitor
}

func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	r := info.RcMonitor
	s.list = append(s.list, Monitor{
		Index:   len(s.list) + 1,
		Origin:  display.Point{X: r.Left, Y: r.Top},
		Width:   r.Right - r.Left,
		Height:  r.Bottom - r.Top,
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}
