//go:build !windows

// Package monitor reports the virtual-desktop layout of active monitors.
package monitor

import "fmt"

// ListMonitors returns an error on non-Windows platforms.
func ListMonitors() ([]Monitor, error) {
	return nil, fmt.Errorf("ListMonitors is only supported on Windows")
}

// Count returns 0 on non-Windows platforms.
func Count() int {
	return 0
}
