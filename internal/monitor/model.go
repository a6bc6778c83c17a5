// Package monitor reports the virtual-desktop layout of active monitors.
package monitor

import (
	"fmt"

	"github.com/frudas24/flipmon/internal/display"
)

// Monitor is an active monitor's rectangle in virtual-desktop space.
type Monitor struct {
	Index   int
	Origin  display.Point
	Width   int32
	Height  int32
	Primary bool
}

// Portrait reports whether the monitor is taller than it is wide.
func (m Monitor) Portrait() bool {
	return m.Height > m.Width
}

// String formats the monitor as "#idx WxH at (x,y)".
func (m Monitor) String() string {
	s := fmt.Sprintf("#%d %dx%d at (%d,%d)", m.Index, m.Width, m.Height, m.Origin.X, m.Origin.Y)
	if m.Primary {
		s += " primary"
	}
	return s
}

// FindAt returns the monitor whose top-left corner is at p.
func FindAt(list []Monitor, p display.Point) (Monitor, bool) {
	for _, m := range list {
		if m.Origin == p {
			return m, true
		}
	}
	return Monitor{}, false
}
