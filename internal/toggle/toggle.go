// Package toggle flips a display between its default and 270° orientations.
package toggle

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/frudas24/flipmon/internal/display"
)

var (
	// ErrNoSecondaryMonitor indicates the target device is missing or detached.
	ErrNoSecondaryMonitor = errors.New("enumeration complete, no secondary monitor found")
	// ErrReadSettings indicates the current mode could not be queried.
	ErrReadSettings = errors.New("failed to get current display settings")
	// ErrMalformedPosition indicates a stored position could not be parsed under PolicyFail.
	ErrMalformedPosition = errors.New("stored position is malformed")
)

// DefaultDeviceIndex addresses the second enumerated display device.
const DefaultDeviceIndex = 1

// MalformedPolicy decides what a malformed stored position does to a run.
type MalformedPolicy string

const (
	// PolicyIgnore treats malformed records as absent and logs a warning.
	PolicyIgnore MalformedPolicy = "ignore"
	// PolicyFail aborts the run.
	PolicyFail MalformedPolicy = "fail"
)

// ParsePolicy validates a policy name.
func ParsePolicy(raw string) (MalformedPolicy, error) {
	switch MalformedPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", PolicyIgnore:
		return PolicyIgnore, nil
	case PolicyFail:
		return PolicyFail, nil
	default:
		return "", fmt.Errorf("unknown malformed position policy %q", raw)
	}
}

// PositionStore persists one position per orientation.
type PositionStore interface {
	Save(o display.Orientation, p display.Point) error
	Load(o display.Orientation) (display.Point, bool, error)
}

// Toggler runs a single orientation toggle against a display API.
type Toggler struct {
	API             display.API
	Store           PositionStore
	DeviceIndex     int
	Flags           display.ApplyFlags
	MalformedPolicy MalformedPolicy
}

// New returns a toggler for the secondary display that persists changes to the registry.
func New(api display.API, store PositionStore) *Toggler {
	return &Toggler{
		API:             api,
		Store:           store,
		DeviceIndex:     DefaultDeviceIndex,
		Flags:           display.ApplyFlags{UpdateRegistry: true},
		MalformedPolicy: PolicyIgnore,
	}
}

// Report describes what a run did.
type Report struct {
	Device   display.Device
	Previous display.Mode
	Next     display.Mode
	Restored bool
	Result   display.Result
}

// Next returns the orientation a toggle moves to.
// 270° goes back to default; every other orientation goes to 270°.
func Next(o display.Orientation) display.Orientation {
	if o == display.Orientation270 {
		return display.OrientationDefault
	}
	return display.Orientation270
}

// SwapDimensions exchanges width and height.
func SwapDimensions(m display.Mode) display.Mode {
	m.Width, m.Height = m.Height, m.Width
	return m
}

// Plan reads the target device and returns the device, its mode, and the mode a toggle would commit.
// The store is only read.
func (t *Toggler) Plan() (display.Device, display.Mode, display.Mode, bool, error) {
	dev, err := t.discover()
	if err != nil {
		return display.Device{}, display.Mode{}, display.Mode{}, false, err
	}
	cur, err := t.API.CurrentMode(dev)
	if err != nil {
		return dev, display.Mode{}, display.Mode{}, false, fmt.Errorf("%w: %v", ErrReadSettings, err)
	}
	next, restored, err := t.mutate(cur)
	if err != nil {
		return dev, cur, display.Mode{}, false, err
	}
	return dev, cur, next, restored, nil
}

// Run discovers the device, saves its position, flips it, and commits the new mode.
func (t *Toggler) Run() (Report, error) {
	dev, err := t.discover()
	if err != nil {
		return Report{}, err
	}
	debugf("device %d: %s (%s) flags=%#x", dev.Index, dev.Name, dev.String, dev.StateFlags)

	cur, err := t.API.CurrentMode(dev)
	if err != nil {
		return Report{Device: dev}, fmt.Errorf("%w: %v", ErrReadSettings, err)
	}
	debugf("current mode: %dx%d %s at (%d,%d)", cur.Width, cur.Height, cur.Orientation, cur.Position.X, cur.Position.Y)

	if err := t.Store.Save(cur.Orientation, cur.Position); err != nil {
		log.Printf("warn: save position for %s: %v", cur.Orientation, err)
	}

	next, restored, err := t.mutate(cur)
	if err != nil {
		return Report{Device: dev, Previous: cur}, err
	}
	debugf("applying mode: %dx%d %s at (%d,%d) restored=%v", next.Width, next.Height, next.Orientation, next.Position.X, next.Position.Y, restored)

	res := t.API.Apply(dev, next, t.Flags)
	return Report{
		Device:   dev,
		Previous: cur,
		Next:     next,
		Restored: restored,
		Result:   res,
	}, nil
}

// discover returns the attached device at DeviceIndex.
func (t *Toggler) discover() (display.Device, error) {
	dev, ok := t.API.EnumDevice(t.DeviceIndex)
	if !ok {
		return display.Device{}, fmt.Errorf("%w (index %d)", ErrNoSecondaryMonitor, t.DeviceIndex)
	}
	if !dev.Attached() {
		return display.Device{}, fmt.Errorf("%w (%s is not attached to the desktop)", ErrNoSecondaryMonitor, dev.Name)
	}
	return dev, nil
}

// mutate flips cur and applies any stored position for the new orientation.
func (t *Toggler) mutate(cur display.Mode) (display.Mode, bool, error) {
	target := Next(cur.Orientation)
	next := SwapDimensions(cur)
	next.Orientation = target

	pos, ok, err := t.Store.Load(target)
	if err != nil {
		if t.MalformedPolicy == PolicyFail {
			return display.Mode{}, false, fmt.Errorf("%w: %v", ErrMalformedPosition, err)
		}
		log.Printf("warn: ignoring stored position for %s: %v", target, err)
		return next, false, nil
	}
	if ok {
		next.Position = pos
	}
	return next, ok, nil
}
