// Package display describes display devices, their modes, and the API used to change them.
package display

import (
	"errors"
	"fmt"
)

// Orientation is the rotation of a display's output, using the DMDO_* codes.
type Orientation uint32

const (
	// OrientationDefault is the natural (0°) orientation.
	OrientationDefault Orientation = 0
	// Orientation90 rotates the output by 90°.
	Orientation90 Orientation = 1
	// Orientation180 rotates the output by 180°.
	Orientation180 Orientation = 2
	// Orientation270 rotates the output by 270° (portrait, flipped).
	Orientation270 Orientation = 3
)

// Orientations lists every orientation value in code order.
var Orientations = []Orientation{OrientationDefault, Orientation90, Orientation180, Orientation270}

// String returns the rotation in degrees.
func (o Orientation) String() string {
	switch o {
	case OrientationDefault:
		return "0°"
	case Orientation90:
		return "90°"
	case Orientation180:
		return "180°"
	case Orientation270:
		return "270°"
	default:
		return fmt.Sprintf("orientation(%d)", uint32(o))
	}
}

// Portrait reports whether the orientation puts a landscape panel on its side.
func (o Orientation) Portrait() bool {
	return o == Orientation90 || o == Orientation270
}

// Point is a signed position in virtual-desktop space.
type Point struct {
	X int32
	Y int32
}

// DeviceAttachedToDesktop is the DISPLAY_DEVICE_ATTACHED_TO_DESKTOP state flag.
const DeviceAttachedToDesktop uint32 = 0x1

// DevicePrimary is the DISPLAY_DEVICE_PRIMARY_DEVICE state flag.
const DevicePrimary uint32 = 0x4

// Device identifies a display adapter output.
type Device struct {
	Index      int
	Name       string
	String     string
	StateFlags uint32
}

// Attached reports whether the device is part of the desktop.
func (d Device) Attached() bool {
	return d.StateFlags&DeviceAttachedToDesktop != 0
}

// Primary reports whether the device hosts the primary desktop.
func (d Device) Primary() bool {
	return d.StateFlags&DevicePrimary != 0
}

// Mode is the active configuration of a display device.
type Mode struct {
	Width       uint32
	Height      uint32
	Orientation Orientation
	Position    Point
	Frequency   uint32
	BitsPerPel  uint32
}

// Result is the status code returned when applying a mode.
type Result int32

const (
	// ResultSuccessful is DISP_CHANGE_SUCCESSFUL.
	ResultSuccessful Result = 0
	// ResultRestart is DISP_CHANGE_RESTART.
	ResultRestart Result = 1
	// ResultFailed is DISP_CHANGE_FAILED.
	ResultFailed Result = -1
	// ResultBadMode is DISP_CHANGE_BADMODE.
	ResultBadMode Result = -2
)

// ApplyFlags controls how a mode change is committed.
type ApplyFlags struct {
	// UpdateRegistry persists the mode so it survives a reboot.
	UpdateRegistry bool
	// Test only checks whether the mode could be set.
	Test bool
}

// ErrUnsupported indicates the display API is not available on this platform.
var ErrUnsupported = errors.New("display settings are only supported on Windows")

// API is the display configuration service used by the toggler.
type API interface {
	// EnumDevice returns the display device at index, or false when enumeration ends before it.
	EnumDevice(index int) (Device, bool)
	// CurrentMode returns the active mode of dev.
	CurrentMode(dev Device) (Mode, error)
	// Apply commits m to dev.
	Apply(dev Device, m Mode, flags ApplyFlags) Result
}
