package testutil

import "github.com/frudas24/flipmon/internal/display"

// ApplyCall records a single Apply invocation.
type ApplyCall struct {
	Device display.Device
	Mode   display.Mode
	Flags  display.ApplyFlags
}

// FakeDisplay implements display.API over in-memory devices and records calls for tests.
type FakeDisplay struct {
	Devices []display.Device
	Modes   map[string]display.Mode
	ReadErr error
	Result  display.Result
	Calls   []ApplyCall
}

// Ensure FakeDisplay implements the interface.
var _ display.API = (*FakeDisplay)(nil)

// NewFakeDisplay returns a primary device plus one attached secondary device in mode m.
func NewFakeDisplay(m display.Mode) *FakeDisplay {
	primary := display.Device{
		Index:      0,
		Name:       `\\.\DISPLAY1`,
		StateFlags: display.DeviceAttachedToDesktop | display.DevicePrimary,
	}
	secondary := display.Device{
		Index:      1,
		Name:       `\\.\DISPLAY2`,
		StateFlags: display.DeviceAttachedToDesktop,
	}
	return &FakeDisplay{
		Devices: []display.Device{primary, secondary},
		Modes: map[string]display.Mode{
			primary.Name:   {Width: 2560, Height: 1440},
			secondary.Name: m,
		},
	}
}

// EnumDevice returns the device at index.
func (f *FakeDisplay) EnumDevice(index int) (display.Device, bool) {
	if index < 0 || index >= len(f.Devices) {
		return display.Device{}, false
	}
	return f.Devices[index], true
}

// CurrentMode returns the stored mode for dev or ReadErr.
func (f *FakeDisplay) CurrentMode(dev display.Device) (display.Mode, error) {
	if f.ReadErr != nil {
		return display.Mode{}, f.ReadErr
	}
	return f.Modes[dev.Name], nil
}

// Apply records the call and stores the mode when Result is successful.
func (f *FakeDisplay) Apply(dev display.Device, m display.Mode, flags display.ApplyFlags) display.Result {
	f.Calls = append(f.Calls, ApplyCall{Device: dev, Mode: m, Flags: flags})
	if f.Result == display.ResultSuccessful && !flags.Test {
		f.Modes[dev.Name] = m
	}
	return f.Result
}
