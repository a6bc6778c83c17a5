//go:build !windows

// Package display describes display devices, their modes, and the API used to change them.
package display

// NoopAPI is a placeholder API for non-Windows builds.
type NoopAPI struct{}

// NewAPI returns a non-functional API on non-Windows platforms.
func NewAPI() (API, error) {
	return &NoopAPI{}, ErrUnsupported
}

// EnumDevice reports that no devices exist.
func (n *NoopAPI) EnumDevice(index int) (Device, bool) {
	_ = index
	return Device{}, false
}

// CurrentMode returns ErrUnsupported.
func (n *NoopAPI) CurrentMode(dev Device) (Mode, error) {
	_ = dev
	return Mode{}, ErrUnsupported
}

// Apply reports a failed change.
func (n *NoopAPI) Apply(dev Device, m Mode, flags ApplyFlags) Result {
	_ = dev
	_ = m
	_ = flags
	return ResultFailed
}
