//go:build windows

// Package display describes display devices, their modes, and the API used to change them.
package display

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayDevicesW      = user32.NewProc("EnumDisplayDevicesW")
	procEnumDisplaySettingsExW   = user32.NewProc("EnumDisplaySettingsExW")
	procChangeDisplaySettingsExW = user32.NewProc("ChangeDisplaySettingsExW")
)

const (
	enumCurrentSettings = 0xFFFFFFFF

	cdsUpdateRegistry = 0x00000001
	cdsTest           = 0x00000002

	dmPosition           = 0x00000020
	dmDisplayOrientation = 0x00000080
	dmBitsPerPel         = 0x00040000
	dmPelsWidth          = 0x00080000
	dmPelsHeight         = 0x00100000
	dmDisplayFrequency   = 0x00400000
)

// displayDevice mirrors DISPLAY_DEVICEW.
type displayDevice struct {
	Cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// devMode mirrors DEVMODEW with the display variant of its unions.
type devMode struct {
	DmDeviceName         [win.CCHDEVICENAME]uint16
	DmSpecVersion        uint16
	DmDriverVersion      uint16
	DmSize               uint16
	DmDriverExtra        uint16
	DmFields             uint32
	DmPosition           win.POINT
	DmDisplayOrientation uint32
	DmDisplayFixedOutput uint32
	DmColor              int16
	DmDuplex             int16
	DmYResolution        int16
	DmTTOption           int16
	DmCollate            int16
	DmFormName           [win.CCHFORMNAME]uint16
	DmLogPixels          uint16
	DmBitsPerPel         uint32
	DmPelsWidth          uint32
	DmPelsHeight         uint32
	DmDisplayFlags       uint32
	DmDisplayFrequency   uint32
	DmICMMethod          uint32
	DmICMIntent          uint32
	DmMediaType          uint32
	DmDitherType         uint32
	DmReserved1          uint32
	DmReserved2          uint32
	DmPanningWidth       uint32
	DmPanningHeight      uint32
}

// WinAPI talks to user32 display settings functions.
type WinAPI struct{}

// NewAPI returns the user32-backed display API.
func NewAPI() (API, error) {
	if err := procChangeDisplaySettingsExW.Find(); err != nil {
		return nil, fmt.Errorf("load ChangeDisplaySettingsExW: %w", err)
	}
	return &WinAPI{}, nil
}

// EnumDevice returns the display device at index.
func (w *WinAPI) EnumDevice(index int) (Device, bool) {
	var dd displayDevice
	dd.Cb = uint32(unsafe.Sizeof(dd))
	r1, _, _ := procEnumDisplayDevicesW.Call(
		0,
		uintptr(index),
		uintptr(unsafe.Pointer(&dd)),
		0,
	)
	if r1 == 0 {
		return Device{}, false
	}
	return Device{
		Index:      index,
		Name:       windows.UTF16ToString(dd.DeviceName[:]),
		String:     windows.UTF16ToString(dd.DeviceString[:]),
		StateFlags: dd.StateFlags,
	}, true
}

// CurrentMode returns the active mode of dev.
func (w *WinAPI) CurrentMode(dev Device) (Mode, error) {
	name, err := windows.UTF16PtrFromString(dev.Name)
	if err != nil {
		return Mode{}, err
	}
	var dm devMode
	dm.DmSize = uint16(unsafe.Sizeof(dm))
	r1, _, callErr := procEnumDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(enumCurrentSettings),
		uintptr(unsafe.Pointer(&dm)),
		0,
	)
	if r1 == 0 {
		return Mode{}, fmt.Errorf("EnumDisplaySettingsExW %s: %w", dev.Name, callErr)
	}
	return modeFromDevMode(&dm), nil
}

// Apply commits m to dev.
func (w *WinAPI) Apply(dev Device, m Mode, flags ApplyFlags) Result {
	name, err := windows.UTF16PtrFromString(dev.Name)
	if err != nil {
		return ResultFailed
	}
	dm := devModeFromMode(m)
	r1, _, _ := procChangeDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(&dm)),
		0,
		uintptr(applyFlagBits(flags)),
		0,
	)
	return Result(int32(r1))
}

// modeFromDevMode copies the fields flipmon cares about out of a DEVMODEW.
func modeFromDevMode(dm *devMode) Mode {
	return Mode{
		Width:       dm.DmPelsWidth,
		Height:      dm.DmPelsHeight,
		Orientation: Orientation(dm.DmDisplayOrientation),
		Position:    Point{X: dm.DmPosition.X, Y: dm.DmPosition.Y},
		Frequency:   dm.DmDisplayFrequency,
		BitsPerPel:  dm.DmBitsPerPel,
	}
}

// devModeFromMode builds a DEVMODEW whose DmFields names only the fields set from m.
func devModeFromMode(m Mode) devMode {
	var dm devMode
	dm.DmSize = uint16(unsafe.Sizeof(dm))
	dm.DmPelsWidth = m.Width
	dm.DmPelsHeight = m.Height
	dm.DmDisplayOrientation = uint32(m.Orientation)
	dm.DmPosition = win.POINT{X: m.Position.X, Y: m.Position.Y}
	dm.DmFields = dmPelsWidth | dmPelsHeight | dmDisplayOrientation | dmPosition
	if m.Frequency != 0 {
		dm.DmDisplayFrequency = m.Frequency
		dm.DmFields |= dmDisplayFrequency
	}
	if m.BitsPerPel != 0 {
		dm.DmBitsPerPel = m.BitsPerPel
		dm.DmFields |= dmBitsPerPel
	}
	return dm
}

// applyFlagBits converts ApplyFlags to CDS_* bits.
func applyFlagBits(flags ApplyFlags) uint32 {
	var bits uint32
	if flags.UpdateRegistry {
		bits |= cdsUpdateRegistry
	}
	if flags.Test {
		bits |= cdsTest
	}
	return bits
}
