package toggle

import (
	"fmt"

	"github.com/frudas24/flipmon/internal/display"
)

const (
	// MsgSuccess is printed when the mode was applied.
	MsgSuccess = "Display orientation changed successfully."
	// MsgBadMode is printed when the driver rejects the mode.
	MsgBadMode = "Invalid display mode specified."
	// MsgFailed is printed when the driver fails to apply the mode.
	MsgFailed = "Failed to change display settings."
	// MsgRestart is printed when the change needs a reboot.
	MsgRestart = "Display orientation changed; a restart is required to apply it."
)

// Message returns the operator-facing line for a commit result.
func Message(r display.Result) string {
	switch r {
	case display.ResultSuccessful:
		return MsgSuccess
	case display.ResultBadMode:
		return MsgBadMode
	case display.ResultFailed:
		return MsgFailed
	case display.ResultRestart:
		return MsgRestart
	default:
		return fmt.Sprintf("Unexpected result from ChangeDisplaySettingsExW: %d", int32(r))
	}
}
