package toggle

import (
	"log"
	"sync/atomic"
)

// debugLog controls whether verbose toggle logs are emitted.
var debugLog atomic.Bool

// SetDebugLogging enables/disables verbose toggle logs.
func SetDebugLogging(enabled bool) {
	debugLog.Store(enabled)
}

// debugf logs only when debug logging is enabled.
func debugf(format string, args ...any) {
	if debugLog.Load() {
		log.Printf("debug: "+format, args...)
	}
}
