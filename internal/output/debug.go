package output

import "sync/atomic"

var debugMode atomic.Bool

// SetDebugMode enables or disables Debug lines on every Output.
func SetDebugMode(enabled bool) {
	debugMode.Store(enabled)
}

func IsDebugMode() bool {
	return debugMode.Load()
}
