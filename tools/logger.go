package tools

import (
	"log"
	"time"
)

var isEnabled = true
var printTimestamp = true

func EnableLogger() {
	isEnabled = true
}

// DisableLogger suppresses user-facing progress output. Diagnostic glog
// output is unaffected.
func DisableLogger() {
	isEnabled = false
}

func EnableLoggerTimestamp() {
	printTimestamp = true
}

func DisableLoggerTimestamp() {
	printTimestamp = false
}

// LogOutput prints a user-facing progress line, honoring the silent and
// timestamp switches.
func LogOutput(val ...interface{}) {
	if !isEnabled {
		return
	}
	if printTimestamp {
		val = append([]interface{}{"[" + time.Now().Format("2006-01-02 15:04:05.000") + "]"}, val...)
	}
	log.Println(val...)
}
