package internal

import (
	"io"
	"log"
)

var verbose bool

// InitLogging routes the standard logger to w with microsecond timestamps.
// Debugf output is only emitted when debug is set.
func InitLogging(w io.Writer, debug bool) {
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	verbose = debug
}

// Debugf logs only in verbose mode
func Debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}
