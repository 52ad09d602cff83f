package microrl

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var dbg = struct {
	sync.Once
	w   io.WriteCloser
	err error
}{}

func initDebug() {
	path := os.Getenv("MICRORL_DEBUG")
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		dbg.err = err
		return
	}
	dbg.w = f
}

func debugPrintf(format string, args ...interface{}) {
	dbg.Do(initDebug)
	if dbg.w == nil {
		return
	}
	fmt.Fprintf(dbg.w, format, args...)
}

// debugByte names a control byte the way the original's KEY_* constants
// read in a debugger, for use in debugPrintf call sites.
func debugByte(b byte) string {
	switch b {
	case keyNUL:
		return "<NUL>"
	case keyHT:
		return "<TAB>"
	case keyLF:
		return "<LF>"
	case keyCR:
		return "<CR>"
	case keyESC:
		return "<ESC>"
	case keyDEL:
		return "<DEL>"
	default:
		if isControlByte(b) {
			return fmt.Sprintf("Control-%c", b+0x60)
		}
		return string(b)
	}
}
