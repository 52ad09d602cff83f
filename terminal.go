package microrl

import "fmt"

// flush drains the batching buffer to the print sink. Skipped when there
// is nothing buffered so a sink with visible side effects (a real write
// syscall) isn't invoked needlessly.
func (e *Editor) flush() {
	if e.out.Len() == 0 {
		return
	}
	e.print(e, e.out.Bytes())
	e.out.Reset()
}

// emit appends p to the batching buffer, flushing early once the buffer
// holds printBufferLen bytes or more — the Go analogue of the original's
// stack-allocated PRINT_BUFFER_LEN scratch array.
func (e *Editor) emit(p []byte) {
	e.out.Write(p)
	if e.out.Len() >= e.printBufferLen {
		e.flush()
	}
}

func (e *Editor) emitString(s string) {
	e.emit([]byte(s))
}

func (e *Editor) printPrompt() {
	e.emitString(e.prompt)
	e.flush()
}

// newline emits the configured line ending.
func (e *Editor) newline() {
	e.emitString(string(e.endl))
	e.flush()
}

// terminalBackspace erases the character immediately left of the cursor
// when the cursor sits at the end of the line — a cheaper repaint than a
// full printLine from the new cursor position.
func (e *Editor) terminalBackspace() {
	e.emitString("\x1b[D \x1b[D")
}

// generateMoveCursor renders the ESC[<n>C / ESC[<n>D cursor-move sequence
// for offset, clamped to +/-999 the way the original's char[16] scratch
// buffer implicitly bounded it. offset == 0 renders to the empty string.
func generateMoveCursor(offset int) string {
	if offset == 0 {
		return ""
	}
	c := byte('C')
	if offset < 0 {
		offset = -offset
		c = 'D'
	}
	if offset > 999 {
		offset = 999
	}
	return fmt.Sprintf("\x1b[%d%c", offset, c)
}

func (e *Editor) moveCursor(offset int) {
	if offset == 0 {
		return
	}
	e.emitString(generateMoveCursor(offset))
}

// printLine re-renders cmdline[start:cmdlen], substituting 0x00 separator
// bytes with spaces, then erases to end of line and repositions the
// cursor. When resetCursor is true the cursor is first parked at column
// promptWidth+start, either via a single '\r' (when the carriage-return
// optimisation is enabled) or via a large left-move fallback.
//
// Repaint is a no-op when echo is off. When echo is EchoOnce, bytes from
// passwordStart onward are rendered as '*' regardless of which repaint
// path triggered this call — invariant 5 in §3 requires that to hold
// after every public call returns, not just on the initial keystroke.
func (e *Editor) printLine(start int, resetCursor bool) {
	if e.echo == EchoOff {
		return
	}

	if resetCursor {
		if e.crOptimization {
			e.emitString("\r")
			e.moveCursor(e.promptWidth + start)
		} else {
			e.moveCursor(-(CmdlineCap + e.promptWidth + 2))
			e.moveCursor(e.promptWidth + start)
		}
	}

	masked := e.echo == EchoOnce && e.passwordStart >= 0
	for i := start; i < e.cmdlen; i++ {
		b := e.cmdline[i]
		switch {
		case b == 0:
			b = ' '
		case masked && i >= e.passwordStart:
			b = '*'
		}
		e.emit([]byte{b})
	}

	e.emitString("\x1b[K")
	e.moveCursor(e.cursor - e.cmdlen)
	e.flush()
}
