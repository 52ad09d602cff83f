package microrl

// InsertByte is the single entry point for feeding input to the Editor,
// one byte at a time — from a UART RX interrupt, a pty, a serial port,
// whatever the caller's byte source is (see §1; the byte source itself
// is out of scope for this package). It dispatches control bytes to
// editing operations, feeds bytes to the escape-sequence sub-machine
// while one is in progress, and inserts everything else as literal text.
func (e *Editor) InsertByte(b byte) {
	debugPrintf("insert: %s\n", debugByte(b))

	if e.escSeqEnabled && e.escapeActive {
		if e.stepEscape(b) {
			e.escapeActive = false
		}
		return
	}

	if b == keyCR || b == keyLF {
		// CR and LF each trigger a newline on their own, but a CRLF or
		// LFCR pair from the wire must only trigger one (§4.2).
		var companion byte = keyCR
		if b == keyCR {
			companion = keyLF
		}
		if e.lastEndl == companion {
			e.lastEndl = 0
		} else {
			e.lastEndl = b
			e.newLineHandler()
		}
		return
	}
	e.lastEndl = 0

	switch b {
	case keyHT:
		e.getCompletion()

	case keyESC:
		if e.escSeqEnabled {
			e.escapeActive = true
			e.escState = escNone
		}

	case keyNAK: // ^U: erase from cursor to start of line
		if e.cursor > 0 {
			e.backspace(e.cursor)
		}
		e.printLine(0, true)

	case keyVT: // ^K: erase from cursor to end of line
		e.emitString("\x1b[K")
		e.flush()
		e.cmdlen = e.cursor

	case keyENQ: // ^E: move to end of line
		e.moveCursor(e.cmdlen - e.cursor)
		e.flush()
		e.cursor = e.cmdlen

	case keySOH: // ^A: move to start of line
		e.moveCursor(-e.cursor)
		e.flush()
		e.cursor = 0

	case keyACK: // ^F: move right
		if e.cursor < e.cmdlen {
			e.moveCursor(1)
			e.flush()
			e.cursor++
		}

	case keySTX: // ^B: move left
		if e.cursor > 0 {
			e.moveCursor(-1)
			e.flush()
			e.cursor--
		}

	case keyDLE: // ^P: history up
		e.histSearch(HistUp)

	case keySO: // ^N: history down
		e.histSearch(HistDown)

	case keyDEL, keyBS: // Backspace
		if e.cursor > 0 {
			e.backspace(1)
			if e.cursor == e.cmdlen {
				e.terminalBackspace()
				e.flush()
			} else {
				e.printLine(e.cursor, true)
			}
		}

	case keyEOT: // ^D: delete forward
		e.deleteForward()
		e.printLine(e.cursor, false)

	case keyDC2: // ^R: redraw
		e.newline()
		e.printPrompt()
		e.printLine(0, false)

	case keyETX: // ^C
		if e.sigint != nil {
			e.sigint(e)
		}

	default:
		if (b == keySpace && e.cmdlen == 0) || isControlByte(b) {
			return
		}
		if err := e.InsertText([]byte{b}); err == nil {
			if e.echo == EchoOff {
				return
			}
			if e.cursor == e.cmdlen {
				out := b
				if e.echo == EchoOnce && e.passwordStart >= 0 && e.cursor >= e.passwordStart {
					out = '*'
				}
				e.emit([]byte{out})
				e.flush()
			} else {
				e.printLine(e.cursor-1, false)
			}
		}
	}
}

// histSearch restores a record from history in the given direction and,
// if one was found, repaints the command line from the start. History
// navigation is disabled outside EchoOn (§4.2.1).
func (e *Editor) histSearch(dir Direction) {
	if e.echo != EchoOn {
		return
	}
	var buf [CmdlineCap]byte
	n := e.hist.restore(buf[:], dir)
	if n < 0 {
		return
	}
	copy(e.cmdline[:], buf[:n])
	e.cmdline[n] = 0
	e.cursor = n
	e.cmdlen = n
	e.printLine(0, true)
}

// stepEscape advances the ANSI escape-sequence sub-machine by one byte
// and reports whether the sequence is now complete (see §4.2.1). Only
// CSI cursor moves (ESC[A/B/C/D) and the Home/End variants
// (ESC[7~, ESC[8~) are recognised; anything else silently ends the
// sequence without side effects.
func (e *Editor) stepEscape(b byte) bool {
	if b == '[' {
		e.escState = escBracket
		return false
	}

	if e.escState == escBracket {
		switch b {
		case 'A':
			e.histSearch(HistUp)
			return true
		case 'B':
			e.histSearch(HistDown)
			return true
		case 'C':
			if e.cursor < e.cmdlen {
				e.moveCursor(1)
				e.flush()
				e.cursor++
			}
			return true
		case 'D':
			if e.cursor > 0 {
				e.moveCursor(-1)
				e.flush()
				e.cursor--
			}
			return true
		case '7':
			e.escState = escHomePending
			return false
		case '8':
			e.escState = escEndPending
			return false
		}
		return true
	}

	if b == '~' {
		switch e.escState {
		case escHomePending:
			e.moveCursor(-e.cursor)
			e.flush()
			e.cursor = 0
			return true
		case escEndPending:
			e.moveCursor(e.cmdlen - e.cursor)
			e.flush()
			e.cursor = e.cmdlen
			return true
		}
	}

	return true
}

// newLineHandler runs on Enter: it saves the line to history, tokenizes
// it, invokes the executor, reprints the prompt, and clears the command
// line for the next one (§4.5).
func (e *Editor) newLineHandler() {
	e.newline()

	if e.cmdlen > 0 && e.echo == EchoOn {
		e.hist.save(e.cmdline[:e.cmdlen])
	}
	if e.echo == EchoOnce {
		e.echo = EchoOn
		e.passwordStart = -1
	}

	tokens, ok := e.tokenize(e.cmdlen)
	if !ok {
		if e.quotingEnabled {
			e.emitString(errTooManyTokensQuoted)
		} else {
			e.emitString(errTooManyTokens)
		}
		e.newline()
	} else if len(tokens) > 0 && e.execute != nil {
		argv := make([][]byte, len(tokens))
		for i, t := range tokens {
			argv[i] = e.tokenBytes(t)
		}
		e.execute(e, argv)
	}

	e.printPrompt()
	e.reset()
}
