package microrl

// getCompletion runs on Tab: it tokenizes up to the cursor, asks the
// completer for candidates, and extends the current token. With one
// candidate the token is completed and a trailing space appended; with
// several, all candidates are listed on one new line separated by
// spaces, the prompt is reprinted, and the token is extended to their
// longest common prefix with no trailing space (§4.4).
func (e *Editor) getCompletion() {
	if e.complete == nil {
		return
	}

	tokens, ok := e.tokenize(e.cursor)
	if !ok {
		return
	}

	// A cursor sitting right after a separator starts a new, empty token
	// that the tokenizer itself can't see (it only sees bytes, not the
	// cursor).
	atTokenStart := e.cursor == 0 || e.cmdline[e.cursor-1] == 0
	var lastTok []byte
	if atTokenStart {
		lastTok = nil
		tokens = append(tokens, Token{start: e.cursor, end: e.cursor})
	} else {
		lastTok = e.tokenBytes(tokens[len(tokens)-1])
	}

	argv := make([][]byte, len(tokens))
	for i, t := range tokens {
		argv[i] = e.tokenBytes(t)
	}
	candidates := e.complete(e, argv)
	e.restoreQuotes()

	if len(candidates) == 0 {
		return
	}

	pos := e.cursor
	var extend []byte
	appendSpace := false

	if len(candidates) == 1 {
		extend = candidates[0]
		appendSpace = true
	} else {
		n := commonPrefixLen(candidates)
		extend = candidates[0][:n]
		e.newline()
		for _, c := range candidates {
			e.emit(c)
			e.emitString(" ")
		}
		e.newline()
		e.printPrompt()
		pos = 0
	}

	if len(extend) > 0 {
		if len(extend) > len(lastTok) {
			_ = e.InsertText(extend[len(lastTok):])
		}
		if appendSpace {
			_ = e.InsertText([]byte(" "))
		}
	}
	e.printLine(pos, false)
}

// commonPrefixLen returns the length of the longest common prefix shared
// by every candidate, bounded by the shortest candidate's length. This
// is the Go-slice rendering of the original's NULL-terminated-array walk
// (see §9's resolution of the common_len sentinel question).
func commonPrefixLen(candidates [][]byte) int {
	shortest := candidates[0]
	for _, c := range candidates {
		if len(c) < len(shortest) {
			shortest = c
		}
	}
	for i := 0; i < len(shortest); i++ {
		for _, c := range candidates {
			if c[i] != shortest[i] {
				return i
			}
		}
	}
	return len(shortest)
}
