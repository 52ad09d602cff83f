package microrl

import "bytes"

// ExecuteFunc is invoked on a completed line. argv is a slice of borrowed
// token views into the editor's internal buffer — valid only for the
// duration of the call — and must be treated as read-only. Its return
// value is not consumed by the Editor.
type ExecuteFunc func(e *Editor, argv [][]byte) int

// CompleteFunc is invoked on Tab. argv holds the tokens to the left of the
// cursor (see §4.4). The returned slice holds candidate strings; a nil or
// empty slice means "no completions found." The callback owns the
// returned byte slices, which must remain valid until the callback is
// next invoked.
type CompleteFunc func(e *Editor, argv [][]byte) [][]byte

// PrintFunc emits raw bytes to the terminal. It must not fail visibly —
// Editor never inspects a return value because there isn't one.
type PrintFunc func(e *Editor, p []byte)

// SigintFunc is invoked synchronously when ETX (Ctrl+C) is read. It is an
// application hook, not a cancellation primitive.
type SigintFunc func(e *Editor)

// Token is a borrowed (start, end) view into Editor.cmdline, produced
// by the tokenizer. It replaces the original C implementation's
// char*-into-cmdline token references (see SPEC_FULL.md §3).
type Token struct {
	start, end int
}

// quoteMark records where the tokenizer overwrote a closing quote
// character with 0x00, so restoreQuotes can undo it. -1 marks an unused
// slot (the original C code uses a NULL pointer for the same purpose).
type quoteMark struct {
	begin, end int
	ch         byte
}

// Editor is the single stateful line-editor instance. The command line,
// history ring and quote table are fixed-size arrays inside the struct;
// the output batching buffer is a bytes.Buffer, whose backing storage is
// allocated on the heap as it grows.
//
// Editor is not safe for concurrent use, and none of its callbacks may
// reentrantly call InsertByte on the same instance (see §5).
type Editor struct {
	cmdline [CmdlineCap]byte
	cmdlen  int
	cursor  int

	prompt      string
	promptWidth int

	echo          EchoMode
	passwordStart int

	escapeActive bool
	escState     escapeState

	lastEndl byte

	hist ring

	quotes [QuotedTokenCap]quoteMark

	execute  ExecuteFunc
	complete CompleteFunc
	print    PrintFunc
	sigint   SigintFunc

	UserData any

	endl              Endl
	printBufferLen    int
	quotingEnabled    bool
	escSeqEnabled     bool
	crOptimization    bool
	printPromptOnInit bool

	out bytes.Buffer
}

// New constructs an Editor. sink is required; it is the only mandatory
// collaborator (see §1's OUT OF SCOPE list — the byte source, help text,
// and terminal mode setup are the caller's responsibility, but the print
// sink is how the core talks back to the terminal at all).
func New(sink PrintFunc, opts ...Option) (*Editor, error) {
	if sink == nil {
		return nil, ErrParam
	}

	e := &Editor{
		print:          sink,
		prompt:         DefaultPrompt,
		promptWidth:    DefaultPromptWidth,
		echo:           EchoOn,
		passwordStart:  -1,
		endl:           EndlLF,
		printBufferLen: PrintBufferLen,
		quotingEnabled: true,
		escSeqEnabled:  true,
		crOptimization: true,
	}
	e.resetQuotes()

	for _, opt := range opts {
		opt.apply(e)
	}

	if e.printPromptOnInit {
		e.printPrompt()
	}

	debugPrintf("init: prompt=%q width=%d\n", e.prompt, e.promptWidth)
	return e, nil
}

// SetExecutor records the callback invoked on a completed line.
func (e *Editor) SetExecutor(fn ExecuteFunc) { e.execute = fn }

// SetCompleter records the callback invoked on Tab. When unset, Tab is a
// no-op.
func (e *Editor) SetCompleter(fn CompleteFunc) { e.complete = fn }

// SetSigintHandler records the callback invoked on Ctrl+C. When unset,
// Ctrl+C is a no-op.
func (e *Editor) SetSigintHandler(fn SigintFunc) { e.sigint = fn }

// SetEcho changes the echo mode. Under EchoOnce, masking starts at the
// line length as it stands when the next byte is inserted (the end of
// the line, whatever the cursor position); it is cleared back to EchoOn
// by the new-line handler (§4.5).
func (e *Editor) SetEcho(mode EchoMode) {
	e.echo = mode
	if mode != EchoOnce {
		e.passwordStart = -1
	}
}

// Cursor returns the current cursor position within the command line.
func (e *Editor) Cursor() int { return e.cursor }

// Len returns the number of meaningful bytes currently in the command
// line.
func (e *Editor) Len() int { return e.cmdlen }

// Line returns the current command-line contents, with interior 0x00
// separators rendered back as spaces. The returned slice is a copy; the
// live buffer is never exposed mutably outside of token callbacks.
func (e *Editor) Line() []byte {
	out := make([]byte, e.cmdlen)
	for i := 0; i < e.cmdlen; i++ {
		if e.cmdline[i] == 0 {
			out[i] = ' '
		} else {
			out[i] = e.cmdline[i]
		}
	}
	return out
}

// InsertText inserts len(text) bytes at the cursor, shifting the tail
// right. Each inserted space (0x20) is stored as 0x00 to serve as the
// in-place token separator (see §4.1). Returns ErrCapacity if the
// insertion would exceed CmdlineCap-1 bytes and performs no mutation in
// that case.
func (e *Editor) InsertText(text []byte) error {
	if e.cmdlen+len(text) >= CmdlineCap {
		return ErrCapacity
	}

	if e.echo == EchoOnce && e.passwordStart == -1 {
		e.passwordStart = e.cmdlen
	}

	copy(e.cmdline[e.cursor+len(text):e.cmdlen+len(text)], e.cmdline[e.cursor:e.cmdlen])
	for i, b := range text {
		if b == keySpace {
			b = 0
		}
		e.cmdline[e.cursor+i] = b
	}
	e.cursor += len(text)
	e.cmdlen += len(text)
	e.cmdline[e.cmdlen] = 0
	return nil
}

func (e *Editor) backspace(n int) {
	if e.cursor < n {
		return
	}
	copy(e.cmdline[e.cursor-n:], e.cmdline[e.cursor:e.cmdlen])
	e.cursor -= n
	e.cmdlen -= n
	e.cmdline[e.cmdlen] = 0
}

func (e *Editor) deleteForward() {
	if e.cursor >= e.cmdlen {
		return
	}
	copy(e.cmdline[e.cursor:], e.cmdline[e.cursor+1:e.cmdlen])
	e.cmdlen--
	e.cmdline[e.cmdlen] = 0
}

func (e *Editor) resetQuotes() {
	for i := range e.quotes {
		e.quotes[i] = quoteMark{begin: -1, end: -1}
	}
}

// reset clears the command line, cursor, and history navigation cursor —
// the bookkeeping step at the end of the new-line handler (§4.5).
func (e *Editor) reset() {
	for i := range e.cmdline {
		e.cmdline[i] = 0
	}
	e.cmdlen = 0
	e.cursor = 0
	e.hist.cur = 0
}
