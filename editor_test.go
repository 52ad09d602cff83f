package microrl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mockSink is a minimal virtual terminal: it understands exactly the
// ANSI sequences the repaint logic in terminal.go emits (cursor left/
// right, erase-to-end-of-line, carriage return) and renders onto a
// single line, the way the teacher's prompt_test.go mockTerm renders
// onto a 2D grid. A single line suffices here because multi-line
// rendering is out of scope (see §1 non-goals).
type mockSink struct {
	line   []byte
	col    int
	events []string
}

func newMockSink() *mockSink { return &mockSink{} }

func (m *mockSink) write(e *Editor, p []byte) {
	for i := 0; i < len(p); i++ {
		b := p[i]
		switch {
		case b == '\r':
			m.col = 0
		case b == '\n':
			m.events = append(m.events, "newline")
			m.line = nil
			m.col = 0
		case b == 0x1b && i+1 < len(p) && p[i+1] == '[':
			j := i + 2
			start := j
			for j < len(p) && (p[j] >= '0' && p[j] <= '9') {
				j++
			}
			if j >= len(p) {
				return
			}
			n := 1
			if j > start {
				n = atoi(p[start:j])
			}
			switch p[j] {
			case 'C':
				m.col += n
			case 'D':
				m.col -= n
			case 'K':
				if m.col < len(m.line) {
					m.line = m.line[:m.col]
				}
			}
			i = j
		default:
			for m.col >= len(m.line) {
				m.line = append(m.line, 0)
			}
			m.line[m.col] = b
			m.col++
		}
	}
}

func atoi(b []byte) int {
	n := 0
	for _, c := range b {
		n = n*10 + int(c-'0')
	}
	return n
}

func (m *mockSink) String() string { return string(m.line) }

func newTestEditor(t *testing.T, opts ...Option) (*Editor, *mockSink) {
	t.Helper()
	sink := newMockSink()
	e, err := New(sink.write, opts...)
	require.NoError(t, err)
	return e, sink
}

func feed(e *Editor, s string) {
	for i := 0; i < len(s); i++ {
		e.InsertByte(s[i])
	}
}

// Scenario 1: simple execute (§8.1).
func TestScenarioSimpleExecute(t *testing.T) {
	e, _ := newTestEditor(t)
	var got [][]byte
	e.SetExecutor(func(e *Editor, argv [][]byte) int {
		// argv borrows cmdline, which is zeroed once the call returns.
		got = append([][]byte(nil), argv...)
		for i := range got {
			got[i] = append([]byte(nil), got[i]...)
		}
		return 0
	})

	feed(e, "hi\n")

	require.Len(t, got, 1)
	require.Equal(t, "hi", string(got[0]))
	require.Equal(t, 0, e.Cursor())
	require.Equal(t, 0, e.Len())
	for _, b := range e.cmdline {
		require.Equal(t, byte(0), b)
	}
}

// Scenario 2: backspace (§8.2).
func TestScenarioBackspace(t *testing.T) {
	e, _ := newTestEditor(t)
	feed(e, "abc")
	e.InsertByte(keyBS)
	e.InsertByte(keyBS)

	require.Equal(t, "a", string(e.Line()))
	require.Equal(t, 1, e.Len())
	require.Equal(t, 1, e.Cursor())
}

// Scenario 3: arrow-left then insert (§8.3).
func TestScenarioArrowLeftInsert(t *testing.T) {
	e, _ := newTestEditor(t)
	feed(e, "abc")
	feed(e, "\x1b[D") // ESC [ D : move left
	feed(e, "x")

	require.Equal(t, "abxc", string(e.Line()))
	require.Equal(t, 4, e.Len())
	require.Equal(t, 3, e.Cursor())
}

// Scenario 4: history navigation (§8.4).
func TestScenarioHistory(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetExecutor(func(e *Editor, argv [][]byte) int { return 0 })

	feed(e, "one\n")
	feed(e, "two\n")

	feed(e, "\x1b[A")
	require.Equal(t, "two", string(e.Line()))
	require.Equal(t, e.Len(), e.Cursor())

	feed(e, "\x1b[A")
	require.Equal(t, "one", string(e.Line()))

	feed(e, "\x1b[B")
	require.Equal(t, "two", string(e.Line()))

	feed(e, "\x1b[B")
	require.Equal(t, "", string(e.Line()))
}

// Scenario 5: quoted tokenization (§8.5).
func TestScenarioQuotedTokenization(t *testing.T) {
	e, _ := newTestEditor(t)
	var got [][]byte
	e.SetExecutor(func(e *Editor, argv [][]byte) int {
		got = append([][]byte(nil), argv...)
		for i := range got {
			got[i] = append([]byte(nil), got[i]...)
		}
		return 0
	})

	feed(e, `set wifi 'Home Net' pw`)
	e.InsertByte(keyLF)

	require.Len(t, got, 4)
	require.Equal(t, "set", string(got[0]))
	require.Equal(t, "wifi", string(got[1]))
	require.Equal(t, "Home Net", string(got[2]))
	require.Equal(t, "pw", string(got[3]))
}

// Scenario 6: completion with a shared prefix (§8.6).
func TestScenarioCompletionSharedPrefix(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetCompleter(func(e *Editor, argv [][]byte) [][]byte {
		return [][]byte{[]byte("hello"), []byte("help")}
	})

	feed(e, "h")
	e.InsertByte(keyHT)

	require.Equal(t, "hel", string(e.Line()))
	require.Equal(t, 3, e.Cursor())
}

// P6: completion with exactly one candidate extends the buffer and
// leaves the cursor at the new end, with a trailing space appended.
func TestCompletionSingleCandidateAppendsSpace(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetCompleter(func(e *Editor, argv [][]byte) [][]byte {
		return [][]byte{[]byte("select")}
	})

	feed(e, "sel")
	e.InsertByte(keyHT)

	require.Equal(t, "select ", string(e.Line()))
	require.Equal(t, e.Len(), e.Cursor())
}

// P7: CRLF and LFCR pairs trigger exactly one execute call.
func TestCRLFPairsCoalesce(t *testing.T) {
	e, _ := newTestEditor(t)
	n := 0
	e.SetExecutor(func(e *Editor, argv [][]byte) int { n++; return 0 })

	feed(e, "a\r\n")
	feed(e, "b\n\r")
	feed(e, "c\r")
	feed(e, "d\n")

	require.Equal(t, 4, n)
}

func TestInsertCapacityOverflow(t *testing.T) {
	e, _ := newTestEditor(t)
	long := make([]byte, CmdlineCap)
	for i := range long {
		long[i] = 'x'
	}
	err := e.InsertText(long)
	require.ErrorIs(t, err, ErrCapacity)
	require.Equal(t, 0, e.Len())
}

func TestTooManyTokensReportsError(t *testing.T) {
	e, _ := newTestEditor(t)
	executed := false
	e.SetExecutor(func(e *Editor, argv [][]byte) int { executed = true; return 0 })

	for i := 0; i < TokenCap+1; i++ {
		feed(e, "a ")
	}
	e.InsertByte(keyLF)

	require.False(t, executed)
}

func TestEchoOnceMasksInput(t *testing.T) {
	e, sink := newTestEditor(t)
	e.SetEcho(EchoOnce)

	feed(e, "secret")

	require.Equal(t, "secret", string(e.Line()))
	require.Equal(t, "******", sink.String())
}

func TestEchoOffSuppressesOutput(t *testing.T) {
	e, sink := newTestEditor(t)
	e.SetEcho(EchoOff)

	feed(e, "quiet")

	require.Equal(t, "quiet", string(e.Line()))
	require.Equal(t, "", sink.String())
}

func TestSigintHandlerInvoked(t *testing.T) {
	e, _ := newTestEditor(t)
	called := false
	e.SetSigintHandler(func(e *Editor) { called = true })

	e.InsertByte(keyETX)

	require.True(t, called)
}

// P1: cursor and length stay within bounds across a long random-ish walk
// of edits.
func TestCursorBoundsInvariant(t *testing.T) {
	e, _ := newTestEditor(t)
	ops := "abc\x1b[Dxyz\bq\x1b[D\x1b[D\x1b[Cw"
	for i := 0; i < len(ops); i++ {
		e.InsertByte(ops[i])
		require.GreaterOrEqual(t, e.Cursor(), 0)
		require.LessOrEqual(t, e.Cursor(), e.Len())
		require.Less(t, e.Len(), CmdlineCap)
	}
}
