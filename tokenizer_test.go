package microrl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newRawEditor(t *testing.T, opts ...Option) *Editor {
	t.Helper()
	e, err := New(func(e *Editor, p []byte) {}, opts...)
	require.NoError(t, err)
	return e
}

func TestTokenizeSplitsOnSeparators(t *testing.T) {
	e := newRawEditor(t)
	require.NoError(t, e.InsertText([]byte("set wifi pw")))

	tokens, ok := e.tokenize(e.cmdlen)
	require.True(t, ok)
	require.Len(t, tokens, 3)
	require.Equal(t, "set", string(e.tokenBytes(tokens[0])))
	require.Equal(t, "wifi", string(e.tokenBytes(tokens[1])))
	require.Equal(t, "pw", string(e.tokenBytes(tokens[2])))
}

func TestTokenizeQuotedSpanWithEmbeddedSpace(t *testing.T) {
	e := newRawEditor(t)
	require.NoError(t, e.InsertText([]byte(`set wifi 'Home Net' pw`)))

	tokens, ok := e.tokenize(e.cmdlen)
	require.True(t, ok)
	require.Len(t, tokens, 4)
	require.Equal(t, "Home Net", string(e.tokenBytes(tokens[2])))
}

// P5: tokenize followed by restore leaves cmdline bytewise identical,
// for an unquoted line (no destructive interior rewrite applies).
func TestTokenizeRestoreRoundTripUnquoted(t *testing.T) {
	e := newRawEditor(t)
	require.NoError(t, e.InsertText([]byte("alpha beta gamma")))
	before := append([]byte(nil), e.cmdline[:e.cmdlen]...)

	_, ok := e.tokenize(e.cmdlen)
	require.True(t, ok)
	e.restoreQuotes()

	require.Equal(t, before, e.cmdline[:e.cmdlen])
}

func TestTokenizeUnterminatedQuoteOverflows(t *testing.T) {
	e := newRawEditor(t)
	require.NoError(t, e.InsertText([]byte(`set 'unterminated`)))

	_, ok := e.tokenize(e.cmdlen)
	require.False(t, ok)
}

func TestTokenizeTooManyTokensOverflows(t *testing.T) {
	e := newRawEditor(t)
	require.NoError(t, e.InsertText([]byte("a b c d e f g h i")))

	_, ok := e.tokenize(e.cmdlen)
	require.False(t, ok)
}

func TestTokenizeQuotingDisabledTreatsQuotesLiterally(t *testing.T) {
	e := newRawEditor(t, WithQuoting(false))
	require.NoError(t, e.InsertText([]byte(`'a b'`)))

	tokens, ok := e.tokenize(e.cmdlen)
	require.True(t, ok)
	require.Len(t, tokens, 2)
	require.Equal(t, "'a", string(e.tokenBytes(tokens[0])))
	require.Equal(t, "b'", string(e.tokenBytes(tokens[1])))
}
