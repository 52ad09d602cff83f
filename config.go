package microrl

// Compile-time sizing constants. These back fixed-size arrays embedded in
// Editor, so — per the no-dynamic-allocation-on-the-fast-path non-goal —
// they are Go consts rather than runtime fields. Options (options.go) may
// only tune a derived runtime value within these bounds.
const (
	// CmdlineCap is the size of the command-line buffer, one byte of which
	// is reserved for the trailing 0x00 terminator.
	CmdlineCap = 61

	// TokenCap is the maximum number of tokens the tokenizer will split a
	// line into before reporting overflow.
	TokenCap = 8

	// QuotedTokenCap is the maximum number of quoted spans per line.
	QuotedTokenCap = 2

	// HistCap is the size of the history ring buffer. The one-byte length
	// prefix used by the ring encoding caps this at 256.
	HistCap = 64

	// PrintBufferLen is the size of the stack-style batching buffer used
	// while repainting the command line. Must be at least 16.
	PrintBufferLen = 40

	// DefaultPrompt is the prompt printed when no WithPrompt option is
	// supplied.
	DefaultPrompt = "\x1b[32mIRin >\x1b[0m "

	// DefaultPromptWidth is the visible (non-escape-sequence) width of
	// DefaultPrompt.
	DefaultPromptWidth = 7
)

func init() {
	if HistCap > 256 {
		panic("microrl: HistCap must be <= 256, the ring length-prefix is one byte wide")
	}
	if PrintBufferLen < 16 {
		panic("microrl: PrintBufferLen must be >= 16")
	}
}

// Endl is the line ending an Editor emits on newline events.
type Endl string

// The four line endings the wire surface is allowed to use (see §6).
const (
	EndlLF   Endl = "\n"
	EndlCR   Endl = "\r"
	EndlCRLF Endl = "\r\n"
	EndlLFCR Endl = "\n\r"
)

// EchoMode controls how InsertByte renders typed bytes to the print sink.
type EchoMode int

const (
	// EchoOn renders typed bytes literally. This is the default.
	EchoOn EchoMode = iota
	// EchoOff suppresses all repaint output.
	EchoOff
	// EchoOnce masks bytes as '*' starting at the line length recorded at
	// the first insertion after ONCE was enabled, reverting to EchoOn on
	// the next newline.
	EchoOnce
)

// Direction selects which way hist.restore walks the ring.
type Direction int

const (
	// HistUp walks toward older entries.
	HistUp Direction = iota
	// HistDown walks toward newer entries.
	HistDown
)

// escapeState is the tagged-variant substate of the ANSI escape decoder
// (see §4.2.1 and the §9 design note recommending this shape).
type escapeState int

const (
	escNone escapeState = iota
	escBracket
	escHomePending
	escEndPending
)

// Control byte constants, named after their ASCII mnemonics the way the
// original C header names them (KEY_SOH, KEY_ETX, ...).
const (
	keyNUL = 0x00
	keySOH = 0x01 // ^A
	keySTX = 0x02 // ^B
	keyETX = 0x03 // ^C
	keyEOT = 0x04 // ^D
	keyENQ = 0x05 // ^E
	keyACK = 0x06 // ^F
	keyBEL = 0x07
	keyBS  = 0x08 // ^H
	keyHT  = 0x09 // Tab
	keyLF  = 0x0A
	keyVT  = 0x0B // ^K
	keyFF  = 0x0C
	keyCR  = 0x0D
	keySO  = 0x0E // ^N
	keySI  = 0x0F
	keyDLE = 0x10 // ^P
	keyDC1 = 0x11
	keyDC2 = 0x12 // ^R
	keyDC3 = 0x13
	keyDC4 = 0x14
	keyNAK = 0x15 // ^U
	keySYN = 0x16
	keyETB = 0x17
	keyCAN = 0x18
	keyEM  = 0x19
	keySUB = 0x1A
	keyESC = 0x1B
	keyFS  = 0x1C
	keyGS  = 0x1D
	keyRS  = 0x1E
	keyUS  = 0x1F

	keyDEL = 0x7F

	keySpace = 0x20
)

func isControlByte(b byte) bool {
	return b <= 0x1F
}
