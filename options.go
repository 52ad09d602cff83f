package microrl

// Option configures an Editor at construction time, the way the teacher's
// Option/apply pair configures a Prompt. Compile-time sizing (buffer
// capacities) stays in config.go as Go consts; Options only tune runtime
// values that live within those bounds.
type Option interface {
	apply(e *Editor)
}

type optionFunc func(e *Editor)

func (f optionFunc) apply(e *Editor) { f(e) }

// WithPrompt sets the prompt string and its visible width. width must be
// supplied separately because the prompt may contain non-printing ANSI
// colour codes (see §3).
func WithPrompt(prompt string, width int) Option {
	return optionFunc(func(e *Editor) {
		e.prompt = prompt
		e.promptWidth = width
	})
}

// WithEndl sets the line ending emitted on newline events.
func WithEndl(endl Endl) Option {
	return optionFunc(func(e *Editor) {
		e.endl = endl
	})
}

// WithPrintBufferLen overrides the batching buffer threshold used while
// repainting. Panics if n < 16, mirroring the _PRINT_BUFFER_LEN comment
// in the original config header.
func WithPrintBufferLen(n int) Option {
	if n < 16 {
		panic("microrl: WithPrintBufferLen requires n >= 16")
	}
	return optionFunc(func(e *Editor) {
		e.printBufferLen = n
	})
}

// WithQuoting enables or disables single/double-quoted token spans in the
// tokenizer.
func WithQuoting(enabled bool) Option {
	return optionFunc(func(e *Editor) {
		e.quotingEnabled = enabled
	})
}

// WithEscapeSequences enables or disables ANSI escape-sequence decoding
// (arrow keys, Home, End). When disabled, only the Ctrl-key equivalents
// documented in §4.2 work.
func WithEscapeSequences(enabled bool) Option {
	return optionFunc(func(e *Editor) {
		e.escSeqEnabled = enabled
	})
}

// WithCarriageReturnOptimisation selects between the compact single-'\r'
// cursor reset and the large-left-move fallback described in §4.7.
func WithCarriageReturnOptimisation(enabled bool) Option {
	return optionFunc(func(e *Editor) {
		e.crOptimization = enabled
	})
}

// WithPrintPromptOnInit causes New to emit the prompt immediately, rather
// than waiting for the first newline.
func WithPrintPromptOnInit(enabled bool) Option {
	return optionFunc(func(e *Editor) {
		e.printPromptOnInit = enabled
	})
}
