package microrl

import "errors"

// ErrParam is returned by New when a constructor argument is invalid.
var ErrParam = errors.New("microrl: invalid parameter")

// ErrCapacity is returned by InsertText when the requested insertion would
// overflow the command-line buffer. The byte dispatcher swallows this error
// silently per the documented overflow policy; callers driving InsertText
// directly should check it.
var ErrCapacity = errors.New("microrl: command line capacity exceeded")

const (
	errTooManyTokens       = "ERROR:too many tokens"
	errTooManyTokensQuoted = "ERROR:too many tokens or invalid quoting"
)
