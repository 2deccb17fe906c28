package flipflop

import "errors"

var (
	// ErrBaseCount indicates nbase < 1.
	ErrBaseCount = errors.New("flipflop: nbase must be at least 1")

	// ErrBlockCount indicates nblock < 0.
	ErrBlockCount = errors.New("flipflop: nblock must be non-negative")

	// ErrNilBuffer indicates a missing score or table buffer.
	ErrNilBuffer = errors.New("flipflop: nil buffer")

	// ErrScoreSize indicates a score buffer shorter than nblock*ntrans.
	ErrScoreSize = errors.New("flipflop: score buffer too small")

	// ErrTableSize indicates a table buffer shorter than (nblock+1)*nstate.
	ErrTableSize = errors.New("flipflop: table buffer too small")

	// ErrTransitionCount indicates a transition count that is not 2n(n+1) for any n.
	ErrTransitionCount = errors.New("flipflop: transition count does not match any alphabet size")

	// ErrAlphabet indicates an empty or repeating alphabet.
	ErrAlphabet = errors.New("flipflop: invalid alphabet")

	// ErrPathState indicates a path state outside [0, nstate).
	ErrPathState = errors.New("flipflop: path state out of range")
)
