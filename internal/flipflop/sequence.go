package flipflop

import (
	"fmt"
	"strings"
)

// DefaultAlphabet is the DNA alphabet.
const DefaultAlphabet = "ACGT"

// Alphabet maps base indices to single-byte symbols.
type Alphabet struct {
	symbols string
}

// NewAlphabet validates symbols: non-empty, single-byte, no repeats.
func NewAlphabet(symbols string) (Alphabet, error) {
	if symbols == "" {
		return Alphabet{}, fmt.Errorf("%w: empty", ErrAlphabet)
	}
	var seen [256]bool
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c >= 0x80 {
			return Alphabet{}, fmt.Errorf("%w: non-ASCII symbol at %d", ErrAlphabet, i)
		}
		if seen[c] {
			return Alphabet{}, fmt.Errorf("%w: repeated symbol %q", ErrAlphabet, c)
		}
		seen[c] = true
	}
	return Alphabet{symbols: symbols}, nil
}

// NBase is the number of bases.
func (a Alphabet) NBase() int {
	return len(a.symbols)
}

// Symbol returns the symbol of a state; flip and flop states share it.
func (a Alphabet) Symbol(state int) byte {
	return a.symbols[state%len(a.symbols)]
}

// String returns the symbols in base order.
func (a Alphabet) String() string {
	return a.symbols
}

// PathToSequence converts a state path into bases.
//
// The first state always emits. Afterwards a base is emitted each time the
// state changes, so flip to flop of the same base is a repeat of that base.
func PathToSequence(path []int, alphabet Alphabet) (string, error) {
	nstate := 2 * alphabet.NBase()
	var sb strings.Builder
	sb.Grow(len(path))
	for i, st := range path {
		if st < 0 || st >= nstate {
			return "", fmt.Errorf("%w: state %d at %d", ErrPathState, st, i)
		}
		if i == 0 || st != path[i-1] {
			sb.WriteByte(alphabet.Symbol(st))
		}
	}
	return sb.String(), nil
}

// Call is a decoded read.
type Call struct {
	Sequence string
	Path     []int
	Score    float32
}

// Basecall decodes the best path through score and converts it to bases.
// The alphabet fixes nbase; the block count follows from len(score).
func Basecall(score []float32, alphabet Alphabet) (Call, error) {
	nblock, err := BlockCount(score, alphabet.NBase())
	if err != nil {
		return Call{}, fmt.Errorf("basecall: %w", err)
	}
	res, err := Viterbi(score, alphabet.NBase(), nblock)
	if err != nil {
		return Call{}, fmt.Errorf("basecall: %w", err)
	}
	seq, err := PathToSequence(res.Path, alphabet)
	if err != nil {
		return Call{}, fmt.Errorf("basecall: %w", err)
	}
	return Call{Sequence: seq, Path: res.Path, Score: res.Score}, nil
}
