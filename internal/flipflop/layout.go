package flipflop

import (
	"fmt"
	"math"
)

// Layout holds the dimensions derived from the alphabet size and the fixed
// transition index convention.
//
// Transitions of one block, for nbase = 4 (flip upper case, flop lower case):
//
//	         from A C G T a c g t
//	to A          0     ---     7
//	to C          8     ---    15
//	to G         16     ---    23
//	to T         24     ---    31
//	to flop(from) 32    ---    39
//
// The first nstate*nbase entries move into a flip state from any state. The
// last nstate entries move into the flop state of the source's base, either
// from the flip state (first nbase) or by staying in the flop state.
type Layout struct {
	NBase int
}

// NewLayout returns the layout for nbase bases.
func NewLayout(nbase int) (Layout, error) {
	if nbase < 1 {
		return Layout{}, fmt.Errorf("%w: got %d", ErrBaseCount, nbase)
	}
	return Layout{NBase: nbase}, nil
}

// NBaseFromNTrans recovers the alphabet size from a transition count by
// solving 2n(n+1) = ntrans.
func NBaseFromNTrans(ntrans int) (int, error) {
	if ntrans < 4 {
		return 0, fmt.Errorf("%w: %d", ErrTransitionCount, ntrans)
	}
	n := int(math.Round((math.Sqrt(float64(1+2*ntrans)) - 1) / 2))
	if 2*n*(n+1) != ntrans {
		return 0, fmt.Errorf("%w: %d", ErrTransitionCount, ntrans)
	}
	return n, nil
}

// NState is the number of states, one flip and one flop per base.
func (l Layout) NState() int {
	return 2 * l.NBase
}

// NTrans is the number of transitions per block.
func (l Layout) NTrans() int {
	return l.NState() * (l.NBase + 1)
}

// FlipIndex is the transition moving from fromState into flip state toBase.
func (l Layout) FlipIndex(toBase, fromState int) int {
	return toBase*l.NState() + fromState
}

// FlopIndex is the transition moving from fromState into its base's flop state.
func (l Layout) FlopIndex(fromState int) int {
	return l.NState()*l.NBase + fromState
}

// FlopTarget is the flop state reached from fromState.
func (l Layout) FlopTarget(fromState int) int {
	return l.NBase + fromState%l.NBase
}

// Transition returns the source and destination states of transition k.
func (l Layout) Transition(k int) (from, to int) {
	nstate := l.NState()
	flips := nstate * l.NBase
	if k < flips {
		return k % nstate, k / nstate
	}
	from = k - flips
	return from, l.FlopTarget(from)
}

// IsFlop reports whether state is a flop state.
func (l Layout) IsFlop(state int) bool {
	return state >= l.NBase
}

// Scores is a read-only row view over a flat [nblock][ntrans] score buffer.
type Scores struct {
	data   []float32
	stride int
	nblock int
}

// NewScores wraps data without copying. data must hold nblock*NTrans entries.
func (l Layout) NewScores(data []float32, nblock int) Scores {
	return Scores{data: data, stride: l.NTrans(), nblock: nblock}
}

// Block returns the transition scores of block blk.
func (s Scores) Block(blk int) []float32 {
	off := blk * s.stride
	return s.data[off : off+s.stride : off+s.stride]
}

// NBlock is the number of blocks.
func (s Scores) NBlock() int {
	return s.nblock
}

// Table is a row view over a flat [nblock+1][nstate] forward or backward table.
type Table struct {
	data   []float32
	stride int
	nrow   int
}

// NewTable wraps data without copying. data must hold (nblock+1)*NState entries.
func (l Layout) NewTable(data []float32, nblock int) Table {
	return Table{data: data, stride: l.NState(), nrow: nblock + 1}
}

// Row returns row i. Writes go straight to the caller's buffer.
func (t Table) Row(i int) []float32 {
	off := i * t.stride
	return t.data[off : off+t.stride : off+t.stride]
}

// NRow is the number of rows, nblock+1.
func (t Table) NRow() int {
	return t.nrow
}

// Check validates buffers for a forward or backward call without panicking.
// Buffers longer than required are accepted; only the leading region is used.
func Check(score []float32, nbase, nblock int, table []float32) error {
	l, err := NewLayout(nbase)
	if err != nil {
		return err
	}
	if nblock < 0 {
		return fmt.Errorf("%w: got %d", ErrBlockCount, nblock)
	}
	if score == nil {
		return fmt.Errorf("%w: score", ErrNilBuffer)
	}
	if table == nil {
		return fmt.Errorf("%w: table", ErrNilBuffer)
	}
	if need := nblock * l.NTrans(); len(score) < need {
		return fmt.Errorf("%w: have %d, need %d", ErrScoreSize, len(score), need)
	}
	if need := (nblock + 1) * l.NState(); len(table) < need {
		return fmt.Errorf("%w: have %d, need %d", ErrTableSize, len(table), need)
	}
	return nil
}

// checkScores validates a score buffer for entry points that own their tables.
func checkScores(score []float32, nbase, nblock int) (Layout, error) {
	l, err := NewLayout(nbase)
	if err != nil {
		return Layout{}, err
	}
	if nblock < 0 {
		return Layout{}, fmt.Errorf("%w: got %d", ErrBlockCount, nblock)
	}
	if score == nil {
		return Layout{}, fmt.Errorf("%w: score", ErrNilBuffer)
	}
	if need := nblock * l.NTrans(); len(score) < need {
		return Layout{}, fmt.Errorf("%w: have %d, need %d", ErrScoreSize, len(score), need)
	}
	return l, nil
}

// TransitionIndex returns the transition joining from to to.
func (l Layout) TransitionIndex(from, to int) (int, error) {
	nstate := l.NState()
	if from < 0 || from >= nstate || to < 0 || to >= nstate {
		return 0, fmt.Errorf("%w: %d -> %d", ErrPathState, from, to)
	}
	if !l.IsFlop(to) {
		return l.FlipIndex(to, from), nil
	}
	if l.FlopTarget(from) != to {
		return 0, fmt.Errorf("%w: no transition %d -> %d", ErrPathState, from, to)
	}
	return l.FlopIndex(from), nil
}

// BlockCount returns the number of whole blocks in score.
func BlockCount(score []float32, nbase int) (int, error) {
	l, err := NewLayout(nbase)
	if err != nil {
		return 0, err
	}
	ntrans := l.NTrans()
	if len(score)%ntrans != 0 {
		return 0, fmt.Errorf("%w: %d entries is not a multiple of %d", ErrScoreSize, len(score), ntrans)
	}
	return len(score) / ntrans, nil
}
