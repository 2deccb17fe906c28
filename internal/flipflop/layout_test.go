package flipflop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_Dimensions(t *testing.T) {
	tests := []struct {
		nbase, nstate, ntrans int
	}{
		{1, 2, 4},
		{2, 4, 12},
		{4, 8, 40},
		{5, 10, 60},
	}
	for _, tt := range tests {
		l, err := NewLayout(tt.nbase)
		require.NoError(t, err)
		assert.Equal(t, tt.nstate, l.NState(), "nbase=%d", tt.nbase)
		assert.Equal(t, tt.ntrans, l.NTrans(), "nbase=%d", tt.nbase)
	}

	_, err := NewLayout(0)
	assert.ErrorIs(t, err, ErrBaseCount)
}

func TestLayout_DNAIndices(t *testing.T) {
	l := Layout{NBase: 4}

	assert.Equal(t, 0, l.FlipIndex(0, 0), "A -> A")
	assert.Equal(t, 7, l.FlipIndex(0, 7), "t -> A")
	assert.Equal(t, 8, l.FlipIndex(1, 0), "A -> C")
	assert.Equal(t, 31, l.FlipIndex(3, 7), "t -> T")
	assert.Equal(t, 32, l.FlopIndex(0), "A -> a")
	assert.Equal(t, 35, l.FlopIndex(3), "T -> t")
	assert.Equal(t, 36, l.FlopIndex(4), "a -> a")
	assert.Equal(t, 39, l.FlopIndex(7), "t -> t")

	assert.Equal(t, 4, l.FlopTarget(0))
	assert.Equal(t, 4, l.FlopTarget(4))
	assert.Equal(t, 7, l.FlopTarget(3))
	assert.Equal(t, 7, l.FlopTarget(7))
}

func TestLayout_TransitionRoundTrip(t *testing.T) {
	for _, nbase := range []int{1, 2, 4} {
		l := Layout{NBase: nbase}
		for k := range l.NTrans() {
			from, to := l.Transition(k)
			got, err := l.TransitionIndex(from, to)
			require.NoError(t, err, "nbase=%d k=%d", nbase, k)
			assert.Equal(t, k, got, "nbase=%d k=%d", nbase, k)
		}
	}
}

func TestLayout_TransitionIndexRejects(t *testing.T) {
	l := Layout{NBase: 4}

	_, err := l.TransitionIndex(0, 5) // A -> c
	assert.ErrorIs(t, err, ErrPathState)
	_, err = l.TransitionIndex(6, 5) // g -> c
	assert.ErrorIs(t, err, ErrPathState)
	_, err = l.TransitionIndex(8, 0)
	assert.ErrorIs(t, err, ErrPathState)
	_, err = l.TransitionIndex(-1, 0)
	assert.ErrorIs(t, err, ErrPathState)
}

func TestNBaseFromNTrans(t *testing.T) {
	for _, nbase := range []int{1, 2, 3, 4, 5, 20} {
		got, err := NBaseFromNTrans(Layout{NBase: nbase}.NTrans())
		require.NoError(t, err)
		assert.Equal(t, nbase, got)
	}
	for _, bad := range []int{-4, 0, 3, 5, 39, 41} {
		_, err := NBaseFromNTrans(bad)
		assert.ErrorIs(t, err, ErrTransitionCount, "ntrans=%d", bad)
	}
}

func TestBlockCount(t *testing.T) {
	n, err := BlockCount(make([]float32, 120), 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = BlockCount(nil, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = BlockCount(make([]float32, 41), 4)
	assert.ErrorIs(t, err, ErrScoreSize)
	_, err = BlockCount(make([]float32, 4), 0)
	assert.ErrorIs(t, err, ErrBaseCount)
}

func TestTable_RowsAliasBuffer(t *testing.T) {
	l := Layout{NBase: 2}
	buf := make([]float32, 3*l.NState())
	table := l.NewTable(buf, 2)

	assert.Equal(t, 3, table.NRow())
	table.Row(1)[2] = 7
	assert.Equal(t, float32(7), buf[l.NState()+2])

	row := table.Row(0)
	assert.Equal(t, l.NState(), cap(row), "row capacity is clipped to the stride")
}

func TestScores_Block(t *testing.T) {
	l := Layout{NBase: 1}
	data := []float32{0, 1, 2, 3, 4, 5, 6, 7}
	scores := l.NewScores(data, 2)

	assert.Equal(t, 2, scores.NBlock())
	assert.Equal(t, []float32{4, 5, 6, 7}, scores.Block(1))
}

func TestCheck(t *testing.T) {
	l := Layout{NBase: 4}
	score := make([]float32, 3*l.NTrans())
	table := make([]float32, 4*l.NState())

	assert.NoError(t, Check(score, 4, 3, table))
	assert.NoError(t, Check(append(score, 1), 4, 3, append(table, 1)), "oversized buffers are accepted")
	assert.NoError(t, Check([]float32{}, 4, 0, table[:l.NState()]))

	assert.ErrorIs(t, Check(score, 0, 3, table), ErrBaseCount)
	assert.ErrorIs(t, Check(score, 4, -1, table), ErrBlockCount)
	assert.ErrorIs(t, Check(nil, 4, 3, table), ErrNilBuffer)
	assert.ErrorIs(t, Check(score, 4, 3, nil), ErrNilBuffer)
	assert.ErrorIs(t, Check(score[:len(score)-1], 4, 3, table), ErrScoreSize)
	assert.ErrorIs(t, Check(score, 4, 3, table[:len(table)-1]), ErrTableSize)
}
