package flipflop

import "fmt"

// ViterbiResult is the best-scoring flip-flop path through a score matrix.
type ViterbiResult struct {
	// Scores is the max-product table, (nblock+1)*nstate entries.
	Scores []float32
	// Traceback holds, per block and destination state, the best source state.
	Traceback []int
	// Path is the state occupied at each of the nblock+1 block boundaries.
	Path []int
	// Score is the total score of Path.
	Score float32
}

// Viterbi finds the highest scoring flip-flop path.
//
// Paths start in a flip state: row 0 is 0 for flip states and -LargeVal for
// flop states. Ties go to the lowest state index.
func Viterbi(score []float32, nbase, nblock int) (ViterbiResult, error) {
	l, err := checkScores(score, nbase, nblock)
	if err != nil {
		return ViterbiResult{}, fmt.Errorf("viterbi: %w", err)
	}
	nstate := l.NState()
	scores := l.NewScores(score, nblock)

	res := ViterbiResult{
		Scores:    make([]float32, (nblock+1)*nstate),
		Traceback: make([]int, nblock*nstate),
		Path:      make([]int, nblock+1),
	}
	table := l.NewTable(res.Scores, nblock)
	row0 := table.Row(0)
	for st := range nstate {
		if l.IsFlop(st) {
			row0[st] = -LargeVal
		}
	}

	for blk := range nblock {
		prev := table.Row(blk)
		cur := table.Row(blk + 1)
		cscore := scores.Block(blk)
		tb := res.Traceback[blk*nstate : (blk+1)*nstate]

		for to := range nbase {
			best, arg := cscore[l.FlipIndex(to, 0)]+prev[0], 0
			for from := 1; from < nstate; from++ {
				if v := cscore[l.FlipIndex(to, from)] + prev[from]; v > best {
					best, arg = v, from
				}
			}
			cur[to], tb[to] = best, arg
		}
		for b := range nbase {
			flop := b + nbase
			best, arg := cscore[l.FlopIndex(b)]+prev[b], b
			if v := cscore[l.FlopIndex(flop)] + prev[flop]; v > best {
				best, arg = v, flop
			}
			cur[flop], tb[flop] = best, arg
		}
	}

	last := table.Row(nblock)
	end := 0
	for st := 1; st < nstate; st++ {
		if last[st] > last[end] {
			end = st
		}
	}
	res.Score = last[end]
	res.Path[nblock] = end
	for blk := nblock - 1; blk >= 0; blk-- {
		res.Path[blk] = res.Traceback[blk*nstate+res.Path[blk+1]]
	}
	return res, nil
}

// PathScore sums the transition scores along a state path of nblock+1 states.
// Consecutive states must be joined by a flip-flop transition.
func PathScore(score []float32, nbase int, path []int) (float32, error) {
	nblock := len(path) - 1
	if nblock < 0 {
		return 0, fmt.Errorf("path score: %w: empty path", ErrBlockCount)
	}
	l, err := checkScores(score, nbase, nblock)
	if err != nil {
		return 0, fmt.Errorf("path score: %w", err)
	}
	scores := l.NewScores(score, nblock)
	var total float32
	for blk := range nblock {
		k, err := l.TransitionIndex(path[blk], path[blk+1])
		if err != nil {
			return 0, fmt.Errorf("path score: block %d: %w", blk, err)
		}
		total += scores.Block(blk)[k]
	}
	return total, nil
}
