package flipflop

import (
	"fmt"
	"math"
)

// Posterior returns the posterior probability of every transition at every
// block, in the score layout, together with the log-partition value.
//
// Both boundary rows are seeded with zeros, so paths may start and end in any
// state. Each block's probabilities sum to one; they are the derivative of the
// log-partition function with respect to the scores.
func (s *Scorer) Posterior(score []float32, nbase, nblock int) ([]float32, float32, error) {
	l, err := checkScores(score, nbase, nblock)
	if err != nil {
		return nil, 0, fmt.Errorf("posterior: %w", err)
	}
	nstate, ntrans := l.NState(), l.NTrans()

	fwd := make([]float32, (nblock+1)*nstate)
	bwd := make([]float32, (nblock+1)*nstate)
	logZ := s.Forward(score, nbase, nblock, fwd)
	s.Backward(score, nbase, nblock, bwd)

	scores := l.NewScores(score, nblock)
	fwdT, bwdT := l.NewTable(fwd, nblock), l.NewTable(bwd, nblock)
	post := make([]float32, nblock*ntrans)
	for blk := range nblock {
		pf, nb := fwdT.Row(blk), bwdT.Row(blk+1)
		cscore := scores.Block(blk)
		out := post[blk*ntrans : (blk+1)*ntrans]
		for k := range ntrans {
			from, to := l.Transition(k)
			out[k] = float32(math.Exp(float64(pf[from] + cscore[k] + nb[to] - logZ)))
		}
	}
	return post, logZ, nil
}

// Posterior computes transition posteriors with a sequential scorer.
func Posterior(score []float32, nbase, nblock int) ([]float32, float32, error) {
	return sequential.Posterior(score, nbase, nblock)
}
