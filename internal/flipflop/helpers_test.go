package flipflop

import (
	"math"
	"math/rand/v2"
)

// randomScores draws nblock*ntrans scores from N(0, scale^2).
func randomScores(seed uint64, nbase, nblock int, scale float64) []float32 {
	rng := rand.New(rand.NewPCG(seed, 0))
	l := Layout{NBase: nbase}
	out := make([]float32, nblock*l.NTrans())
	for i := range out {
		out[i] = float32(rng.NormFloat64() * scale)
	}
	return out
}

// enumeratePaths calls visit for every state sequence of length nblock+1
// joined by valid transitions, passing the path's transition score sum.
func enumeratePaths(score []float32, nbase, nblock int, visit func(path []int, weight float64)) {
	l := Layout{NBase: nbase}
	nstate := l.NState()
	path := make([]int, nblock+1)
	var walk func(pos int, weight float64)
	walk = func(pos int, weight float64) {
		if pos == nblock+1 {
			visit(path, weight)
			return
		}
		for st := range nstate {
			path[pos] = st
			if pos == 0 {
				walk(pos+1, 0)
				continue
			}
			k, err := l.TransitionIndex(path[pos-1], st)
			if err != nil {
				continue
			}
			walk(pos+1, weight+float64(score[(pos-1)*l.NTrans()+k]))
		}
	}
	walk(0, 0)
}

// bruteForceLogZ is log of the summed exp(weight) over all paths, with the
// path weight including the initial and final boundary log weights.
func bruteForceLogZ(score []float32, nbase, nblock int, initial, final []float32) float64 {
	var terms []float64
	enumeratePaths(score, nbase, nblock, func(path []int, w float64) {
		terms = append(terms, w+float64(initial[path[0]])+float64(final[path[nblock]]))
	})
	m := math.Inf(-1)
	for _, v := range terms {
		m = math.Max(m, v)
	}
	var sum float64
	for _, v := range terms {
		sum += math.Exp(v - m)
	}
	return m + math.Log(sum)
}

// zeros returns n zeros.
func zeros(n int) []float32 {
	return make([]float32, n)
}
