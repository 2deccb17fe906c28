package flipflop

import "math"

// lseCutoff is the gap beyond which log1p(exp(-gap)) is below float32 resolution.
const lseCutoff = 17.0

// LogSumExp returns log(exp(x) + exp(y)) without overflow.
//
// The correction term is skipped once the inputs are more than lseCutoff
// apart. Two -Inf inputs give -Inf.
func LogSumExp(x, y float32) float32 {
	gap := x - y
	if gap < 0 {
		gap = -gap
	}
	m := max(x, y)
	if gap < lseCutoff {
		return m + float32(math.Log1p(math.Exp(-float64(gap))))
	}
	return m
}

// LogSumExpSlice folds LogSumExp over xs left to right.
// An empty slice gives -Inf.
func LogSumExpSlice(xs []float32) float32 {
	if len(xs) == 0 {
		return float32(math.Inf(-1))
	}
	total := xs[0]
	for _, x := range xs[1:] {
		total = LogSumExp(total, x)
	}
	return total
}
