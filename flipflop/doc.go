// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package flipflop computes log-partition functions over flip-flop paths for
// nanopore basecalling.
//
// # Overview
//
// A basecalling network emits, for every block of signal, one score per
// flip-flop transition. Each base has a flip and a flop state, so with nbase
// bases there are:
//
//	nstate = 2 * nbase
//	ntrans = nstate * (nbase + 1)
//
// The weight of a path is the sum of its transition scores. This package sums
// over all paths in log space:
//   - Backward fills a table from the end of the read; beam search uses it to
//     score partial sequences
//   - Forward fills a table from the start; its total must match Backward's
//   - Viterbi and Basecall decode the single best path
//   - Posterior returns per-transition posterior probabilities
//
// # Basic Usage
//
//	import "github.com/born-ml/flipflop/flipflop"
//
//	func main() {
//	    nbase, nblock := 4, len(scores)/40
//
//	    // Last row holds the terminal log weights; zeros allow any end state.
//	    bwd := make([]float32, (nblock+1)*2*nbase)
//	    logZ := flipflop.Backward(scores, nbase, nblock, bwd)
//	}
//
// # Buffers
//
// Forward and Backward never allocate tables. The caller owns the score matrix and
// the table, seeds one boundary row, and gets every other row overwritten.
// Undersized buffers panic; use Check to validate up front.
//
// # Transition Layout
//
// For source state s and destination base b, the flip transition is
// b*nstate + s. The flop transition out of state s is nstate*nbase + s and
// lands on state nbase + s%nbase.
package flipflop
