// Package flipflop implements log-domain dynamic programming over flip-flop
// paths, the transition structure used to decode nanopore signal.
//
// Each base has two states, flip and flop, so a run of one base can be told
// apart from a repeat. A network emits one score per transition per block;
// the weight of a path is the sum of its transition scores, and the partition
// function is the log-sum-exp over all paths.
//
// Forward and Backward fill caller-owned tables in place and return the
// log-partition value. Viterbi, Posterior and Basecall build on the same
// recurrences and allocate their own tables.
//
// Dimensions derive from the alphabet size:
//
//	nstate = 2 * nbase
//	ntrans = nstate * (nbase + 1)
//
// Complexity: O(nblock * nstate * (nbase+1)) time for each pass.
package flipflop
