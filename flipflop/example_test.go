// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package flipflop_test

import (
	"fmt"

	"github.com/born-ml/flipflop/flipflop"
)

// One base, one block: the four transitions are the four paths.
func ExampleForward() {
	score := []float32{0, 0, 0, 0}
	fwd := make([]float32, 2*2) // row 0 seeded with zeros

	logZ := flipflop.Forward(score, 1, 1, fwd)
	fmt.Printf("logZ=%.4f\n", logZ)
	// Output:
	// logZ=1.3863
}

func ExampleBackward() {
	score := []float32{0, 0, 0, 0}
	bwd := make([]float32, 2*2) // row 1 seeded with zeros

	logZ := flipflop.Backward(score, 1, 1, bwd)
	fmt.Printf("logZ=%.4f row0=[%.4f %.4f]\n", logZ, bwd[0], bwd[1])
	// Output:
	// logZ=1.3863 row0=[0.6931 0.6931]
}

func ExampleBasecall() {
	dna, _ := flipflop.NewAlphabet(flipflop.DefaultAlphabet)
	l, _ := flipflop.NewLayout(dna.NBase())

	score := make([]float32, 2*l.NTrans())
	for i := range score {
		score[i] = -1
	}
	score[l.FlipIndex(1, 0)] = 1         // A -> C
	score[l.NTrans()+l.FlopIndex(1)] = 1 // C -> c

	call, err := flipflop.Basecall(score, dna)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(call.Sequence, call.Path)
	// Output:
	// ACC [0 1 5]
}

func ExampleNBaseFromNTrans() {
	nbase, err := flipflop.NBaseFromNTrans(40)
	fmt.Println(nbase, err)
	// Output:
	// 4 <nil>
}
