// SPDX-License-Identifier: MIT

package blockstructure_test

import (
	"fmt"

	bst "github.com/katalvlaran/gfstruct/blockstructure"
)

func ExampleBlockStructure_PickSolver() {
	bs, _ := bst.FullStructure([]bst.GfStruct{{"up": bst.Ints(0, 1), "down": bst.Ints(0, 1)}}, nil)
	if err := bs.PickSolver([]bst.GfStruct{{"up": bst.Ints(0), "down": bst.Ints(1)}}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(bs.GfStructSolver[0]["down"])
	fmt.Println(bs.SumkToSolver[0][bst.K("up", bst.IntLabel(1))])
	fmt.Println(bs.SumkToSolver[0][bst.K("down", bst.IntLabel(1))])
	// Output:
	// [0]
	// (None, None)
	// ("down", 0)
}

func ExampleBlockStructure_ApproximateAsDiagonal() {
	bs, _ := bst.FullStructure([]bst.GfStruct{{"ud": bst.Ints(0, 1)}}, nil)
	_ = bs.ApproximateAsDiagonal()
	fmt.Println(bs.GfStructSolver[0].Names())
	// Output:
	// [ud_0 ud_1]
}
