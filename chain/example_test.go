package chain_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/chain"
)

// ExampleRemoveFromEnd drops the second-to-last stage of a pipeline.
func ExampleRemoveFromEnd() {
	stages := chain.FromSlice([]int{10, 20, 30, 40, 50})

	head, err := chain.RemoveFromEnd(stages, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(head.Slice())
	// Output:
	// [10 20 30 50]
}
