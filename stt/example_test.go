package stt_test

import (
	"fmt"

	"github.com/katalvlaran/dynaforest/stt"
)

// ExampleForest demonstrates the basic link/cut/connected contract using
// the Greedy Splay policy; any of NewGreedy/NewMTR/NewLTP answers
// identically.
func ExampleForest() {
	f := stt.NewGreedy(5)
	_ = f.Link(0, 1)
	_ = f.Link(1, 2)
	_ = f.Link(3, 4)
	fmt.Println(f.Connected(0, 2))
	fmt.Println(f.Connected(2, 4))
	_ = f.Link(2, 3)
	fmt.Println(f.Connected(0, 4))
	// Output:
	// true
	// false
	// true
}
