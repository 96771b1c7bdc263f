package change_test

import (
	"fmt"

	"github.com/katalvlaran/cointray/change"
)

// ExampleMaker_Change shows change for an 11-cent difference in US coins.
func ExampleMaker_Change() {
	m, err := change.NewMaker(change.US())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	coins, _ := m.Change(11)
	fmt.Println(coins)
	// Output: [1 10]
}

// ExampleMaker_Change_nonGreedy shows a system where the largest coin first is not optimal.
func ExampleMaker_Change_nonGreedy() {
	m, err := change.New(1, 3, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	coins, _ := m.Change(6)
	n, _ := m.Count(6)
	fmt.Println(coins, n)
	// Output: [3 3] 2
}
