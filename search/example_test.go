package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cointray/prices"
	"github.com/katalvlaran/cointray/search"
)

// ExampleEnumerate lists the first candidates of the classic experiment.
func ExampleEnumerate() {
	cands, err := search.Enumerate(search.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(cands))
	for _, c := range cands[:3] {
		fmt.Println(c.Set)
	}
	// Output:
	// 294
	// [1 2 10 25]
	// [1 3 10 25]
	// [1 4 10 25]
}

// ExampleRun searches with a stream of free purchases, where every system ties.
func ExampleRun() {
	free := func(int64) (prices.Source, error) { return prices.NewSequence(0) }
	res, err := search.Run(context.Background(), free,
		search.WithVaried(2),
		search.WithRange(20, 30),
		search.WithLength(5),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("The winner is:", res.Winner.Candidate.Set, res.Winner.Score)
	// Output: The winner is: [1 5 10 20] 0
}
