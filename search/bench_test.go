package search_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cointray/search"
)

// BenchmarkRun_QuarterSlot measures a 98-candidate search with 200 payments each.
func BenchmarkRun_QuarterSlot(b *testing.B) {
	factory := search.ListFactory(observed)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(ctx, factory,
			search.WithVaried(2),
			search.WithLength(200),
			search.WithSeed(int64(i)),
		); err != nil {
			b.Fatal(err)
		}
	}
}
