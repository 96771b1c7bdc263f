package change_test

import (
	"testing"

	"github.com/katalvlaran/cointray/change"
)

// BenchmarkMaker_ColdFill measures solving 0..99 on a fresh Maker each iteration.
func BenchmarkMaker_ColdFill(b *testing.B) {
	set := change.US()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := change.NewMaker(set)
		_, _ = m.Change(99)
	}
}

// BenchmarkMaker_Warm measures cached lookups.
func BenchmarkMaker_Warm(b *testing.B) {
	m, _ := change.NewMaker(change.US())
	_, _ = m.Change(99)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Change(i % 100)
	}
}
