package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cointray/change"
	"github.com/katalvlaran/cointray/prices"
	"github.com/katalvlaran/cointray/simulate"
	"github.com/katalvlaran/cointray/till"
)

func TestRun_FixedStream(t *testing.T) {
	// Empty US tray. Bills 14, 25, 1:
	//   (0-14)  mod 100 = 86 -> 25 25 25 10 1      (5 coins)
	//   (86-25) mod 100 = 61 -> 25 25 10 1         (4 coins)
	//   (61-1)  mod 100 = 60 -> 25 25 10           (3 coins)
	src, err := prices.NewSequence(14, 25, 1)
	require.NoError(t, err)
	sim, err := simulate.NewForSet(change.US(), src)
	require.NoError(t, err)

	st, err := sim.RunStats(3)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Transactions)
	assert.InDelta(t, 4.0, st.Mean, 1e-12)
	assert.Equal(t, 3, st.Min)
	assert.Equal(t, 5, st.Max)
	assert.Equal(t, 3, st.Final)
	assert.Equal(t, []int{10, 25, 25}, sim.Till().Coins())
}

func TestRun_TillIsShared(t *testing.T) {
	src, err := prices.NewSequence(0)
	require.NoError(t, err)
	tr, err := till.US(25)
	require.NoError(t, err)
	sim, err := simulate.New(tr, src)
	require.NoError(t, err)

	// A zero bill leaves 25 in place every time.
	avg, err := sim.Run(10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, avg, 1e-12)
	assert.Same(t, tr, sim.Till())
}

func TestRun_Hook(t *testing.T) {
	src, err := prices.NewSequence(14)
	require.NoError(t, err)
	tr, err := till.US(25)
	require.NoError(t, err)
	sim, err := simulate.New(tr, src)
	require.NoError(t, err)

	var steps []int
	sim.OnTransaction(func(step int, r till.Receipt, count int) {
		steps = append(steps, step)
		assert.Equal(t, 14, r.Bill)
		assert.Equal(t, len(r.Received), count)
	})
	_, err = sim.Run(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, steps)
}

func TestRun_Deterministic(t *testing.T) {
	data := []int{99, 149, 250, 314, 1999, 5}
	run := func() float64 {
		src, err := prices.NewList(data, 2024)
		require.NoError(t, err)
		sim, err := simulate.NewForSet(change.MustSet(1, 5, 10, 30), src)
		require.NoError(t, err)
		avg, err := sim.Run(500)
		require.NoError(t, err)
		return avg
	}
	assert.Equal(t, run(), run())
}

func TestErrors(t *testing.T) {
	src, err := prices.NewSequence(1)
	require.NoError(t, err)
	tr, err := till.US()
	require.NoError(t, err)

	_, err = simulate.New(nil, src)
	assert.ErrorIs(t, err, simulate.ErrNilTill)
	_, err = simulate.New(tr, nil)
	assert.ErrorIs(t, err, simulate.ErrNilSource)

	sim, err := simulate.New(tr, src)
	require.NoError(t, err)
	_, err = sim.Run(0)
	assert.ErrorIs(t, err, simulate.ErrNonPositiveLength)

	_, err = simulate.NewForSet(change.Set{}, src)
	assert.ErrorIs(t, err, change.ErrMissingUnit)
}

// negativeSource yields an invalid bill to force a failing transaction.
type negativeSource struct{}

func (negativeSource) Next() int { return -1 }

func TestRun_FailedTransactionIsFatal(t *testing.T) {
	tr, err := till.US(25)
	require.NoError(t, err)
	sim, err := simulate.New(tr, negativeSource{})
	require.NoError(t, err)

	_, err = sim.Run(5)
	require.ErrorIs(t, err, till.ErrNegativeBill)
	assert.Contains(t, err.Error(), "transaction 1")
	assert.Equal(t, []int{25}, tr.Coins())
}
