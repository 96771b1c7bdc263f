package till_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cointray/change"
	"github.com/katalvlaran/cointray/till"
)

func TestNew_Valid(t *testing.T) {
	tr, err := till.US(25)
	require.NoError(t, err)
	assert.Equal(t, 25, tr.Amount())
	assert.Equal(t, 1, tr.Count())
	assert.Equal(t, []int{25}, tr.Coins())
	assert.True(t, tr.Optimal())
	assert.Equal(t, till.WholeTray, tr.Strategy())
}

func TestNew_Empty(t *testing.T) {
	tr, err := till.US()
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Amount())
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, "$0.00 ()", tr.String())
}

func TestNew_SortsCoins(t *testing.T) {
	tr, err := till.US(25, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 25}, tr.Coins())
	assert.Equal(t, "$0.36 (1, 10, 25)", tr.String())
}

func TestNew_NonOptimalStart(t *testing.T) {
	_, err := till.US(5, 5)
	require.ErrorIs(t, err, till.ErrNonOptimalStart)
	assert.Contains(t, err.Error(), "[10]")

	_, err = till.US(1, 1, 1, 1, 1)
	assert.ErrorIs(t, err, till.ErrNonOptimalStart)
}

func TestNew_InvalidDenomination(t *testing.T) {
	_, err := till.US(3)
	assert.ErrorIs(t, err, till.ErrInvalidDenomination)
}

func TestNew_InvalidSet(t *testing.T) {
	_, err := till.New(change.Set{}, nil)
	assert.ErrorIs(t, err, change.ErrMissingUnit)

	_, err = till.NewWithMaker(nil, nil)
	assert.ErrorIs(t, err, change.ErrMissingUnit)
}

func TestGive_RemovesOnlyOne(t *testing.T) {
	tr, err := till.New(change.MustSet(1, 3, 4), []int{3, 3})
	require.NoError(t, err)

	_, err = tr.Give(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, tr.Coins())
	assert.Equal(t, 3, tr.Amount())
}

func TestGive_Errors_LeaveStateIntact(t *testing.T) {
	tr, err := till.US(1, 10)
	require.NoError(t, err)

	_, err = tr.Give(25)
	assert.ErrorIs(t, err, till.ErrInsufficientCoin)
	_, err = tr.Give(7)
	assert.ErrorIs(t, err, till.ErrInvalidDenomination)

	assert.Equal(t, []int{1, 10}, tr.Coins())
	assert.Equal(t, 11, tr.Amount())
}

func TestTake_KeepsOrderAndChains(t *testing.T) {
	tr, err := till.US()
	require.NoError(t, err)

	_, err = tr.Take(25)
	require.NoError(t, err)
	same, err := tr.Take(1)
	require.NoError(t, err)
	assert.Same(t, tr, same)
	_, err = same.Take(10)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 10, 25}, tr.Coins())
	assert.Equal(t, 36, tr.Amount())

	_, err = tr.Take(2)
	assert.ErrorIs(t, err, till.ErrInvalidDenomination)
	assert.Equal(t, []int{1, 10, 25}, tr.Coins())
}

func TestCoins_IsACopy(t *testing.T) {
	tr, err := till.US(25)
	require.NoError(t, err)
	c := tr.Coins()
	c[0] = 1
	assert.Equal(t, []int{25}, tr.Coins())
}

func TestCloneAndEqual(t *testing.T) {
	a, err := till.US(5, 25)
	require.NoError(t, err)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	_, err = b.Give(5)
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
	assert.Equal(t, []int{5, 25}, a.Coins())
	assert.False(t, a.Equal(nil))

	other, err := till.New(change.MustSet(1, 5, 10, 25, 50), []int{5, 25})
	require.NoError(t, err)
	assert.False(t, a.Equal(other))
}

func TestParseStrategy(t *testing.T) {
	s, err := till.ParseStrategy("subset")
	require.NoError(t, err)
	assert.Equal(t, till.SubsetSearch, s)
	assert.Equal(t, "subset", s.String())

	s, err = till.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, till.WholeTray, s)

	_, err = till.ParseStrategy("greedy")
	assert.Error(t, err)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { till.WithModulus(0) })
	assert.Panics(t, func() { till.WithStrategy(till.Strategy(9)) })
}
