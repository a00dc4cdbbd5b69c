package view

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temidaradev/ebicrypto/internal/market"
	"github.com/temidaradev/ebicrypto/internal/selection"
)

type loaderFunc func(ctx context.Context) (market.Collection, error)

func (f loaderFunc) Load(ctx context.Context) (market.Collection, error) {
	return f(ctx)
}

func staticLoader(assets ...market.Asset) loaderFunc {
	return func(context.Context) (market.Collection, error) {
		return market.NewCollection(assets), nil
	}
}

var (
	bitcoin = market.Asset{
		ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", MarketCapUSD: "900000000000",
		History: []market.HistoryPoint{
			{Date: "2024-01-01", PriceUSD: "42000"},
			{Date: "2024-01-02", PriceUSD: "43000"},
		},
	}
	ethereum = market.Asset{ID: "ethereum", Symbol: "ETH", Name: "Ethereum", MarketCapUSD: "400000000000"}
)

func mounted(t *testing.T, l Loader) *View {
	t.Helper()
	v := New(l, zerolog.Nop())
	require.NoError(t, v.Mount(context.Background()))
	t.Cleanup(v.Unmount)
	require.Eventually(t, v.Poll, time.Second, time.Millisecond)
	return v
}

func TestView_InitialState(t *testing.T) {
	v := New(staticLoader(bitcoin), zerolog.Nop())
	assert.Equal(t, Initial, v.Phase())
	assert.Empty(t, v.Assets())
	_, ok := v.Selected()
	assert.False(t, ok)
	assert.Equal(t, -1, v.SelectedIndex())
	assert.NotEmpty(t, v.ID())
	assert.False(t, v.Poll(), "nothing to commit before mount")
}

func TestView_LoadCommitsInServerOrder(t *testing.T) {
	v := mounted(t, staticLoader(ethereum, bitcoin))

	assert.Equal(t, Loaded, v.Phase())
	assets := v.Assets()
	require.Len(t, assets, 2)
	assert.Equal(t, "ethereum", assets[0].ID)
	assert.Equal(t, "bitcoin", assets[1].ID)
	assert.False(t, v.Poll(), "result is committed once")
}

func TestView_FailedLoadIsEmptyLoaded(t *testing.T) {
	v := mounted(t, loaderFunc(func(context.Context) (market.Collection, error) {
		return market.Collection{}, errors.New("dial tcp: connection refused")
	}))

	assert.Equal(t, Loaded, v.Phase())
	assert.Empty(t, v.Assets())
	assert.ErrorIs(t, v.Select(0), selection.ErrNotInCollection)
}

func TestView_LoadsOncePerLifetime(t *testing.T) {
	var calls int32
	v := New(loaderFunc(func(context.Context) (market.Collection, error) {
		atomic.AddInt32(&calls, 1)
		return market.NewCollection([]market.Asset{bitcoin}), nil
	}), zerolog.Nop())

	require.NoError(t, v.Mount(context.Background()))
	defer v.Unmount()
	assert.ErrorIs(t, v.Mount(context.Background()), ErrMounted)
	require.Eventually(t, v.Poll, time.Second, time.Millisecond)

	for i := 0; i < 10; i++ {
		v.Poll()
		_ = v.Series()
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestView_SelectBeforeLoad(t *testing.T) {
	block := make(chan struct{})
	v := New(loaderFunc(func(ctx context.Context) (market.Collection, error) {
		<-block
		return market.NewCollection([]market.Asset{bitcoin}), nil
	}), zerolog.Nop())
	require.NoError(t, v.Mount(context.Background()))
	defer v.Unmount()
	defer close(block)

	assert.ErrorIs(t, v.Select(0), ErrNotLoaded)
	assert.Equal(t, Initial, v.Phase())
}

func TestView_SelectLastWriteWins(t *testing.T) {
	v := mounted(t, staticLoader(bitcoin, ethereum))

	require.NoError(t, v.Select(0))
	assert.Equal(t, Detailed, v.Phase())
	require.NoError(t, v.Select(1))
	assert.Equal(t, Detailed, v.Phase())

	got, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "ethereum", got.ID)
	assert.Equal(t, 1, v.SelectedIndex())
	assert.Empty(t, v.Series().Labels, "ethereum has no history")

	require.NoError(t, v.SelectID("bitcoin"))
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_SelectOutOfRangeKeepsSelection(t *testing.T) {
	v := mounted(t, staticLoader(bitcoin))
	require.NoError(t, v.Select(0))

	require.Error(t, v.Select(5))
	require.Error(t, v.SelectID("dogecoin"))
	got, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "bitcoin", got.ID)
	assert.Equal(t, Detailed, v.Phase())
}

func TestView_SeriesFollowsSelection(t *testing.T) {
	v := mounted(t, staticLoader(bitcoin))

	s := v.Series()
	assert.Empty(t, s.Labels)
	assert.NotNil(t, s.Labels)

	require.NoError(t, v.Select(0))
	s = v.Series()
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, s.Labels)
	assert.Equal(t, []string{"42000", "43000"}, s.Price().Data)
}

func TestView_UnmountDiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	cancelled := make(chan struct{})
	v := New(loaderFunc(func(ctx context.Context) (market.Collection, error) {
		select {
		case <-ctx.Done():
			close(cancelled)
		case <-release:
		}
		return market.NewCollection([]market.Asset{bitcoin}), nil
	}), zerolog.Nop())

	require.NoError(t, v.Mount(context.Background()))
	v.Unmount()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("in-flight retrieval was not cancelled")
	}

	assert.False(t, v.Poll())
	assert.Equal(t, Initial, v.Phase())
	assert.Empty(t, v.Assets())
	assert.ErrorIs(t, v.Select(0), ErrUnmounted)
	assert.ErrorIs(t, v.Mount(context.Background()), ErrUnmounted)
}

func TestView_UnmountClearsSelection(t *testing.T) {
	v := mounted(t, staticLoader(bitcoin))
	require.NoError(t, v.Select(0))

	v.Unmount()
	_, ok := v.Selected()
	assert.False(t, ok)
	assert.Empty(t, v.Assets())
	assert.Empty(t, v.Series().Labels)

	v.Unmount()
}

func TestView_UnmountBeforeMount(t *testing.T) {
	v := New(staticLoader(bitcoin), zerolog.Nop())
	v.Unmount()
	assert.ErrorIs(t, v.Mount(context.Background()), ErrUnmounted)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "initial", Initial.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "detailed", Detailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
