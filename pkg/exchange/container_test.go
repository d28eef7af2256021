package exchange

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okxrest/pkg/core"
)

type mockExchange struct {
	name     string
	closeErr error
	closed   int
}

func (m *mockExchange) Name() string    { return m.name }
func (m *mockExchange) Version() string { return "1.0" }
func (m *mockExchange) GetTicker(ctx context.Context, instID string) (*core.Ticker, error) {
	return nil, nil
}
func (m *mockExchange) GetBBOPrice(ctx context.Context, instID string, side core.OrderSide) (*apd.Decimal, error) {
	return nil, nil
}
func (m *mockExchange) FetchBalances(ctx context.Context, opts ...Option) ([]core.Record, error) {
	return nil, nil
}
func (m *mockExchange) FetchPositions(ctx context.Context, params core.PositionParams) ([]core.Position, error) {
	return nil, nil
}
func (m *mockExchange) Close() error {
	m.closed++
	return m.closeErr
}

func TestContainer_RegisterAndGet(t *testing.T) {
	c := NewContainer()
	ex := &mockExchange{name: "okx"}

	require.NoError(t, c.Register("okx", ex))

	got, err := c.Get("okx")
	require.NoError(t, err)
	assert.Same(t, ex, got)
	assert.True(t, c.Exists("okx"))
}

func TestContainer_RegisterDuplicate(t *testing.T) {
	c := NewContainer()

	require.NoError(t, c.Register("okx", &mockExchange{name: "okx"}))
	err := c.Register("okx", &mockExchange{name: "okx"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestContainer_GetMissing(t *testing.T) {
	c := NewContainer()

	_, err := c.Get("okx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.False(t, c.Exists("okx"))
}

func TestContainer_Names(t *testing.T) {
	c := NewContainer()
	for _, name := range []string{"okx-demo", "okx", "okx-sub"} {
		require.NoError(t, c.Register(name, &mockExchange{name: name}))
	}

	assert.Equal(t, []string{"okx", "okx-demo", "okx-sub"}, c.Names())
}

func TestContainer_Unregister(t *testing.T) {
	c := NewContainer()
	ex := &mockExchange{name: "okx"}
	require.NoError(t, c.Register("okx", ex))

	require.NoError(t, c.Unregister("okx"))

	assert.Equal(t, 1, ex.closed)
	assert.False(t, c.Exists("okx"))
	assert.NoError(t, c.Unregister("okx"))
}

func TestContainer_Close(t *testing.T) {
	c := NewContainer()
	good := &mockExchange{name: "a"}
	bad := &mockExchange{name: "b", closeErr: errors.New("boom")}
	require.NoError(t, c.Register("a", good))
	require.NoError(t, c.Register("b", bad))

	err := c.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close b: boom")

	assert.Equal(t, 1, good.closed)
	assert.Equal(t, 1, bad.closed)
	assert.Empty(t, c.Names())
}

func TestContainer_ConcurrentAccess(t *testing.T) {
	c := NewContainer()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("okx-%d", i)
			assert.NoError(t, c.Register(name, &mockExchange{name: name}))
			_, err := c.Get(name)
			assert.NoError(t, err)
			_ = c.Names()
		}(i)
	}
	wg.Wait()

	assert.Len(t, c.Names(), 20)
}

func TestOptions_CurrencyFilter(t *testing.T) {
	assert.Empty(t, ApplyOptions().CurrencyFilter())
	assert.Equal(t, "BTC", ApplyOptions(WithCurrencies("BTC")).CurrencyFilter())
	assert.Equal(t, "BTC,ETH,USDT", ApplyOptions(WithCurrencies("BTC", "ETH"), WithCurrencies("USDT")).CurrencyFilter())
}
