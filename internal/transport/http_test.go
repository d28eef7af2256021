package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okxrest/pkg/core"
)

func TestNewClient(t *testing.T) {
	client := NewClient(core.DefaultConfig("okx"), zerolog.Nop())

	assert.NotNil(t, client)
}

func TestClient_Do_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v5/market/ticker", r.URL.Path)
		assert.Equal(t, "instId=BTC-USDT", r.URL.RawQuery)
		assert.Equal(t, "key", r.Header.Get("OK-ACCESS-KEY"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"code":"0"}`))
	}))
	defer server.Close()

	client := NewClient(core.DefaultConfig("okx"), zerolog.Nop())

	resp, err := client.Do(context.Background(), &core.HTTPRequest{
		Method:  http.MethodGet,
		URL:     server.URL + "/api/v5/market/ticker?instId=BTC-USDT",
		Headers: map[string]string{"OK-ACCESS-KEY": "key"},
	})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, `{"code":"0"}`, resp.Text())
}

func TestClient_Do_PostSendsBodyVerbatim(t *testing.T) {
	body := `{"instId":"BTC-USDT","sz":"1"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		got, _ := io.ReadAll(r.Body)
		assert.Equal(t, body, string(got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(core.DefaultConfig("okx"), zerolog.Nop())

	resp, err := client.Do(context.Background(), &core.HTTPRequest{
		Method:  http.MethodPost,
		URL:     server.URL + "/api/v5/trade/order",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    []byte(body),
	})

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestClient_Do_ReturnsErrorBodies(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"msg":"busy"}`))
	}))
	defer server.Close()

	client := NewClient(core.DefaultConfig("okx"), zerolog.Nop())

	resp, err := client.Do(context.Background(), &core.HTTPRequest{
		Method: http.MethodGet,
		URL:    server.URL + "/busy",
	})

	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, `{"msg":"busy"}`, resp.Text())
	assert.Equal(t, int32(1), calls.Load(), "transport must not retry")
}

func TestClient_Do_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(core.DefaultConfig("okx"), zerolog.Nop())

	resp, err := client.Do(context.Background(), &core.HTTPRequest{
		Method: http.MethodGet,
		URL:    url + "/unreachable",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, core.IsNetworkError(err))
}

func TestClient_Do_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(core.DefaultConfig("okx").WithTimeout(20*time.Millisecond), zerolog.Nop())

	_, err := client.Do(context.Background(), &core.HTTPRequest{
		Method: http.MethodGet,
		URL:    server.URL + "/slow",
	})

	require.Error(t, err)
	assert.True(t, core.IsTimeoutError(err))
}

func TestClient_Do_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(core.DefaultConfig("okx"), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Do(ctx, &core.HTTPRequest{
		Method: http.MethodGet,
		URL:    server.URL + "/test",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_Close(t *testing.T) {
	client := NewClient(core.DefaultConfig("okx"), zerolog.Nop())

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Do(context.Background(), &core.HTTPRequest{Method: http.MethodGet, URL: "http://localhost"})
	assert.ErrorIs(t, err, core.ErrClientClosed)
}
