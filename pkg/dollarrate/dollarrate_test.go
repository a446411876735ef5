package dollarrate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"compra": "1350.50", "venta": "1380.00"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, time.Minute)

	rate, err := client.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1350.5", rate.Buy.String())
	assert.Equal(t, "1380", rate.Sell.String())
	assert.False(t, rate.FetchedAt.IsZero())

	// Dentro del TTL se sirve la copia cacheada sin tocar al proveedor
	cached, err := client.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Buy.Equal(cached.Buy))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetCacheExpires(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"compra": "1000", "venta": "1050"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, time.Nanosecond)

	_, err := client.Get(context.Background())
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetProviderDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, time.Minute)

	_, err := client.Get(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetInvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"compra": "no-numero", "venta": "1050"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, time.Minute)

	_, err := client.Get(context.Background())
	assert.Error(t, err)
}
