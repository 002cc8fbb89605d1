package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"linktic/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(t *testing.T, baseURL string, validateExists bool) *ProductoClient {
	t.Helper()
	c, err := NewProductoClient(baseURL, "test-key", validateExists, nil, testLogger())
	if err != nil {
		t.Fatalf("NewProductoClient failed: %v", err)
	}
	return c
}

func TestNewProductoClient_RequiresBaseURL(t *testing.T) {
	_, err := NewProductoClient("  ", "key", true, nil, testLogger())
	assert.Error(t, err)
}

func TestProductoClient_Fetch_Success(t *testing.T) {
	var gotKey atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.Header.Get("X-API-KEY"))
		assert.Equal(t, "/api/productos/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"nombre":"Widget","precio":9.99}`))
	}))
	defer ts.Close()

	c := newClient(t, ts.URL, true)

	p, ok := c.Fetch(context.Background(), 1)
	assert.True(t, ok)
	assert.Equal(t, model.Producto{ID: 1, Nombre: "Widget", Precio: 9.99}, p)
	assert.Equal(t, "test-key", gotKey.Load())
}

func TestProductoClient_Exists_True_On2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"nombre":"Widget","precio":9.99}`))
	}))
	defer ts.Close()

	c := newClient(t, ts.URL, true)
	assert.True(t, c.Exists(context.Background(), 1))
}

func TestProductoClient_NotFound_IsAbsence(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := newClient(t, ts.URL, true)

	assert.False(t, c.Exists(context.Background(), 999))
	_, ok := c.Fetch(context.Background(), 999)
	assert.False(t, ok)
}

func TestProductoClient_ServerError_IsAbsence(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newClient(t, ts.URL, true)

	assert.False(t, c.Exists(context.Background(), 1))
	_, ok := c.Fetch(context.Background(), 1)
	assert.False(t, ok)
}

func TestProductoClient_Unreachable_IsAbsence(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := newClient(t, url, true)

	assert.False(t, c.Exists(context.Background(), 1))
	_, ok := c.Fetch(context.Background(), 1)
	assert.False(t, ok)
}

func TestProductoClient_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer ts.Close()

	c := newClient(t, ts.URL, true)

	//Existsはステータスだけを見る
	assert.True(t, c.Exists(context.Background(), 1))

	//Fetchは中途半端な値を返さない
	p, ok := c.Fetch(context.Background(), 1)
	assert.False(t, ok)
	assert.Equal(t, model.Producto{}, p)
}

func TestProductoClient_Timeout_IsAbsence(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer ts.Close()

	httpClient := &http.Client{Timeout: 50 * time.Millisecond}
	c, err := NewProductoClient(ts.URL, "test-key", true, httpClient, testLogger())
	if err != nil {
		t.Fatalf("NewProductoClient failed: %v", err)
	}

	assert.False(t, c.Exists(context.Background(), 1))
	_, ok := c.Fetch(context.Background(), 1)
	assert.False(t, ok)
}

func TestProductoClient_ValidationDisabled_NoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer ts.Close()

	c := newClient(t, ts.URL, false)

	assert.True(t, c.Exists(context.Background(), 7))

	p, ok := c.Fetch(context.Background(), 7)
	assert.True(t, ok)
	assert.Equal(t, model.Producto{ID: 7}, p)

	assert.Equal(t, int64(0), calls.Load())
}
