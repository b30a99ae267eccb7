package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorefront records requests and issues a session on the first call
type fakeStorefront struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []map[string]any
}

func (f *fakeStorefront) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.requests = append(f.requests, r)
	f.bodies = append(f.bodies, body)
	f.mu.Unlock()

	if r.Header.Get("X-Session-Token") == "" {
		w.Header().Set("X-Session-Token", "tok-1")
	}
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/api/cart", "/api/cart/add":
		_, _ = w.Write([]byte(`{"items":[{"product_id":"prod-001","quantity":2,"price":129}],"total":258}`))
	case "/api/products":
		_, _ = w.Write([]byte(`[{"id":"prod-005","name":"Oxford Shirt","price":79,"category":"men"}]`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
	}
}

func (f *fakeStorefront) last() (*http.Request, map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1], f.bodies[len(f.bodies)-1]
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCartAddSavesSession(t *testing.T) {
	fake := &fakeStorefront{}
	ts := httptest.NewServer(fake)
	defer ts.Close()
	sessionFile := filepath.Join(t.TempDir(), "session")

	out, err := run(t, "cart", "add", "prod-001", "-q", "2", "--size", "M",
		"--server", ts.URL, "--session-file", sessionFile)
	require.NoError(t, err)
	assert.Contains(t, out, `"total": 258`)

	req, body := fake.last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "prod-001", body["product_id"])
	assert.Equal(t, 2.0, body["quantity"])
	assert.Equal(t, "M", body["size"])
	assert.Nil(t, body["color"])

	saved, err := os.ReadFile(sessionFile)
	require.NoError(t, err)
	assert.Equal(t, "tok-1\n", string(saved))

	// the next run resumes the saved session
	_, err = run(t, "cart", "--server", ts.URL, "--session-file", sessionFile)
	require.NoError(t, err)
	req, _ = fake.last()
	assert.Equal(t, "tok-1", req.Header.Get("X-Session-Token"))
}

func TestServerFromEnvironment(t *testing.T) {
	fake := &fakeStorefront{}
	ts := httptest.NewServer(fake)
	defer ts.Close()
	t.Setenv("SHOPCTL_SERVER", ts.URL)
	t.Setenv("SHOPCTL_SESSION_FILE", filepath.Join(t.TempDir(), "session"))

	out, err := run(t, "products", "--category", "men", "--sort", "price_asc")
	require.NoError(t, err)
	assert.Contains(t, out, "prod-005")

	req, _ := fake.last()
	assert.Equal(t, "men", req.URL.Query().Get("category"))
	assert.Equal(t, "price_asc", req.URL.Query().Get("sort"))
	assert.False(t, req.URL.Query().Has("featured"))
}

func TestCommandErrors(t *testing.T) {
	fake := &fakeStorefront{}
	ts := httptest.NewServer(fake)
	defer ts.Close()
	sessionFile := filepath.Join(t.TempDir(), "session")

	_, err := run(t, "orders", "place", "--first-name", "Ada", "--server", ts.URL, "--session-file", sessionFile)
	assert.ErrorContains(t, err, "required flag")

	_, err = run(t, "cart", "update", "prod-001", "many", "--server", ts.URL, "--session-file", sessionFile)
	assert.ErrorContains(t, err, "invalid quantity")

	_, err = run(t, "orders", "get", "order-missing", "--server", ts.URL, "--session-file", sessionFile)
	assert.ErrorContains(t, err, "404")
}
