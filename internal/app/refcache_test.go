package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metforge/steelctl/internal/client"
	"github.com/metforge/steelctl/internal/store"
)

func newCacheTestApp(t *testing.T, baseURL string) *Application {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return &Application{
		stateDB: st,
		api:     client.New(baseURL, time.Second, nil),
	}
}

func TestBranchesFallBackToCacheWhenOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/branches", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"Merkez","isStockEnabled":true}]`))
	}))
	a := newCacheTestApp(t, srv.URL)

	// a successful call warms the cache
	branches, err := a.Branches()
	require.NoError(t, err)
	require.Len(t, branches, 1)

	srv.Close()

	branches, err = a.Branches()
	require.NoError(t, err, "cached copy must be served while offline")
	require.Len(t, branches, 1)
	assert.Equal(t, "Merkez", branches[0].Name)
	assert.True(t, branches[0].IsStockEnabled)
}

func TestBranchesErrorWhenOfflineAndCacheCold(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	a := newCacheTestApp(t, srv.URL)

	_, err := a.Branches()
	assert.Error(t, err)
}

func TestProductTypesFallBackToCacheWhenOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/product-types", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"t1","name":"Boru","requiredFields":{"innerDiameter":"integer"}}]`))
	}))
	a := newCacheTestApp(t, srv.URL)

	types, err := a.ProductTypes()
	require.NoError(t, err)
	require.Len(t, types, 1)

	srv.Close()

	types, err = a.ProductTypes()
	require.NoError(t, err, "cached copy must be served while offline")
	require.Len(t, types, 1)
	assert.Equal(t, "Boru", types[0].Name)
	assert.Equal(t, "integer", types[0].RequiredFields["innerDiameter"])
}
