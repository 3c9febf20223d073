package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltin(t *testing.T) {
	for _, kind := range []string{"", Builtin} {
		c, err := Load(context.Background(), Config{Kind: kind})
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	doc := "properties:\n  - {id: 3, name: N, location: L, price: '1', image: /i, description: D}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := Load(context.Background(), Config{Kind: File, File: path})
	require.NoError(t, err)
	_, ok := c.Lookup(3)
	assert.True(t, ok)
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"properties":[{"id":"9","name":"N","location":"L","price":1,"image":"/i","description":"D"}]}`))
	}))
	defer srv.Close()

	c, err := Load(context.Background(), Config{Kind: URL, URL: srv.URL})
	require.NoError(t, err)
	_, ok := c.Lookup(9)
	assert.True(t, ok)
}

func TestLoadMisconfigured(t *testing.T) {
	for _, cfg := range []Config{
		{Kind: File},
		{Kind: Postgres},
		{Kind: URL},
		{Kind: "ftp"},
	} {
		_, err := Load(context.Background(), cfg)
		assert.Error(t, err, cfg.Kind)
	}
}
