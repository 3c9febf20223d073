package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/housing-site/catalog"
)

// Requires a disposable database; the test replaces its catalog tables.
func TestCatalogRoundTrip(t *testing.T) {
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN not set")
	}
	st, err := Open(dsn)
	require.NoError(t, err)
	defer st.DB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, st.Ping(ctx))
	require.NoError(t, st.Migrate(ctx))

	want := catalog.Default()
	require.NoError(t, st.ReplaceCatalog(ctx, want))

	got, err := st.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.All(), got.All())
}
