package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/housing-site/catalog"
)

func catalogRouter() http.Handler {
	r := chi.NewRouter()
	RegisterCatalog(r, CatalogDeps{Catalog: catalog.Default()})
	return r
}

func TestListProperties(t *testing.T) {
	rec := httptest.NewRecorder()
	catalogRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OK         bool               `json:"ok"`
		Count      int                `json:"count"`
		Properties []catalog.Property `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "Student Haven", body.Properties[0].Name)
	assert.Equal(t, "Academia House", body.Properties[1].Name)
}

func TestGetProperty(t *testing.T) {
	rec := httptest.NewRecorder()
	catalogRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Property catalog.Property `json:"property"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Fourie Street, Cape Town", body.Property.Location)
	assert.Equal(t, "5,500", body.Property.Price)
}

func TestGetPropertyErrors(t *testing.T) {
	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/properties/99", http.StatusNotFound, "not_found"},
		{"/api/properties/abc", http.StatusBadRequest, "invalid_id"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		catalogRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.status, rec.Code, tc.path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body["error"])
	}
}
