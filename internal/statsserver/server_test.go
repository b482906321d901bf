package statsserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"solr", "/solr/admin/stats.jsp"},
		{"/solr/core0/", "/solr/core0/admin/stats.jsp"},
		{"", "/admin/stats.jsp"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatsPath(tt.path))
		})
	}
}

func TestRouterServesFixture(t *testing.T) {
	server := httptest.NewServer(NewRouter("solr", NewHandler(nil)))
	defer server.Close()

	// стандартный транспорт сам запрашивает и распаковывает gzip
	resp, err := http.Get(server.URL + "/solr/admin/stats.jsp")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/xml; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.True(t, resp.Uncompressed)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, Fixture(), body)
}

func TestRouterRejectsOtherRoutes(t *testing.T) {
	router := NewRouter("solr", NewHandler(nil))

	tests := []struct {
		name       string
		method     string
		url        string
		wantStatus int
	}{
		{"Wrong path", http.MethodGet, "/other/admin/stats.jsp", http.StatusNotFound},
		{"Wrong method", http.MethodPost, "/solr/admin/stats.jsp", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSetDocument(t *testing.T) {
	h := NewHandler([]byte("<a/>"))
	h.SetDocument([]byte("<b/>"))

	w := httptest.NewRecorder()
	h.HandleStats(w, httptest.NewRequest(http.MethodGet, "/admin/stats.jsp", nil))

	assert.Equal(t, "<b/>", w.Body.String())
}
