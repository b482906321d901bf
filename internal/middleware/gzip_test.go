package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBody = "<solr><solr-info/></solr>"

func xmlHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, testBody)
	})
}

func TestGzipMiddleware_CompressesWhenAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/solr/admin/stats.jsp", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	GzipMiddleware(xmlHandler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))

	gr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	defer gr.Close()

	data, err := io.ReadAll(gr)
	require.NoError(t, err)
	assert.Equal(t, testBody, string(data))
}

func TestGzipMiddleware_PlainWhenNotAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/solr/admin/stats.jsp", nil)
	w := httptest.NewRecorder()

	GzipMiddleware(xmlHandler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, testBody, w.Body.String())
}
