package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// CompressWriter пишет тело ответа через gzip
type CompressWriter struct {
	http.ResponseWriter
	Writer io.Writer
}

func (cw *CompressWriter) Write(data []byte) (int, error) {
	return cw.Writer.Write(data)
}

// GzipMiddleware сжимает ответ, если клиент поддерживает gzip.
// Заголовок Content-Length при этом не выставляется.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", "gzip")
		gw := gzip.NewWriter(w)
		defer gw.Close()

		next.ServeHTTP(&CompressWriter{ResponseWriter: w, Writer: gw}, r)
	})
}
