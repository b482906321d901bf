// Package statsserver отдает фиксированный документ stats.jsp в формате Solr.
// Используется в тестах и для ручной проверки плагина без живого Solr.
package statsserver

import (
	_ "embed"
	"net/http"
	"strings"
	"sync"

	"github.com/25x8/munin-solr/internal/logger"
	"github.com/25x8/munin-solr/internal/middleware"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

//go:embed testdata/stats.xml
var fixture []byte

// Fixture возвращает копию встроенного документа статистики.
func Fixture() []byte {
	doc := make([]byte, len(fixture))
	copy(doc, fixture)
	return doc
}

// Handler хранит документ, который отдается на запрос статистики.
type Handler struct {
	mu       sync.RWMutex
	document []byte
}

// NewHandler создает обработчик. nil означает встроенный документ.
func NewHandler(document []byte) *Handler {
	if document == nil {
		document = Fixture()
	}
	return &Handler{document: document}
}

// SetDocument подменяет отдаваемый документ.
func (h *Handler) SetDocument(document []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.document = document
}

// HandleStats - обработчик для GET /{path}/admin/stats.jsp
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	doc := h.document
	h.mu.RUnlock()

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		logger.Log.Warn("Failed to write stats", zap.Error(err))
	}
}

// StatsPath возвращает путь страницы статистики для пути Solr.
func StatsPath(solrPath string) string {
	p := strings.Trim(solrPath, "/")
	if p == "" {
		return "/admin/stats.jsp"
	}
	return "/" + p + "/admin/stats.jsp"
}

// NewRouter собирает маршруты сервера.
func NewRouter(solrPath string, h *Handler) *mux.Router {
	r := mux.NewRouter()

	wrapHandler := func(handler http.Handler) http.Handler {
		return middleware.GzipMiddleware(logger.RequestLogger(handler))
	}

	r.Handle(StatsPath(solrPath), wrapHandler(http.HandlerFunc(h.HandleStats))).Methods(http.MethodGet)

	return r
}
