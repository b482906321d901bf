// Package transport загружает страницу статистики Solr.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/25x8/munin-solr/internal/logger"
	"go.uber.org/zap"
)

// ErrTransport - сетевая ошибка или неуспешный HTTP-статус. Повторов нет.
var ErrTransport = errors.New("transport failure")

// HTTPClient - клиент для одного GET-запроса к stats.jsp
type HTTPClient struct {
	URL    string
	client *http.Client
}

// NewHTTPClient - конструктор для HTTPClient. Таймаут не задается: ограничение
// времени выполнения остается на стороне вызывающего агента.
func NewHTTPClient(url string) *HTTPClient {
	return &HTTPClient{
		URL:    url,
		client: http.DefaultClient,
	}
}

// Fetch выполняет GET и возвращает тело ответа.
func (c *HTTPClient) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	logger.Log.Debug("Fetching stats", zap.String("url", c.URL))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status: %s", ErrTransport, c.URL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	logger.Log.Debug("Stats fetched",
		zap.String("url", c.URL),
		zap.Int("bytes", len(body)),
	)
	return body, nil
}
