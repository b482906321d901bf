// Package plugin реализует режимы работы плагина Munin: вывод конфигурации
// графика, текущего значения, проверку окружения и список метрик.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/25x8/munin-solr/internal/catalogue"
	"github.com/25x8/munin-solr/internal/logger"
	"github.com/25x8/munin-solr/internal/navigator"
	"go.uber.org/zap"
)

// ErrUnknownMode - режим не поддерживается.
var ErrUnknownMode = errors.New("unknown mode")

// Mode - режим запуска. Значения совпадают с аргументами, которые передает Munin.
type Mode string

const (
	ModeFetch    Mode = "fetch"
	ModeDescribe Mode = "config"
	ModeProbe    Mode = "autoconf"
	ModeList     Mode = "suggest"
)

// Modes - все режимы в порядке вывода справки.
var Modes = []Mode{ModeFetch, ModeDescribe, ModeProbe, ModeList}

// ParseMode разбирает аргумент режима. Пустая строка означает ModeFetch.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeFetch, nil
	}
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// DocumentSource отдает документ статистики.
type DocumentSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Plugin связывает каталог, источник документа и навигатор.
type Plugin struct {
	catalogue *catalogue.Catalogue
	source    DocumentSource
	navigator *navigator.Navigator
	handlers  map[Mode]handlerFunc
}

type handlerFunc func(ctx context.Context, w io.Writer, id string) error

// New создает Plugin.
func New(c *catalogue.Catalogue, source DocumentSource, nav *navigator.Navigator) *Plugin {
	if nav == nil {
		nav = navigator.New()
	}

	p := &Plugin{
		catalogue: c,
		source:    source,
		navigator: nav,
	}
	p.handlers = map[Mode]handlerFunc{
		ModeFetch: p.Fetch,
		ModeDescribe: func(_ context.Context, w io.Writer, id string) error {
			return p.Describe(w, id)
		},
		ModeProbe: func(ctx context.Context, w io.Writer, _ string) error {
			_, err := fmt.Fprintln(w, p.Probe(ctx))
			return err
		},
		ModeList: func(_ context.Context, w io.Writer, _ string) error {
			for _, id := range p.List() {
				if _, err := fmt.Fprintln(w, id); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return p
}

// Run выполняет режим mode для метрики id и пишет результат в w.
// id нужен только режимам ModeFetch и ModeDescribe.
func (p *Plugin) Run(ctx context.Context, mode Mode, w io.Writer, id string) error {
	handler, ok := p.handlers[mode]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	logger.Log.Debug("Running plugin",
		zap.String("mode", string(mode)),
		zap.String("metric", id),
	)
	return handler(ctx, w, id)
}

// List возвращает идентификаторы всех метрик в лексикографическом порядке.
func (p *Plugin) List() []string {
	return p.catalogue.IDs()
}
