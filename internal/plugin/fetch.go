package plugin

import (
	"context"
	"fmt"
	"io"

	"github.com/25x8/munin-solr/internal/logger"
	"go.uber.org/zap"
)

// Fetch загружает документ, извлекает значение метрики id и пишет одну
// строку "<id>.value <число>". При ошибке в w ничего не пишется.
func (p *Plugin) Fetch(ctx context.Context, w io.Writer, id string) error {
	def, err := p.catalogue.Lookup(id)
	if err != nil {
		return err
	}

	doc, err := p.source.Fetch(ctx)
	if err != nil {
		return err
	}

	sample, err := p.navigator.Sample(doc, def)
	if err != nil {
		return err
	}

	value, err := sample.Value()
	if err != nil {
		return err
	}

	logger.Log.Debug("Metric fetched",
		zap.String("metric", id),
		zap.String("raw", sample.Text),
		zap.String("value", value),
	)

	_, err = fmt.Fprintf(w, "%s.value %s\n", def.ID, value)
	return err
}
