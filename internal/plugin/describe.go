package plugin

import (
	"bytes"
	"fmt"
	"io"

	"github.com/25x8/munin-solr/internal/catalogue"
)

// Category - graph_category для всех графиков плагина.
const Category = "solr"

// indexSizeArgs - логарифмически удобная шкала в байтах для размера индекса.
const indexSizeArgs = "--base 1024 --lower-limit 0"

// Describe пишет конфигурацию графика для метрики id.
func (p *Plugin) Describe(w io.Writer, id string) error {
	def, err := p.catalogue.Lookup(id)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeConfig(&buf, def)

	_, err = w.Write(buf.Bytes())
	return err
}

func writeConfig(buf *bytes.Buffer, def catalogue.Definition) {
	fmt.Fprintf(buf, "graph_category %s\n", Category)
	fmt.Fprintf(buf, "graph_title Solr %s\n", def.Title)
	fmt.Fprintf(buf, "graph_vlabel %s\n", def.Unit)
	fmt.Fprintf(buf, "%s.label %s\n", def.ID, def.Label)
	fmt.Fprintf(buf, "%s.info %s\n", def.ID, def.Info)
	fmt.Fprintf(buf, "%s.type %s\n", def.ID, def.Kind)

	if def.Kind == catalogue.Counter || def.IsRatio() {
		fmt.Fprintf(buf, "%s.min 0\n", def.ID)
	}
	if def.IsRatio() {
		fmt.Fprintf(buf, "%s.max 1\n", def.ID)
	}
	if def.IsIndexSize() {
		fmt.Fprintf(buf, "graph_args %s\n", indexSizeArgs)
	}
}
