package plugin

import (
	"context"
	"strings"

	"github.com/25x8/munin-solr/internal/logger"
	"github.com/25x8/munin-solr/internal/navigator"
	"go.uber.org/zap"
)

// ProbeResult - результат проверки окружения. Пустой список причин
// означает, что плагин может работать.
type ProbeResult struct {
	Reasons []string
}

// OK сообщает, что все проверки пройдены.
func (r ProbeResult) OK() bool {
	return len(r.Reasons) == 0
}

// String возвращает ответ для autoconf: "yes" или "no (причина, ...)".
func (r ProbeResult) String() string {
	if r.OK() {
		return "yes"
	}
	return "no (" + strings.Join(r.Reasons, ", ") + ")"
}

// Probe проверяет, что все запросы каталога компилируются движком XPath
// и что страница статистики доступна и является корректным XML.
// Ошибок не возвращает: любая неудача становится причиной в результате.
func (p *Plugin) Probe(ctx context.Context) ProbeResult {
	var result ProbeResult

	for _, def := range p.catalogue.Definitions() {
		if _, err := p.navigator.Compile(def); err != nil {
			result.Reasons = append(result.Reasons, "xpath query for "+def.ID+" does not compile: "+err.Error())
			break
		}
	}

	doc, err := p.source.Fetch(ctx)
	switch {
	case err != nil:
		result.Reasons = append(result.Reasons, "stats page unavailable: "+err.Error())
	default:
		if _, err := navigator.Parse(doc); err != nil {
			result.Reasons = append(result.Reasons, "stats page is not valid XML")
		}
	}

	logger.Log.Debug("Probe finished",
		zap.Bool("ok", result.OK()),
		zap.Strings("reasons", result.Reasons),
	)
	return result
}
