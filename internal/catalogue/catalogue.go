// Package catalogue описывает фиксированный набор метрик Solr, которые умеет
// отдавать плагин: где искать значение в stats.jsp, какого оно типа и как
// его подписывать в графике Munin.
package catalogue

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownMetric возвращается, если идентификатора нет в каталоге.
var ErrUnknownMetric = errors.New("unknown metric")

// DefaultQueryHandler используется, когда обработчик запросов не задан.
const DefaultQueryHandler = "/select"

// Kind - тип метрики в терминах Munin.
type Kind string

const (
	Gauge   Kind = "GAUGE"  // мгновенное значение
	Counter Kind = "DERIVE" // монотонный счетчик, скорость считает Munin
)

// Section - раздел верхнего уровня в документе статистики.
type Section string

const (
	SectionCore         Section = "CORE"
	SectionQueryHandler Section = "QUERYHANDLER"
	SectionCache        Section = "CACHE"
)

// Conversion определяет, как превратить текст статистики в число.
type Conversion int

const (
	ConvertNone  Conversion = iota
	ConvertBytes            // "12.5 MB" -> байты
)

const (
	ratioSuffix = "_hit_ratio"
	indexSizeID = "index_size"
)

// Definition описывает одну метрику.
type Definition struct {
	ID         string
	Kind       Kind
	Section    Section
	Component  string // подстрока имени entry внутри раздела
	Field      string // атрибут name у stat
	Title      string
	Label      string
	Info       string
	Unit       string
	Conversion Conversion
}

// IsRatio сообщает, что значение - доля в диапазоне [0,1].
func (d Definition) IsRatio() bool {
	return strings.HasSuffix(d.ID, ratioSuffix)
}

// IsIndexSize сообщает, что метрика - размер индекса.
func (d Definition) IsIndexSize() bool {
	return d.ID == indexSizeID
}

// IsByteSized сообщает, что текст нужно переводить в байты.
func (d Definition) IsByteSized() bool {
	return d.Conversion == ConvertBytes
}

// Catalogue - неизменяемый набор определений, построенный Build.
type Catalogue struct {
	queryHandler string
	defs         map[string]Definition
	ids          []string
}

// Lookup возвращает определение метрики по идентификатору.
func (c *Catalogue) Lookup(id string) (Definition, error) {
	def, ok := c.defs[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownMetric, id)
	}
	return def, nil
}

// IDs возвращает отсортированный список идентификаторов. Срез - копия.
func (c *Catalogue) IDs() []string {
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Definitions возвращает все определения в порядке IDs.
func (c *Catalogue) Definitions() []Definition {
	defs := make([]Definition, 0, len(c.ids))
	for _, id := range c.ids {
		defs = append(defs, c.defs[id])
	}
	return defs
}

// QueryHandler - обработчик запросов, под который построен каталог.
func (c *Catalogue) QueryHandler() string {
	return c.queryHandler
}

// Len - число метрик в каталоге.
func (c *Catalogue) Len() int {
	return len(c.ids)
}

// Build строит каталог для заданного обработчика запросов. Пустая строка
// заменяется на DefaultQueryHandler.
func Build(queryHandler string) *Catalogue {
	if strings.TrimSpace(queryHandler) == "" {
		queryHandler = DefaultQueryHandler
	}

	c := &Catalogue{
		queryHandler: queryHandler,
		defs:         make(map[string]Definition),
	}

	for _, def := range coreDefinitions() {
		c.add(def)
	}
	for _, def := range queryHandlerDefinitions(queryHandler) {
		c.add(def)
	}
	for _, cache := range caches {
		for _, def := range cacheDefinitions(cache) {
			c.add(def)
		}
	}

	sort.Strings(c.ids)
	return c
}

func (c *Catalogue) add(def Definition) {
	if _, dup := c.defs[def.ID]; dup {
		panic("catalogue: duplicate metric " + def.ID)
	}
	c.defs[def.ID] = def
	c.ids = append(c.ids, def.ID)
}
