// Package navigator извлекает значения метрик из XML-документа stats.jsp.
//
// Значение ищется запросом XPath, эквивалентным
//
//	//SECTION/entry[contains(name, COMPONENT)]/stats/stat[@name=FIELD]
//
// По умолчанию имя компонента сравнивается как подстрока: так одно
// определение находит обработчик, путь которого имеет переменный префикс
// или суффикс. Точное сравнение включается опцией WithMatch(MatchExact).
package navigator

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/25x8/munin-solr/internal/catalogue"
	"github.com/25x8/munin-solr/internal/logger"
	"go.uber.org/zap"
)

var (
	// ErrMalformedDocument - ответ не является корректным XML.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrMetricNotFound - документ разобран, но нужной записи или stat в нем нет.
	ErrMetricNotFound = errors.New("metric not found")
)

// Match задает способ сравнения имени компонента.
type Match int

const (
	MatchContains Match = iota
	MatchExact
)

// Option настраивает Navigator.
type Option func(*Navigator)

// WithMatch задает способ сравнения имени компонента.
func WithMatch(m Match) Option {
	return func(n *Navigator) {
		n.match = m
	}
}

// Navigator строит запросы и выполняет их над документом. Состояния между
// вызовами не хранит: документ разбирается заново при каждом Extract.
type Navigator struct {
	match Match
}

// New создает Navigator с заданными опциями.
func New(opts ...Option) *Navigator {
	n := &Navigator{match: MatchContains}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var rootExpr = xpath.MustCompile("/*")

// Query возвращает XPath-выражение для определения метрики.
func (n *Navigator) Query(def catalogue.Definition) string {
	var entry string
	switch n.match {
	case MatchExact:
		entry = fmt.Sprintf("normalize-space(name)=%s", literal(def.Component))
	default:
		entry = fmt.Sprintf("contains(name, %s)", literal(def.Component))
	}

	return fmt.Sprintf("//%s/entry[%s]/stats/stat[@name=%s]",
		def.Section, entry, literal(def.Field))
}

// Compile проверяет и компилирует запрос для определения.
func (n *Navigator) Compile(def catalogue.Definition) (*xpath.Expr, error) {
	return xpath.Compile(n.Query(def))
}

// Extract находит в документе текст stat для определения и возвращает его
// без ведущих и завершающих пробелов.
func (n *Navigator) Extract(doc []byte, def catalogue.Definition) (string, error) {
	expr, err := n.Compile(def)
	if err != nil {
		return "", fmt.Errorf("compile query for %s: %w", def.ID, err)
	}

	root, err := Parse(doc)
	if err != nil {
		return "", err
	}

	node := xmlquery.QuerySelector(root, expr)
	if node == nil {
		return "", fmt.Errorf("%w: %s (%s)", ErrMetricNotFound, def.ID, n.Query(def))
	}

	text := strings.TrimSpace(node.InnerText())
	logger.Log.Debug("Metric extracted",
		zap.String("metric", def.ID),
		zap.String("query", n.Query(def)),
		zap.String("text", text),
	)
	return text, nil
}

// Sample извлекает значение и возвращает его вместе с определением.
func (n *Navigator) Sample(doc []byte, def catalogue.Definition) (Sample, error) {
	text, err := n.Extract(doc, def)
	if err != nil {
		return Sample{}, err
	}
	return Sample{Definition: def, Text: text}, nil
}

// Parse разбирает документ и проверяет, что в нем есть корневой элемент.
func Parse(doc []byte) (*xmlquery.Node, error) {
	root, err := xmlquery.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if xmlquery.QuerySelector(root, rootExpr) == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}
	return root, nil
}

// literal оформляет строку как строковый литерал XPath 1.0, в котором нет
// экранирования кавычек.
func literal(s string) string {
	switch {
	case !strings.Contains(s, "'"):
		return "'" + s + "'"
	case !strings.Contains(s, `"`):
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	quoted := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		quoted = append(quoted, "'"+p+"'")
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
