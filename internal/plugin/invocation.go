package plugin

import (
	"path/filepath"
	"strings"
)

// InvocationPrefix - префикс имени, под которым Munin запускает плагин
// (символическая ссылка solr_<метрика>).
const InvocationPrefix = "solr_"

// ResolveIdentifier выделяет идентификатор метрики из имени запуска:
// все, что стоит после последнего вхождения prefix в базовом имени файла.
// Если prefix не найден, возвращается базовое имя целиком.
func ResolveIdentifier(argv0, prefix string) string {
	base := filepath.Base(argv0)
	if prefix == "" {
		return base
	}
	if i := strings.LastIndex(base, prefix); i >= 0 {
		return base[i+len(prefix):]
	}
	return base
}
