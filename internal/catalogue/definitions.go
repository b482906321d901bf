package catalogue

import "fmt"

func coreDefinitions() []Definition {
	return []Definition{
		{
			ID:         indexSizeID,
			Kind:       Gauge,
			Section:    SectionQueryHandler,
			Component:  "/replication",
			Field:      "indexSize",
			Title:      "Index size",
			Label:      "size",
			Info:       "Size of the index on disk as reported by the replication handler",
			Unit:       "bytes",
			Conversion: ConvertBytes,
		},
		{
			ID:        "num_docs",
			Kind:      Gauge,
			Section:   SectionCore,
			Component: "searcher",
			Field:     "numDocs",
			Title:     "Documents",
			Label:     "documents",
			Info:      "Number of searchable documents",
			Unit:      "documents",
		},
		{
			ID:        "max_doc",
			Kind:      Gauge,
			Section:   SectionCore,
			Component: "searcher",
			Field:     "maxDoc",
			Title:     "Max document",
			Label:     "documents",
			Info:      "Number of documents including deleted ones not yet merged away",
			Unit:      "documents",
		},
	}
}

func queryHandlerDefinitions(handler string) []Definition {
	stats := []struct {
		suffix, field, label, info, unit string
		kind                             Kind
	}{
		{"requests", "requests", "requests", "Requests served", "requests per ${graph_period}", Counter},
		{"errors", "errors", "errors", "Requests that failed", "errors per ${graph_period}", Counter},
		{"timeouts", "timeouts", "timeouts", "Requests that timed out", "timeouts per ${graph_period}", Counter},
		{"total_time", "totalTime", "time", "Time spent serving requests", "ms per ${graph_period}", Counter},
		{"avg_time_per_request", "avgTimePerRequest", "avg time", "Average time per request", "ms", Gauge},
		{"avg_requests_per_second", "avgRequestsPerSecond", "avg rate", "Average requests per second since startup", "requests/s", Gauge},
	}

	defs := make([]Definition, 0, len(stats))
	for _, s := range stats {
		defs = append(defs, Definition{
			ID:        "query_handler_" + s.suffix,
			Kind:      s.kind,
			Section:   SectionQueryHandler,
			Component: handler,
			Field:     s.field,
			Title:     fmt.Sprintf("Query handler %s (%s)", s.label, handler),
			Label:     s.label,
			Info:      fmt.Sprintf("%s by %s", s.info, handler),
			Unit:      s.unit,
		})
	}
	return defs
}

type cache struct {
	prefix string // префикс идентификатора
	name   string // имя entry в разделе CACHE
	title  string
}

var caches = []cache{
	{"query_result_cache", "queryResultCache", "Query result cache"},
	{"document_cache", "documentCache", "Document cache"},
	{"filter_cache", "filterCache", "Filter cache"},
	{"field_value_cache", "fieldValueCache", "Field value cache"},
}

func cacheDefinitions(c cache) []Definition {
	stats := []struct {
		suffix, field, label, info, unit string
		kind                             Kind
	}{
		{"size", "size", "size", "Entries currently in the cache", "entries", Gauge},
		{"hit_ratio", "hitratio", "hit ratio", "Hits divided by lookups since the last commit", "ratio", Gauge},
		{"warmup_time", "warmupTime", "warmup", "Time spent autowarming after the last commit", "ms", Gauge},
		{"lookups", "lookups", "lookups", "Lookups since the last commit", "lookups per ${graph_period}", Counter},
		{"cumulative_lookups", "cumulative_lookups", "lookups", "Lookups since startup", "lookups per ${graph_period}", Counter},
		{"hits", "hits", "hits", "Hits since the last commit", "hits per ${graph_period}", Counter},
		{"inserts", "inserts", "inserts", "Inserts since the last commit", "inserts per ${graph_period}", Counter},
		{"evictions", "evictions", "evictions", "Evictions since the last commit", "evictions per ${graph_period}", Counter},
	}

	defs := make([]Definition, 0, len(stats))
	for _, s := range stats {
		defs = append(defs, Definition{
			ID:        c.prefix + "_" + s.suffix,
			Kind:      s.kind,
			Section:   SectionCache,
			Component: c.name,
			Field:     s.field,
			Title:     c.title + " " + s.label,
			Label:     s.label,
			Info:      s.info,
			Unit:      s.unit,
		})
	}
	return defs
}
