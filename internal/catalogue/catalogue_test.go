package catalogue

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	c := Build("/select")

	assert.Equal(t, 41, c.Len())
	assert.Equal(t, "/select", c.QueryHandler())

	for _, id := range []string{
		"index_size",
		"num_docs",
		"max_doc",
		"query_handler_requests",
		"query_handler_errors",
		"query_handler_timeouts",
		"query_handler_avg_time_per_request",
		"query_result_cache_hit_ratio",
		"document_cache_evictions",
		"filter_cache_cumulative_lookups",
		"field_value_cache_warmup_time",
	} {
		_, err := c.Lookup(id)
		assert.NoError(t, err, id)
	}
}

func TestBuildEmptyHandlerFallsBack(t *testing.T) {
	c := Build("")
	assert.Equal(t, DefaultQueryHandler, c.QueryHandler())

	def, err := c.Lookup("query_handler_requests")
	require.NoError(t, err)
	assert.Equal(t, DefaultQueryHandler, def.Component)
}

func TestBuildHandlerParameterized(t *testing.T) {
	a := Build("/select")
	b := Build("/search")

	assert.Equal(t, a.IDs(), b.IDs())

	for _, id := range a.IDs() {
		da, _ := a.Lookup(id)
		db, _ := b.Lookup(id)
		if strings.HasPrefix(id, "query_handler_") {
			assert.Equal(t, SectionQueryHandler, da.Section)
			assert.NotEqual(t, da.Component, db.Component, id)
			assert.Equal(t, "/search", db.Component)
		} else {
			assert.Equal(t, da, db, id)
		}
	}
}

func TestIDsSortedAndUnique(t *testing.T) {
	ids := Build("/select").IDs()

	assert.True(t, sort.StringsAreSorted(ids))

	seen := make(map[string]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
}

func TestIDsReturnsCopy(t *testing.T) {
	c := Build("/select")
	ids := c.IDs()
	ids[0] = "tampered"

	assert.NotEqual(t, "tampered", c.IDs()[0])
}

func TestLookupUnknown(t *testing.T) {
	_, err := Build("/select").Lookup("no_such_metric")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestPredicates(t *testing.T) {
	c := Build("/select")

	tests := []struct {
		id        string
		ratio     bool
		indexSize bool
		bytes     bool
		kind      Kind
	}{
		{"index_size", false, true, true, Gauge},
		{"query_result_cache_hit_ratio", true, false, false, Gauge},
		{"filter_cache_hit_ratio", true, false, false, Gauge},
		{"query_handler_requests", false, false, false, Counter},
		{"document_cache_size", false, false, false, Gauge},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			def, err := c.Lookup(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.ratio, def.IsRatio())
			assert.Equal(t, tt.indexSize, def.IsIndexSize())
			assert.Equal(t, tt.bytes, def.IsByteSized())
			assert.Equal(t, tt.kind, def.Kind)
		})
	}
}

func TestDefinitionsComplete(t *testing.T) {
	for _, def := range Build("/select").Definitions() {
		assert.NotEmpty(t, def.Component, def.ID)
		assert.NotEmpty(t, def.Field, def.ID)
		assert.NotEmpty(t, def.Title, def.ID)
		assert.NotEmpty(t, def.Unit, def.ID)
		assert.Contains(t, []Section{SectionCore, SectionQueryHandler, SectionCache}, def.Section)
	}
}
