package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		argv0    string
		prefix   string
		expected string
	}{
		{"Symlink", "/etc/munin/plugins/solr_query_result_cache_hit_ratio", InvocationPrefix, "query_result_cache_hit_ratio"},
		{"Relative", "./solr_index_size", InvocationPrefix, "index_size"},
		{"Instance prefix", "/etc/munin/plugins/main_solr_num_docs", InvocationPrefix, "num_docs"},
		{"Bare plugin", "/usr/share/munin/plugins/solr_", InvocationPrefix, ""},
		{"No prefix", "num_docs", InvocationPrefix, "num_docs"},
		{"Empty prefix", "/x/solr_num_docs", "", "solr_num_docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveIdentifier(tt.argv0, tt.prefix))
		})
	}
}
