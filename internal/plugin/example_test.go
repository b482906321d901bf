package plugin_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"

	"github.com/25x8/munin-solr/internal/catalogue"
	"github.com/25x8/munin-solr/internal/navigator"
	"github.com/25x8/munin-solr/internal/plugin"
	"github.com/25x8/munin-solr/internal/statsserver"
	"github.com/25x8/munin-solr/internal/transport"
)

// Example_fetch демонстрирует получение текущего значения метрики
// со страницы статистики.
func Example_fetch() {
	server := httptest.NewServer(statsserver.NewRouter("solr", statsserver.NewHandler(nil)))
	defer server.Close()

	p := plugin.New(
		catalogue.Build("/select"),
		transport.NewHTTPClient(server.URL+"/solr/admin/stats.jsp"),
		navigator.New(),
	)

	id := plugin.ResolveIdentifier("/etc/munin/plugins/solr_query_result_cache_hit_ratio", plugin.InvocationPrefix)
	if err := p.Run(context.Background(), plugin.ModeFetch, os.Stdout, id); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// query_result_cache_hit_ratio.value 0.85
}

// Example_describe демонстрирует вывод конфигурации графика.
func Example_describe() {
	p := plugin.New(catalogue.Build("/select"), nil, nil)

	if err := p.Run(context.Background(), plugin.ModeDescribe, os.Stdout, "query_handler_errors"); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// graph_category solr
	// graph_title Solr Query handler errors (/select)
	// graph_vlabel errors per ${graph_period}
	// query_handler_errors.label errors
	// query_handler_errors.info Requests that failed by /select
	// query_handler_errors.type DERIVE
	// query_handler_errors.min 0
}
