// Сервер-заглушка, отдающий stats.jsp в формате Solr. Позволяет запускать
// плагин локально без Solr:
//
//	go run ./cmd/statsstub -a localhost:8983 -f stats.xml
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/25x8/munin-solr/internal/logger"
	"github.com/25x8/munin-solr/internal/statsserver"
	"go.uber.org/zap"
)

func main() {
	addrFlag := flag.String("a", "localhost:8983", "HTTP server address")
	pathFlag := flag.String("p", "solr", "Solr path prefix")
	fileFlag := flag.String("f", "", "Stats document to serve (default: built-in fixture)")
	flag.Parse()

	// переменные окружения имеют приоритет над флагами
	addr := *addrFlag
	if envAddr := os.Getenv("ADDRESS"); envAddr != "" {
		addr = envAddr
	}

	if err := logger.Initialize("info"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	var doc []byte
	if *fileFlag != "" {
		data, err := os.ReadFile(*fileFlag)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *fileFlag, err)
		}
		doc = data
	}

	r := statsserver.NewRouter(*pathFlag, statsserver.NewHandler(doc))

	logger.Log.Info("Stats stub started",
		zap.String("address", addr),
		zap.String("stats", statsserver.StatsPath(*pathFlag)),
	)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Fatal("Server stopped", zap.Error(err))
	}
}
