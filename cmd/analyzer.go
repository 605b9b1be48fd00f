package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/eth-easl/analyzer/pkg/config"
	"github.com/eth-easl/analyzer/pkg/metric"
	"github.com/eth-easl/analyzer/pkg/server"
	"github.com/eth-easl/analyzer/pkg/store"

	log "github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "cmd/config.json", "Path to analyzer configuration file")
	verbosity  = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cfg := config.ReadConfigurationFile(*configPath)

	opts := server.Options{
		Configuration: &cfg,
		Collector:     metric.NewCollector(),
	}

	if cfg.WithDatabase() {
		records, err := openRecordStore(cfg.DatabasePath)
		if err != nil {
			// The service stays up without persistence, like a missing DB server would.
			log.Errorf("DB error: %v", err)
		} else {
			defer records.Close()
			opts.Records = records
		}
	} else {
		log.Warn("No DatabasePath configured, persistence endpoints are disabled.")
	}

	if cfg.WithImageStore() {
		images, err := store.NewImageStore(filepath.Join(cfg.OutputDir, "graphs"))
		if err != nil {
			log.Fatal(err)
		}
		opts.Images = images
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.NewServer(opts).ListenAndServe(ctx); err != nil {
		log.Fatal(err)
	}
}

func openRecordStore(path string) (*store.SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return store.NewSQLStore(path)
}
