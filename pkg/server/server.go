package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/eth-easl/analyzer/pkg/common"
	"github.com/eth-easl/analyzer/pkg/config"
	"github.com/eth-easl/analyzer/pkg/driver"
	"github.com/eth-easl/analyzer/pkg/metric"
	"github.com/eth-easl/analyzer/pkg/store"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	Configuration *config.AnalyzerConfiguration

	// Records is nil when the database could not be opened; the persistence
	// endpoints then answer 503.
	Records store.RecordStore
	Images  *store.ImageStore

	Collector *metric.Collector
}

type Server struct {
	cfg       *config.AnalyzerConfiguration
	validator common.Validator
	driver    *driver.Driver
	records   store.RecordStore
	images    *store.ImageStore
	collector *metric.Collector
}

func NewServer(opts Options) *Server {
	cfg := opts.Configuration
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	maxItems := cfg.MaxItems
	if maxItems <= 0 {
		maxItems = config.DefaultMaxItems
	}
	collector := opts.Collector
	if collector == nil {
		collector = metric.NewCollector()
	}

	return &Server{
		cfg:       cfg,
		validator: common.Validator{MaxItems: maxItems},
		driver:    driver.NewDriver(&driver.DriverConfiguration{Observer: collector}),
		records:   opts.Records,
		images:    opts.Images,
		collector: collector,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /save_analysis", s.handleSave)
	mux.HandleFunc("GET /retrieve_analysis", s.handleRetrieve)
	mux.HandleFunc("GET /graphs/{digest}", s.handleGraph)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.cfg.EnableMetrics {
		mux.Handle("GET /metrics", s.collector.Handler())
	}

	return withCompression(withRequestLogging(withRecovery(mux)))
}

// ListenAndServe serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.ListenAddress,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout(),
		WriteTimeout: s.cfg.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", s.cfg.ListenAddress)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("Shutting down the server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
