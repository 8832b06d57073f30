package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/argoproj-labs/matrix-build-notifications/pkg/build"
)

const maxPayloadSize = 1 << 20

type Reporter interface {
	Report(ctx context.Context, event build.Event)
}

type Server interface {
	Serve(port int) error
}

func NewServer(reporter Reporter, gatherer prometheus.Gatherer) *server {
	return &server{reporter: reporter, gatherer: gatherer}
}

type server struct {
	reporter Reporter
	gatherer prometheus.Gatherer
}

func (s *server) buildsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	event, err := build.ParseEvent(http.MaxBytesReader(w, r.Body, maxPayloadSize))
	if err != nil {
		log.Warnf("Rejected build event: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// the orchestrator must not wait for the delivery
	go s.reporter.Report(context.Background(), event)
	w.WriteHeader(http.StatusAccepted)
}

func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/builds", s.buildsHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(prometheus.Gatherers{s.gatherer, prometheus.DefaultGatherer}, promhttp.HandlerOpts{}))
	return mux
}

func (s *server) Serve(port int) error {
	log.Infof("serving build events on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), s.Handler())
}
