// Package server exposes configured pipelines over HTTP: request bodies are
// streamed through a StreamTransformer and the result is written back.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sonnes/transmute/core"
	"github.com/sonnes/transmute/transform"
)

// maxBodySize caps request bodies at 10 MB.
const maxBodySize = 10 << 20

// Config configures a Server.
type Config struct {
	// Pipelines maps a pipeline name to its transformations.
	Pipelines map[string]core.Transformations
	// Stream transforms request bodies.
	Stream transform.StreamTransformer
	// Registry receives the server's metrics. Nil means a fresh registry.
	Registry *prometheus.Registry
}

// Server serves pipelines over HTTP.
type Server struct {
	pipelines map[string]core.Transformations
	stream    transform.StreamTransformer
	registry  *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Server and registers its metrics. It panics if cfg.Stream is
// nil.
func New(cfg Config) *Server {
	if cfg.Stream == nil {
		panic("server: stream transformer is nil")
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	s := &Server{
		pipelines: cfg.Pipelines,
		stream:    cfg.Stream,
		registry:  reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transmute_requests_total",
			Help: "Transform requests by pipeline and status code.",
		}, []string{"pipeline", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transmute_transform_duration_seconds",
			Help:    "Time spent transforming request bodies.",
			Buckets: prometheus.DefBuckets,
		}, []string{"pipeline"}),
	}
	reg.MustRegister(s.requests, s.duration)
	return s
}

// pipelineInfo is the JSON shape of GET /pipelines entries.
type pipelineInfo struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /pipelines", s.handleList)
	mux.HandleFunc("POST /pipelines/{name}", s.handleTransform)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// ListenAndServe serves Handler on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info("serving", "addr", "http://localhost"+addr, "pipelines", len(s.pipelines))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	infos := make([]pipelineInfo, 0, len(s.pipelines))
	for name, ts := range s.pipelines {
		infos = append(infos, pipelineInfo{Name: name, Steps: core.Names(ts)})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		log.Error("encode pipelines", "error", err)
	}
}

func (s *Server) handleTransform(w http.ResponseWriter, req *http.Request) {
	name := req.PathValue("name")
	ts, ok := s.pipelines[name]
	if !ok {
		s.fail(w, name, http.StatusNotFound, "unknown pipeline "+strconv.Quote(name))
		return
	}

	if step := req.URL.Query().Get("step"); step != "" {
		selected := core.Select(ts, step)
		if selected == nil {
			s.fail(w, name, http.StatusNotFound, "unknown step "+strconv.Quote(step))
			return
		}
		ts = selected
	}

	start := time.Now()
	out, err := s.stream.Transform(http.MaxBytesReader(w, req.Body, maxBodySize), ts)
	s.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		code := http.StatusInternalServerError
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, transform.ErrNoInput):
			code = http.StatusBadRequest
		case errors.As(err, &tooLarge):
			code = http.StatusRequestEntityTooLarge
		}
		log.Error("transform request", "pipeline", name, "error", err)
		s.fail(w, name, code, err.Error())
		return
	}

	log.Debug("transform request", "pipeline", name, "steps", ts.Len(), "bytes", len(out))
	s.requests.WithLabelValues(name, strconv.Itoa(http.StatusOK)).Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *Server) fail(w http.ResponseWriter, pipeline string, code int, msg string) {
	s.requests.WithLabelValues(pipeline, strconv.Itoa(code)).Inc()
	http.Error(w, msg, code)
}
