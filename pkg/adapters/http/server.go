package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"facette.io/natsort"
	"github.com/aretw0/statenav"
	"github.com/aretw0/statenav/internal/logging"
	"github.com/aretw0/statenav/internal/presentation/graph"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Server implements the generated ServerInterface over an engine's graph
// and its stored sessions.
type Server struct {
	Sessions *session.Manager
	Streams  *StreamManager

	engine  *statenav.Engine
	names   namer
	metrics http.Handler
	logger  *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler replaces the default Prometheus handler served on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewServer creates a server. The manager must carry an engine.
func NewServer(manager *session.Manager, opts ...Option) (*Server, error) {
	engine := manager.Engine()
	if engine == nil {
		return nil, session.ErrNoEngine
	}
	s := &Server{
		Sessions: manager,
		engine:   engine,
		names:    namer{registry: engine.Registry()},
		metrics:  promhttp.Handler(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams = NewStreamManager(s.logger)
	return s, nil
}

// NewHandler creates a new HTTP handler for the session manager.
func NewHandler(manager *session.Manager, opts ...Option) (http.Handler, error) {
	server, err := NewServer(manager, opts...)
	if err != nil {
		return nil, err
	}
	return server.Routes(), nil
}

// Routes builds the chi router: the generated API routes plus /metrics
// and the API documentation.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Method(http.MethodGet, "/metrics", s.metrics)

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.logger.Error("Failed to load OpenAPI spec", "err", err)
			return
		}
		// The embedded document is JSON, which is also valid YAML.
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, swaggerHTML)
	})

	handler := HandlerFromMux(s, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>statenav API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	s.writeJSON(w, http.StatusOK, Info{
		App:        "statenav-http",
		Version:    strings.TrimSpace(statenav.Version),
		ApiVersion: apiVersion,
	})
}

// ListStates handles the GET /states request.
func (s *Server) ListStates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.names.states())
}

// GetGraph handles the GET /graph request.
// With format=mermaid it renders a flowchart, overlaid with the session
// given by the session parameter and the best path to target.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request, params GetGraphParams) {
	if value(params.Format) != "mermaid" {
		view := Graph{
			Start:  s.engine.StartStates(),
			States: s.names.states(),
			Edges:  s.names.edges(),
		}
		if view.Start == nil {
			view.Start = []string{}
		}
		if s.engine.Name != "" {
			view.Name = ptr(s.engine.Name)
		}
		s.writeJSON(w, http.StatusOK, view)
		return
	}

	var overlay *graph.GraphOverlay
	if id := value(params.Session); id != "" {
		snap, err := s.Sessions.Load(r.Context(), id)
		if err != nil {
			s.writeError(w, err)
			return
		}
		overlay = graph.OverlayFromSnapshot(snap)

		if target := value(params.Target); target != "" {
			paths, err := s.engine.Paths(s.engine.Restore(snap), target)
			if err != nil {
				s.writeError(w, err)
				return
			}
			if best, ok := paths.Best(); ok {
				overlay.Path = best.States
			}
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(s.engine.Registry(), overlay))
}

// ListSessions handles the GET /sessions request.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Sessions.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	natsort.Sort(ids)
	s.writeJSON(w, http.StatusOK, SessionList{Sessions: ids})
}

// CreateSession handles the POST /sessions request.
// The body is optional; a missing id is generated.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body CreateSessionJSONRequestBody
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.logger.Warn("CreateSession: invalid request body", "err", err)
			return
		}
	}
	id := value(body.Id)
	if id == "" {
		id = uuid.NewString()
	}

	var active []string
	if body.Active != nil {
		active = *body.Active
	}
	snap, err := s.Sessions.LoadOrStart(r.Context(), id, active...)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("session created", "session_id", id)
	s.writeJSON(w, http.StatusCreated, s.names.session(snap))
}

// GetSession handles the GET /sessions/{id} request.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, id SessionID) {
	snap, err := s.Sessions.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.names.session(snap))
}

// DeleteSession handles the DELETE /sessions/{id} request.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, id SessionID) {
	if err := s.Sessions.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPaths handles the GET /sessions/{id}/paths/{target} request.
func (s *Server) GetPaths(w http.ResponseWriter, r *http.Request, id SessionID, target Target) {
	paths, err := s.Sessions.Paths(r.Context(), id, target)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.names.paths(id, target, paths))
}

// OpenState handles the POST /sessions/{id}/open/{target} request.
// An unreachable target is a normal result with ok=false.
func (s *Server) OpenState(w http.ResponseWriter, r *http.Request, id SessionID, target Target) {
	s.navigate(w, r, id, target, s.Sessions.Open)
}

// CloseState handles the POST /sessions/{id}/close/{target} request.
func (s *Server) CloseState(w http.ResponseWriter, r *http.Request, id SessionID, target Target) {
	s.navigate(w, r, id, target, s.Sessions.Close)
}

type navigateFunc func(ctx context.Context, sessionID, target string) (*session.Result, error)

func (s *Server) navigate(w http.ResponseWriter, r *http.Request, id, target string, op navigateFunc) {
	result, err := op(r.Context(), id, target)
	if err != nil {
		s.writeError(w, err)
		return
	}

	view := s.names.result(result)
	if view.Diff != nil {
		s.logger.Debug("diff calculated", "diff", result.Diff, "session_id", id)
		if bytes, err := json.Marshal(view.Diff); err == nil {
			s.Streams.Broadcast(id, string(bytes))
		}
	}
	s.writeJSON(w, http.StatusOK, view)
}

// SubscribeEvents handles the GET /sessions/{id}/events request (SSE).
// Each event carries the JSON diff of a navigation on the session.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, sessionID SessionID) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: streaming not supported")
		return
	}

	s.logger.Info("SSE subscribing to session updates", "session_id", sessionID)

	ch, cancel := s.Streams.Subscribe(sessionID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE client disconnected", "session_id", sessionID)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrStateNotFound), errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrNoEngine):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	http.Error(w, err.Error(), status)
}
