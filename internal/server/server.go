// Package server exposes the projection engine over HTTP. The endpoint is a
// thin shell: decode parameters, run the engine, return the ledger. Nothing
// is persisted between requests.
package server

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	json "github.com/goccy/go-json"

	"github.com/retirecast/retirecast/internal/calculation"
	"github.com/retirecast/retirecast/internal/domain"
)

// Server routes projection requests to a shared engine. The engine is
// stateless, so one instance serves all requests without locking.
type Server struct {
	engine *calculation.Engine
	log    zerolog.Logger
}

// New creates a server around the given engine.
func New(engine *calculation.Engine, log zerolog.Logger) *Server {
	return &Server{engine: engine, log: log}
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ListenAndServe blocks serving HTTP on the given port.
func (s *Server) ListenAndServe(port string) error {
	s.log.Info().Str("port", port).Msg("cashflow projector listening")
	return fasthttp.ListenAndServe(":"+port, s.Handler)
}

// Handler is the fasthttp entry point.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/healthz" && method == fasthttp.MethodGet:
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case path == "/v1/projection" && method == fasthttp.MethodPost:
		s.handleProjection(ctx)
	case path == "/v1/projection/sweep" && method == fasthttp.MethodPost:
		s.handleSweep(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	params, ok := s.decodeParams(ctx)
	if !ok {
		return
	}

	projection, err := s.engine.Project(params)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	s.log.Debug().Int("rows", len(projection.Rows)).Msg("projection served")
	s.writeJSON(ctx, fasthttp.StatusOK, projection)
}

func (s *Server) handleSweep(ctx *fasthttp.RequestCtx) {
	params, ok := s.decodeParams(ctx)
	if !ok {
		return
	}

	points, err := s.engine.SweepRates(params, nil)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, points)
}

func (s *Server) decodeParams(ctx *fasthttp.RequestCtx) (*domain.PlanningParameters, bool) {
	var params domain.PlanningParameters
	if err := json.Unmarshal(ctx.PostBody(), &params); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}
	return &params, true
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Msg("response encoding failed")
		s.writeError(ctx, fasthttp.StatusInternalServerError, "response encoding failed")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.log.Warn().Int("status", status).Str("message", message).Msg("request rejected")
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
