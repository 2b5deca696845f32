package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"positionSizer/internal/domain"
	"positionSizer/internal/ports"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// Service is the part of the application service the HTTP surface needs.
type Service interface {
	Calculate(ctx context.Context, q url.Values) (*domain.Calculation, error)
	SwitchRiskMode(ctx context.Context, q url.Values, to domain.RiskMode) (url.Values, string, error)
}

// Config holds the HTTP adapter's dependencies.
type Config struct {
	Service        Service
	Logger         ports.Logger
	MetricsHandler http.Handler // nil disables /metrics
}

type handler struct {
	svc    Service
	logger ports.Logger
}

// NewRouter builds the HTTP routes.
func NewRouter(cfg Config) http.Handler {
	h := &handler{svc: cfg.Service, logger: cfg.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/size", h.size)
	mux.HandleFunc("GET /api/v1/risk-mode", h.riskMode)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok\n"))
	})
	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}
	return h.withRequestID(mux)
}

// size binds the query string exactly like a shareable link and returns every figure.
func (h *handler) size(w http.ResponseWriter, r *http.Request) {
	calc, err := h.svc.Calculate(r.Context(), r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, toDTO(calc))
}

// riskMode switches the risk unit of a link; "to" selects percent or currency.
func (h *handler) riskMode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	to := domain.RiskMode(q.Get("to"))
	q.Del("to")

	out, link, err := h.svc.SwitchRiskMode(r.Context(), q, to)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, switchDTO{Mode: string(to), Query: out.Encode(), Link: link})
}

func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug(r.Context(), "HTTP request served", map[string]interface{}{
			"requestID": id,
			"method":    r.Method,
			"path":      r.URL.Path,
			"duration":  time.Since(start).String(),
		})
	})
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ports.ErrInvalidRequest) || errors.Is(err, ports.ErrUnknownRiskMode) {
		status = http.StatusBadRequest
	} else {
		h.logger.Error(r.Context(), err, "Request failed", map[string]interface{}{"path": r.URL.Path})
	}
	h.writeJSON(w, r, status, errorDTO{Error: err.Error()})
}

func (h *handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error(r.Context(), err, "Failed to encode response")
	}
}
