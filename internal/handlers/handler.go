package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/intake"
	"github.com/csg33k/underwriteai/internal/ports"
	"github.com/csg33k/underwriteai/internal/templates"
)

// Processor runs uploaded documents through extraction and scoring.
type Processor interface {
	Process(ctx context.Context, docs []domain.DocumentRef) (intake.Result, error)
}

// Pinger is implemented by stores that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Repo           ports.SubmissionRepository
	Intake         Processor
	Settings       ports.SettingsStore
	Reports        ports.ReportGenerator
	Views          *templates.Views
	Logger         *slog.Logger
	AllowedOrigins []string
}

type Handler struct {
	repo     ports.SubmissionRepository
	intake   Processor
	settings ports.SettingsStore
	reports  ports.ReportGenerator
	views    *templates.Views
	log      *slog.Logger
	origins  []string
}

func New(cfg Config) *Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Handler{
		repo:     cfg.Repo,
		intake:   cfg.Intake,
		settings: cfg.Settings,
		reports:  cfg.Reports,
		views:    cfg.Views,
		log:      log,
		origins:  origins,
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)

	r.Get("/", h.dashboard)
	r.Get("/submissions", h.listSubmissions)
	r.Post("/submissions", h.createSubmission)
	r.Get("/submissions/new", h.newSubmission)
	r.Post("/submissions/new/process", h.processDocuments)
	r.Get("/submissions/{id}", h.viewSubmission)
	r.Post("/submissions/{id}/decision", h.recordDecision)
	r.Get("/submissions/{id}/report.pdf", h.submissionReport)
	r.Get("/review-queue", h.reviewQueue)
	r.Get("/risk-analysis", h.riskAnalysis)
	r.Get("/reports", h.reportsPage)
	r.Get("/reports/summary.pdf", h.summaryReport)
	r.Get("/settings", h.settingsPage)
	r.Post("/settings", h.saveSettings)

	r.Route("/api", func(r chi.Router) {
		r.Use(withCORS(h.origins))
		r.Post("/process-documents", h.apiProcessDocuments)
		r.Get("/submissions", h.apiListSubmissions)
		r.Post("/submissions", h.apiCreateSubmission)
		r.Get("/submissions/{id}", h.apiGetSubmission)
		r.Put("/submissions/{id}", h.apiUpdateSubmission)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if p, ok := h.repo.(Pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			writeJSON(w, h.log, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
	}
	writeJSON(w, h.log, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
