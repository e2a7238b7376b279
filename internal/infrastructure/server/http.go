package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"FakeNewsDetector/internal/domain"
)

// Service is what the presentation layer needs from the core: one entry
// point taking raw text or a URL.
type Service interface {
	Classify(ctx context.Context, input domain.Input) (domain.Report, error)
}

// History exposes the optional verdict archive.
type History interface {
	RecentVerdicts(ctx context.Context, limit int) ([]domain.VerdictRecord, error)
}

// Server is the HTTP adapter standing in for the original interactive UI.
type Server struct {
	service Service
	history History
	logger  *slog.Logger
	http    *http.Server
}

// New builds the router; the history endpoint is only mounted when an
// archive is wired.
func New(addr string, service Service, history History, logger *slog.Logger) *Server {
	s := &Server{
		service: service,
		history: history,
		logger:  logger,
	}

	router := mux.NewRouter()
	router.HandleFunc("/classify", s.handleClassify).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	if history != nil {
		router.HandleFunc("/verdicts", s.handleVerdicts).Methods(http.MethodGet)
	}

	s.http = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

type classifyRequest struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type classifyResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Method     string  `json:"method,omitempty"`
	WordCount  int     `json:"wordCount,omitempty"`
	Text       string  `json:"text,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleClassify maps the core's three outcomes onto distinct statuses:
// 400 malformed input, 422 no text available, 200 verdict (uncertain
// included).
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	var input domain.Input
	if req.URL != "" {
		input = domain.FromURL(req.URL)
	} else {
		input = domain.RawText(req.Text)
	}

	report, err := s.service.Classify(r.Context(), input)
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "please provide article text or a url"})
		return
	case errors.Is(err, domain.ErrNoText):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "could not extract any article text"})
		return
	case err != nil:
		s.logger.Error("classify failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	resp := classifyResponse{
		Label:      string(report.Verdict.Label),
		Confidence: report.Verdict.Confidence,
		Source:     string(report.Verdict.Source),
	}
	if report.Extraction != nil {
		resp.Method = report.Extraction.Method
		resp.WordCount = report.Extraction.WordCount
		resp.Text = report.Extraction.Text
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVerdicts(w http.ResponseWriter, r *http.Request) {
	records, err := s.history.RecentVerdicts(r.Context(), 50)
	if err != nil {
		s.logger.Error("load verdict history", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	type entry struct {
		URL        string    `json:"url,omitempty"`
		Method     string    `json:"method,omitempty"`
		WordCount  int       `json:"wordCount,omitempty"`
		Label      string    `json:"label"`
		Confidence float64   `json:"confidence"`
		Source     string    `json:"source"`
		CreatedAt  time.Time `json:"createdAt"`
	}

	entries := make([]entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, entry{
			URL:        rec.URL,
			Method:     rec.Method,
			WordCount:  rec.WordCount,
			Label:      string(rec.Label),
			Confidence: rec.Confidence,
			Source:     string(rec.Source),
			CreatedAt:  rec.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
