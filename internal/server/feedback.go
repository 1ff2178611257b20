package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/insighthub/landing/internal/models"
)

// FeedbackRequest is the JSON body the landing form posts.
type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FeedbackResponse acknowledges a stored submission.
type FeedbackResponse struct {
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`
}

// FeedbackHandler accepts form submissions from the landing page and persists them.
// Implements the [Handler] interface for registration with a [Router].
type FeedbackHandler struct {
	store  models.Repository[*models.Feedback]
	logger *log.Logger
}

// NewFeedbackHandler creates a handler writing submissions to the given store.
func NewFeedbackHandler(store models.Repository[*models.Feedback], logger *log.Logger) *FeedbackHandler {
	return &FeedbackHandler{store: store, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *FeedbackHandler) Routes() []string {
	return []string{"/api/feedback"}
}

// ServeHTTP handles a feedback submission.
//
// Validation failures return 400 with the reason; storage failures return 500 without
// leaking internals.
func (h *FeedbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	entry := models.NewFeedback(0, req.Name, req.Email, req.Message, models.SourceWeb)
	if err := entry.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Create(entry); err != nil {
		h.logger.Error("failed to store feedback", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store feedback")
		return
	}

	h.logger.Info("feedback received", "id", entry.ID(), "sequence", entry.Sequence())
	writeJSON(w, http.StatusCreated, FeedbackResponse{ID: entry.ID(), Sequence: entry.Sequence()})
}

// HealthHandler reports liveness for deploy checks.
type HealthHandler struct{}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"/api/health"}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
