package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jayanth119/campaign-query-engine/pkg/prompts"
	"github.com/jayanth119/campaign-query-engine/pkg/services"
)

// QueryHandler exposes the answer pipeline over HTTP.
type QueryHandler struct {
	answerSvc services.AnswerService
	logger    *zap.Logger
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(answerSvc services.AnswerService, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{answerSvc: answerSvc, logger: logger}
}

// RegisterRoutes registers the query handler's routes on the given mux.
func (h *QueryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/query", h.Query)
	mux.HandleFunc("GET /api/questions", h.SampleQuestions)
}

// QueryRequest is the inbound payload for POST /api/query.
type QueryRequest struct {
	Question string `json:"question"`
}

// Query handles POST /api/query. The response is always the full outcome
// envelope; pipeline failures are reported inside it with HTTP 200, since the
// caller received a well-formed answer about its question.
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be JSON with a question field")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "question is required")
		return
	}

	outcome := h.answerSvc.Answer(r.Context(), req.Question)

	if err := WriteJSON(w, http.StatusOK, outcome); err != nil {
		h.logger.Error("Failed to encode query outcome", zap.Error(err))
	}
}

// SampleQuestions handles GET /api/questions.
func (h *QueryHandler) SampleQuestions(w http.ResponseWriter, r *http.Request) {
	if err := WriteJSON(w, http.StatusOK, map[string][]string{"questions": prompts.SampleQuestions()}); err != nil {
		h.logger.Error("Failed to encode sample questions", zap.Error(err))
	}
}
