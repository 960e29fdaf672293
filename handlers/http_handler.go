package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remedia/remedia-api/consultation"
	"github.com/remedia/remedia-api/interfaces"
	"github.com/remedia/remedia-api/logging"
	"github.com/remedia/remedia-api/voice"
)

// User-facing retry messages. Provider failures are never passed through
// verbatim; the wrapped error goes to the log, the user gets these.
const (
	msgAnalysisFailed = "Unable to analyze symptoms. Please try again."
	msgRemediesFailed = "Unable to fetch remedy suggestions. Please try again."
)

// Compile-time check to ensure HTTPHandlerImpl implements HTTPHandler
var _ interfaces.HTTPHandler = (*HTTPHandlerImpl)(nil)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	store         interfaces.SessionStore
	service       *consultation.Service
	validator     interfaces.InputValidator
	healthChecker interfaces.HealthChecker
	voiceInput    voice.Descriptor
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(
	store interfaces.SessionStore,
	service *consultation.Service,
	validator interfaces.InputValidator,
	healthChecker interfaces.HealthChecker,
	voiceInput voice.Descriptor,
) *HTTPHandlerImpl {
	return &HTTPHandlerImpl{
		store:         store,
		service:       service,
		validator:     validator,
		healthChecker: healthChecker,
		voiceInput:    voiceInput,
	}
}

type analyzeRequest struct {
	Symptoms string `json:"symptoms"`
}

type remediesRequest struct {
	Location string `json:"location"`
}

// CreateConsultation starts a new empty consultation session
func (h *HTTPHandlerImpl) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	c := h.store.Create()
	logging.Debug("Consultation created", "id", c.ID())
	RespondWithJSON(w, http.StatusCreated, c.Snapshot())
}

// GetConsultation returns the current state of a consultation
func (h *HTTPHandlerImpl) GetConsultation(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	RespondWithJSON(w, http.StatusOK, c.Snapshot())
}

// AnalyzeSymptoms validates the symptom text and runs the analysis stage
func (h *HTTPHandlerImpl) AnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validation happens before any provider call
	if err := h.validator.ValidateSymptoms(req.Symptoms); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.service.Analyze(r.Context(), c, req.Symptoms); err != nil {
		h.respondStageError(w, c, err, msgAnalysisFailed)
		return
	}

	RespondWithJSON(w, http.StatusOK, c.Snapshot())
}

// RecommendRemedies validates the location and runs the remedy stage
func (h *HTTPHandlerImpl) RecommendRemedies(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req remediesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.ValidateLocation(req.Location); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.service.Recommend(r.Context(), c, req.Location); err != nil {
		h.respondStageError(w, c, err, msgRemediesFailed)
		return
	}

	RespondWithJSON(w, http.StatusOK, c.Snapshot())
}

// EndConsultation releases a session before its TTL expires. The client
// calls this when the user starts over.
func (h *HTTPHandlerImpl) EndConsultation(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.store.Delete(c.ID())
	logging.Debug("Consultation ended", "id", c.ID())
	w.WriteHeader(http.StatusNoContent)
}

// VoiceMessages returns the speech input capability descriptor
func (h *HTTPHandlerImpl) VoiceMessages(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, h.voiceInput)
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	HealthCheck(h.healthChecker)(w, r)
}

// lookup resolves the consultation from the URL, writing the error response
// itself when it is missing
func (h *HTTPHandlerImpl) lookup(w http.ResponseWriter, r *http.Request) (*consultation.Consultation, bool) {
	id := chi.URLParam(r, "consultationId")
	if id == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing consultation id")
		return nil, false
	}

	c, ok := h.store.Get(id)
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Consultation not found or expired")
		return nil, false
	}
	return c, true
}

// respondStageError maps a stage failure to an HTTP response. Sequencing
// violations are client errors; provider failures become a generic retry
// message with the detail kept in the log.
func (h *HTTPHandlerImpl) respondStageError(w http.ResponseWriter, c *consultation.Consultation, err error, retryMsg string) {
	switch {
	case errors.Is(err, consultation.ErrStageInFlight):
		RespondWithError(w, http.StatusConflict, err.Error())

	case errors.Is(err, consultation.ErrAnalysisRequired):
		RespondWithError(w, http.StatusConflict, err.Error())

	case errors.Is(err, consultation.ErrEmptySymptoms),
		errors.Is(err, consultation.ErrEmptyLocation):
		RespondWithError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		logging.Warn("Provider call timed out", "consultation_id", c.ID(), "error", err)
		RespondWithError(w, http.StatusGatewayTimeout, retryMsg)

	default:
		logging.Error("Stage failed", "consultation_id", c.ID(), "error", err)
		RespondWithError(w, http.StatusBadGateway, retryMsg)
	}
}
