package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dvloznov/voice-ledger/internal/api/middleware"
	"github.com/dvloznov/voice-ledger/internal/parser"
	"github.com/dvloznov/voice-ledger/internal/sessions"
	"github.com/dvloznov/voice-ledger/internal/speech"
)

// ParseHandler handles synchronous text parsing endpoints.
type ParseHandler struct {
	parser *parser.Parser
	log    zerolog.Logger
}

// NewParseHandler creates a new parse handler.
func NewParseHandler(p *parser.Parser, log zerolog.Logger) *ParseHandler {
	return &ParseHandler{
		parser: p,
		log:    log,
	}
}

// Parse handles POST /api/parse
func (h *ParseHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text       string            `json:"text"`
		Categories []parser.Category `json:"categories"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		middleware.WriteError(w, http.StatusBadRequest, "text is required")
		return
	}

	tx, err := h.parser.ParseWithCategories(req.Text, req.Categories)
	if err != nil {
		h.log.Debug().Err(err).Str("text", req.Text).Msg("Parse failed")
		middleware.WriteError(w, http.StatusUnprocessableEntity, "Could not understand the transaction. Please include an amount.")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, tx)
}

// SessionsHandler handles listening-session endpoints.
type SessionsHandler struct {
	store     sessions.Store
	publisher sessions.Publisher
	log       zerolog.Logger
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(store sessions.Store, publisher sessions.Publisher, log zerolog.Logger) *SessionsHandler {
	return &SessionsHandler{
		store:     store,
		publisher: publisher,
		log:       log,
	}
}

// CreateSession handles POST /api/sessions
func (h *SessionsHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	if h.publisher == nil {
		middleware.WriteError(w, http.StatusServiceUnavailable, "Speech recognition is not available")
		return
	}

	var req struct {
		AudioBase64 string            `json:"audio_base64"`
		Language    string            `json:"language"`
		Categories  []parser.Category `json:"categories"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.AudioBase64 == "" {
		middleware.WriteError(w, http.StatusBadRequest, "audio_base64 is required")
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.AudioBase64)
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "audio_base64 is not valid base64")
		return
	}

	language := req.Language
	if language == "" {
		language = speech.DefaultLanguage
	}

	session := &sessions.Session{
		Language:   language,
		Audio:      audio,
		Categories: req.Categories,
	}

	if err := h.publisher.Publish(r.Context(), session); err != nil {
		h.log.Error().Err(err).Msg("Failed to enqueue session")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to enqueue session")
		return
	}

	h.log.Info().Str("session_id", session.ID).Str("language", language).Msg("Session enqueued")

	middleware.WriteJSON(w, http.StatusAccepted, map[string]string{
		"session_id": session.ID,
		"status":     string(session.Status),
	})
}

// GetSession handles GET /api/sessions/{id}
func (h *SessionsHandler) GetSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		middleware.WriteError(w, http.StatusNotFound, "Session not found")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, session)
}

// ListSessions handles GET /api/sessions
func (h *SessionsHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := sessions.Filter{
		Status: sessions.Status(query.Get("status")),
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = limit
		}
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			filter.Offset = offset
		}
	}

	list, err := h.store.List(r.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list sessions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	if list == nil {
		list = []*sessions.Session{}
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": list,
		"count":    len(list),
	})
}

// CategoriesHandler exposes the built-in category taxonomy.
type CategoriesHandler struct {
	log zerolog.Logger
}

// NewCategoriesHandler creates a new categories handler.
func NewCategoriesHandler(log zerolog.Logger) *CategoriesHandler {
	return &CategoriesHandler{log: log}
}

// ListCategories handles GET /api/categories
func (h *CategoriesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"expense": sortedNames(parser.Taxonomy(parser.Expense)),
		"income":  sortedNames(parser.Taxonomy(parser.Income)),
	})
}

func sortedNames(taxonomy map[string][]string) []string {
	names := make([]string, 0, len(taxonomy))
	for name := range taxonomy {
		names = append(names, name)
	}
	// Map iteration order is random; keep the response stable.
	sort.Strings(names)
	return names
}
