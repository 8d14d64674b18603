package handler

import (
	"net/http"

	"github.com/kindredhq/ledgerd/internal/adapter/http/dto"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// EventHandler serves the ordered balance change event feed.
type EventHandler struct {
	log usecase.EventLog
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(log usecase.EventLog) *EventHandler {
	return &EventHandler{log: log}
}

// List returns events after the given cursor in commit order. Clients page
// through the feed by passing back next_cursor.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor := parseInt64Query(r, "cursor", 0)
	limit := parseIntQuery(r, "limit", 100)

	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	events, next, err := h.log.ReadFrom(r.Context(), cursor, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read events", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EventsPageResponse{
		Events:     dto.EventsFromDomain(events),
		NextCursor: next,
	})
}
