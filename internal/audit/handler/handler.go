package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"carelog/internal/audit"
	"carelog/internal/transport/http/shared"
	id "carelog/pkg/domain"
)

// Store is the audit read surface exposed over HTTP.
type Store interface {
	ListByResident(ctx context.Context, residentID string) ([]audit.Event, error)
}

type Handler struct {
	events Store
	logger *slog.Logger
}

func New(events Store, logger *slog.Logger) *Handler {
	return &Handler{events: events, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/residents/{residentID}/audit", h.handleListByResident)
}

func (h *Handler) handleListByResident(w http.ResponseWriter, r *http.Request) {
	residentID, err := id.ParseResidentID(chi.URLParam(r, "residentID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	events, err := h.events.ListByResident(r.Context(), residentID.String())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	shared.WriteJSON(w, http.StatusOK, events)
}
