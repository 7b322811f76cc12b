package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"carelog/internal/report/service"
	"carelog/internal/transport/http/shared"
	id "carelog/pkg/domain"
)

// Service defines the reporting operations the transport needs.
type Service interface {
	HomeBreakdown(ctx context.Context, homeID id.HomeID) (*service.Breakdown, error)
	ClassifyResident(ctx context.Context, residentID id.ResidentID) (*service.ResidentLevel, error)
}

type Handler struct {
	reports Service
	logger  *slog.Logger
}

func New(reports Service, logger *slog.Logger) *Handler {
	return &Handler{reports: reports, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/homes/{homeID}/activity-levels", h.handleHomeBreakdown)
	r.Get("/residents/{residentID}/activity-level", h.handleResidentLevel)
}

func (h *Handler) handleHomeBreakdown(w http.ResponseWriter, r *http.Request) {
	homeID, err := id.ParseHomeID(chi.URLParam(r, "homeID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	breakdown, err := h.reports.HomeBreakdown(r.Context(), homeID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, breakdown)
}

func (h *Handler) handleResidentLevel(w http.ResponseWriter, r *http.Request) {
	residentID, err := id.ParseResidentID(chi.URLParam(r, "residentID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	level, err := h.reports.ClassifyResident(r.Context(), residentID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, level)
}
