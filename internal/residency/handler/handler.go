package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	homemodels "carelog/internal/home/models"
	residentmodels "carelog/internal/resident/models"
	"carelog/internal/residency/models"
	"carelog/internal/transport/http/shared"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

const dateLayout = "2006-01-02"

// Service defines the residency operations the transport needs.
type Service interface {
	MoveIn(ctx context.Context, residentID id.ResidentID, homeID id.HomeID, moveIn time.Time, moveOut *time.Time) (*models.Residency, error)
	MoveOut(ctx context.Context, residencyID id.ResidencyID, moveOut time.Time) (*models.Residency, error)
	CurrentResidents(ctx context.Context, homeID id.HomeID) ([]*residentmodels.Resident, error)
	ResidentsAsOf(ctx context.Context, homeID id.HomeID, asOf time.Time) ([]*residentmodels.Resident, error)
	CurrentHomeFor(ctx context.Context, residentID id.ResidentID) (*homemodels.Home, error)
	ListForResident(ctx context.Context, residentID id.ResidentID) ([]*models.Residency, error)
}

type Handler struct {
	residencies Service
	logger      *slog.Logger
}

func New(residencies Service, logger *slog.Logger) *Handler {
	return &Handler{residencies: residencies, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/residencies", func(r chi.Router) {
		r.Post("/", h.handleMoveIn)
		r.Put("/{residencyID}/move-out", h.handleMoveOut)
	})
	r.Get("/homes/{homeID}/residents", h.handleHomeResidents)
	r.Get("/residents/{residentID}/residencies", h.handleResidentHistory)
	r.Get("/residents/{residentID}/home", h.handleCurrentHome)
}

type moveInRequest struct {
	ResidentID string `json:"resident_id"`
	HomeID     string `json:"home_id"`
	MoveIn     string `json:"move_in"`
	MoveOut    string `json:"move_out,omitempty"`
}

func (h *Handler) handleMoveIn(w http.ResponseWriter, r *http.Request) {
	var req moveInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	residentID, err := id.ParseResidentID(req.ResidentID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	homeID, err := id.ParseHomeID(req.HomeID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	moveIn, err := parseDate(req.MoveIn)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var moveOut *time.Time
	if req.MoveOut != "" {
		parsed, err := parseDate(req.MoveOut)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		moveOut = &parsed
	}

	residency, err := h.residencies.MoveIn(r.Context(), residentID, homeID, moveIn, moveOut)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, residency)
}

type moveOutRequest struct {
	MoveOut string `json:"move_out"`
}

func (h *Handler) handleMoveOut(w http.ResponseWriter, r *http.Request) {
	residencyID, err := id.ParseResidencyID(chi.URLParam(r, "residencyID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req moveOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	moveOut, err := parseDate(req.MoveOut)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	residency, err := h.residencies.MoveOut(r.Context(), residencyID, moveOut)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, residency)
}

// handleHomeResidents lists a home's current residents, or the residents on a
// past day when ?as_of=YYYY-MM-DD is given.
func (h *Handler) handleHomeResidents(w http.ResponseWriter, r *http.Request) {
	homeID, err := id.ParseHomeID(chi.URLParam(r, "homeID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	var residents []*residentmodels.Resident
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		asOf, err := parseDate(raw)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		residents, err = h.residencies.ResidentsAsOf(r.Context(), homeID, asOf)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
	} else {
		residents, err = h.residencies.CurrentResidents(r.Context(), homeID)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
	}
	if residents == nil {
		residents = []*residentmodels.Resident{}
	}
	shared.WriteJSON(w, http.StatusOK, residents)
}

func (h *Handler) handleResidentHistory(w http.ResponseWriter, r *http.Request) {
	residentID, err := id.ParseResidentID(chi.URLParam(r, "residentID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	residencies, err := h.residencies.ListForResident(r.Context(), residentID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if residencies == nil {
		residencies = []*models.Residency{}
	}
	shared.WriteJSON(w, http.StatusOK, residencies)
}

func (h *Handler) handleCurrentHome(w http.ResponseWriter, r *http.Request) {
	residentID, err := id.ParseResidentID(chi.URLParam(r, "residentID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	home, err := h.residencies.CurrentHomeFor(r.Context(), residentID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, home)
}

func parseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeBadRequest, "dates must be formatted YYYY-MM-DD")
	}
	return parsed, nil
}
