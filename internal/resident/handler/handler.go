package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"carelog/internal/resident/models"
	"carelog/internal/transport/http/shared"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

// Service defines the resident operations the transport needs.
type Service interface {
	Create(ctx context.Context, firstName, lastInitial string) (*models.Resident, error)
	Get(ctx context.Context, residentID id.ResidentID) (*models.Resident, error)
	List(ctx context.Context) ([]*models.Resident, error)
	SetHiatus(ctx context.Context, residentID id.ResidentID, onHiatus bool) (*models.Resident, error)
}

type Handler struct {
	residents Service
	logger    *slog.Logger
}

func New(residents Service, logger *slog.Logger) *Handler {
	return &Handler{residents: residents, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/residents", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Get("/{residentID}", h.handleGet)
		r.Put("/{residentID}/hiatus", h.handleSetHiatus)
	})
}

type createRequest struct {
	FirstName   string `json:"first_name"`
	LastInitial string `json:"last_initial"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	resident, err := h.residents.Create(r.Context(), req.FirstName, req.LastInitial)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, resident)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	residents, err := h.residents.List(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, residents)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	residentID, err := id.ParseResidentID(chi.URLParam(r, "residentID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	resident, err := h.residents.Get(r.Context(), residentID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, resident)
}

type hiatusRequest struct {
	OnHiatus bool `json:"on_hiatus"`
}

func (h *Handler) handleSetHiatus(w http.ResponseWriter, r *http.Request) {
	residentID, err := id.ParseResidentID(chi.URLParam(r, "residentID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req hiatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	resident, err := h.residents.SetHiatus(r.Context(), residentID, req.OnHiatus)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, resident)
}
