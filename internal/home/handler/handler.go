package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"carelog/internal/home/models"
	"carelog/internal/transport/http/shared"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

// Service defines the home operations the transport needs.
type Service interface {
	Create(ctx context.Context, name string, groupID *id.HomeGroupID) (*models.Home, error)
	Get(ctx context.Context, homeID id.HomeID) (*models.Home, error)
	List(ctx context.Context) ([]*models.Home, error)
	CreateGroup(ctx context.Context, name string) (*models.HomeGroup, error)
}

type Handler struct {
	homes  Service
	logger *slog.Logger
}

func New(homes Service, logger *slog.Logger) *Handler {
	return &Handler{homes: homes, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/homes", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Get("/{homeID}", h.handleGet)
	})
	r.Post("/home-groups", h.handleCreateGroup)
}

type createRequest struct {
	Name    string `json:"name"`
	GroupID string `json:"group_id,omitempty"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	var groupID *id.HomeGroupID
	if req.GroupID != "" {
		parsed, err := id.ParseHomeGroupID(req.GroupID)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		groupID = &parsed
	}
	home, err := h.homes.Create(r.Context(), req.Name, groupID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, home)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	homes, err := h.homes.List(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, homes)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	homeID, err := id.ParseHomeID(chi.URLParam(r, "homeID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	home, err := h.homes.Get(r.Context(), homeID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, home)
}

type createGroupRequest struct {
	Name string `json:"name"`
}

func (h *Handler) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	group, err := h.homes.CreateGroup(r.Context(), req.Name)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, group)
}
