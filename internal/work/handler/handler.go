package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	activitymodels "carelog/internal/activity/models"
	"carelog/internal/transport/http/shared"
	"carelog/internal/work/models"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

const dateLayout = "2006-01-02"

// Service defines the work operations the transport needs.
type Service interface {
	Record(ctx context.Context, homeID id.HomeID, workType string, role activitymodels.CaregiverRole, date time.Time, durationMinutes int) (*models.Work, error)
	ListByHome(ctx context.Context, homeID id.HomeID) ([]*models.Work, error)
	TotalHoursByRoleAndType(ctx context.Context, homeID id.HomeID) ([]*models.RoleTypeHours, error)
	DailyHoursByRoleAndType(ctx context.Context, homeID id.HomeID) ([]*models.DailyRoleTypeHours, error)
	HomeHoursByRole(ctx context.Context, homeID id.HomeID) ([]*models.RoleHours, error)
}

type Handler struct {
	work   Service
	logger *slog.Logger
}

func New(work Service, logger *slog.Logger) *Handler {
	return &Handler{work: work, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/homes/{homeID}/work", func(r chi.Router) {
		r.Post("/", h.handleRecord)
		r.Get("/", h.handleList)
		r.Get("/hours/by-role-and-type", h.handleTotalsByRoleAndType)
		r.Get("/hours/daily", h.handleDailyTotals)
		r.Get("/hours/by-role", h.handleTotalsByRole)
	})
}

type recordRequest struct {
	WorkType        string `json:"work_type"`
	CaregiverRole   string `json:"caregiver_role"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	homeID, err := id.ParseHomeID(chi.URLParam(r, "homeID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	role, err := activitymodels.ParseCaregiverRole(req.CaregiverRole)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "dates must be formatted YYYY-MM-DD"))
		return
	}

	work, err := h.work.Record(r.Context(), homeID, req.WorkType, role, date, req.DurationMinutes)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, work)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	h.respondWith(w, r, func(ctx context.Context, homeID id.HomeID) (any, error) {
		records, err := h.work.ListByHome(ctx, homeID)
		if records == nil {
			records = []*models.Work{}
		}
		return records, err
	})
}

func (h *Handler) handleTotalsByRoleAndType(w http.ResponseWriter, r *http.Request) {
	h.respondWith(w, r, func(ctx context.Context, homeID id.HomeID) (any, error) {
		rows, err := h.work.TotalHoursByRoleAndType(ctx, homeID)
		if rows == nil {
			rows = []*models.RoleTypeHours{}
		}
		return rows, err
	})
}

func (h *Handler) handleDailyTotals(w http.ResponseWriter, r *http.Request) {
	h.respondWith(w, r, func(ctx context.Context, homeID id.HomeID) (any, error) {
		rows, err := h.work.DailyHoursByRoleAndType(ctx, homeID)
		if rows == nil {
			rows = []*models.DailyRoleTypeHours{}
		}
		return rows, err
	})
}

func (h *Handler) handleTotalsByRole(w http.ResponseWriter, r *http.Request) {
	h.respondWith(w, r, func(ctx context.Context, homeID id.HomeID) (any, error) {
		rows, err := h.work.HomeHoursByRole(ctx, homeID)
		if rows == nil {
			rows = []*models.RoleHours{}
		}
		return rows, err
	})
}

func (h *Handler) respondWith(w http.ResponseWriter, r *http.Request, load func(context.Context, id.HomeID) (any, error)) {
	homeID, err := id.ParseHomeID(chi.URLParam(r, "homeID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	payload, err := load(r.Context(), homeID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, payload)
}
