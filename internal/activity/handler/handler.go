package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"carelog/internal/activity/models"
	"carelog/internal/activity/service"
	"carelog/internal/transport/http/shared"
	id "carelog/pkg/domain"
	dErrors "carelog/pkg/domain-errors"
)

const dateLayout = "2006-01-02"

// Service defines the activity operations the transport needs.
type Service interface {
	RecordGroupActivity(ctx context.Context, sub *models.GroupSubmission) ([]*models.ResidentActivity, error)
	RecentActivityCount(ctx context.Context, residentID id.ResidentID, asOf time.Time) (int, error)
	AnnotateCurrentResidents(ctx context.Context, homeID id.HomeID, asOf time.Time) ([]*service.ResidentActivityCount, error)
	ListForResident(ctx context.Context, residentID id.ResidentID) ([]*models.ResidentActivity, error)
	ListGroup(ctx context.Context, groupID id.ActivityGroupID) ([]*models.ResidentActivity, error)
}

type Handler struct {
	activities Service
	logger     *slog.Logger
	now        func() time.Time
}

func New(activities Service, logger *slog.Logger) *Handler {
	return &Handler{activities: activities, logger: logger, now: time.Now}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/activities", func(r chi.Router) {
		r.Post("/groups", h.handleRecordGroup)
		r.Get("/groups/{groupID}", h.handleGetGroup)
	})
	r.Get("/residents/{residentID}/activities", h.handleResidentActivities)
	r.Get("/residents/{residentID}/activities/count", h.handleResidentCount)
	r.Get("/homes/{homeID}/activity-counts", h.handleHomeCounts)
}

type recordGroupRequest struct {
	ResidentIDs     []string `json:"resident_ids"`
	ActivityType    string   `json:"activity_type"`
	CaregiverRole   string   `json:"caregiver_role"`
	ActivityDate    string   `json:"activity_date"`
	DurationMinutes int      `json:"duration_minutes"`
}

func (h *Handler) handleRecordGroup(w http.ResponseWriter, r *http.Request) {
	var req recordGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	residentIDs := make([]id.ResidentID, 0, len(req.ResidentIDs))
	for _, raw := range req.ResidentIDs {
		residentID, err := id.ParseResidentID(raw)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		residentIDs = append(residentIDs, residentID)
	}
	activityType, err := models.ParseActivityType(req.ActivityType)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	role, err := models.ParseCaregiverRole(req.CaregiverRole)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	activityDate, err := parseDate(req.ActivityDate)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	records, err := h.activities.RecordGroupActivity(r.Context(), &models.GroupSubmission{
		ResidentIDs:     residentIDs,
		ActivityType:    activityType,
		CaregiverRole:   role,
		ActivityDate:    activityDate,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, records)
}

func (h *Handler) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := id.ParseActivityGroupID(chi.URLParam(r, "groupID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	records, err := h.activities.ListGroup(r.Context(), groupID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if records == nil {
		records = []*models.ResidentActivity{}
	}
	shared.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleResidentActivities(w http.ResponseWriter, r *http.Request) {
	residentID, err := id.ParseResidentID(chi.URLParam(r, "residentID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	records, err := h.activities.ListForResident(r.Context(), residentID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if records == nil {
		records = []*models.ResidentActivity{}
	}
	shared.WriteJSON(w, http.StatusOK, records)
}

type countResponse struct {
	ResidentID string `json:"resident_id"`
	Count      int    `json:"count"`
}

func (h *Handler) handleResidentCount(w http.ResponseWriter, r *http.Request) {
	residentID, err := id.ParseResidentID(chi.URLParam(r, "residentID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	asOf, err := h.asOf(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	count, err := h.activities.RecentActivityCount(r.Context(), residentID, asOf)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, countResponse{ResidentID: residentID.String(), Count: count})
}

func (h *Handler) handleHomeCounts(w http.ResponseWriter, r *http.Request) {
	homeID, err := id.ParseHomeID(chi.URLParam(r, "homeID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	asOf, err := h.asOf(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	annotated, err := h.activities.AnnotateCurrentResidents(r.Context(), homeID, asOf)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if annotated == nil {
		annotated = []*service.ResidentActivityCount{}
	}
	shared.WriteJSON(w, http.StatusOK, annotated)
}

func (h *Handler) asOf(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return h.now(), nil
	}
	return parseDate(raw)
}

func parseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeBadRequest, "dates must be formatted YYYY-MM-DD")
	}
	return parsed, nil
}
