package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	homemodels "carelog/internal/home/models"
	homestore "carelog/internal/home/store"
	residentmodels "carelog/internal/resident/models"
	residentstore "carelog/internal/resident/store"
	"carelog/internal/residency/service"
	"carelog/internal/residency/store"
	id "carelog/pkg/domain"
	"carelog/pkg/platform/tx"
)

type ResidencyHandlerSuite struct {
	suite.Suite
	router     chi.Router
	residentID id.ResidentID
	homeID     id.HomeID
}

func TestResidencyHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResidencyHandlerSuite))
}

func (s *ResidencyHandlerSuite) SetupTest() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	residents := residentstore.NewInMemory()
	homes := homestore.NewInMemory()
	residencies := store.NewInMemory()
	svc := service.New(residencies, residents, homes, tx.NewMemoryRunner(), service.WithLogger(logger))

	resident, err := residentmodels.NewResident(id.NewResidentID(), "Aino", "K", time.Now())
	s.Require().NoError(err)
	s.Require().NoError(residents.Create(ctx, resident))
	s.residentID = resident.ID

	home, err := homemodels.NewHome(id.NewHomeID(), "Kotipesä", nil, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(homes.Create(ctx, home))
	s.homeID = home.ID

	s.router = chi.NewRouter()
	New(svc, logger).Register(s.router)
}

func (s *ResidencyHandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ResidencyHandlerSuite) moveIn(moveIn string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/residencies", moveInRequest{
		ResidentID: s.residentID.String(),
		HomeID:     s.homeID.String(),
		MoveIn:     moveIn,
	})
}

func (s *ResidencyHandlerSuite) TestMoveIn() {
	s.Run("creates an open residency", func() {
		w := s.moveIn("2026-01-01")
		s.Require().Equal(http.StatusCreated, w.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(s.residentID.String(), resp["resident_id"])
		s.Nil(resp["move_out"])
	})

	s.Run("overlapping move-in returns 400", func() {
		w := s.moveIn("2026-03-01")
		s.Require().Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "validation")
	})

	s.Run("malformed date returns 400", func() {
		w := s.moveIn("01.03.2026")
		s.Require().Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown resident returns 404", func() {
		w := s.do(http.MethodPost, "/residencies", moveInRequest{
			ResidentID: id.NewResidentID().String(),
			HomeID:     s.homeID.String(),
			MoveIn:     "2026-01-01",
		})
		s.Require().Equal(http.StatusNotFound, w.Code)
	})
}

func (s *ResidencyHandlerSuite) TestMoveOutAndQueries() {
	w := s.moveIn("2026-01-01")
	s.Require().Equal(http.StatusCreated, w.Code)
	var created map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	residencyID := created["id"].(string)

	s.Run("home lists the current resident", func() {
		w := s.do(http.MethodGet, fmt.Sprintf("/homes/%s/residents", s.homeID), nil)
		s.Require().Equal(http.StatusOK, w.Code)

		var residents []map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &residents))
		s.Require().Len(residents, 1)
		s.Equal(s.residentID.String(), residents[0]["id"])
	})

	s.Run("move-out closes the residency", func() {
		w := s.do(http.MethodPut, fmt.Sprintf("/residencies/%s/move-out", residencyID), moveOutRequest{MoveOut: "2026-06-01"})
		s.Require().Equal(http.StatusOK, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.NotNil(resp["move_out"])
	})

	s.Run("second move-out returns 409", func() {
		w := s.do(http.MethodPut, fmt.Sprintf("/residencies/%s/move-out", residencyID), moveOutRequest{MoveOut: "2026-07-01"})
		s.Require().Equal(http.StatusConflict, w.Code)
	})

	s.Run("home is empty after move-out", func() {
		w := s.do(http.MethodGet, fmt.Sprintf("/homes/%s/residents", s.homeID), nil)
		s.Require().Equal(http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
	})

	s.Run("as-of query still finds the past resident", func() {
		w := s.do(http.MethodGet, fmt.Sprintf("/homes/%s/residents?as_of=2026-03-15", s.homeID), nil)
		s.Require().Equal(http.StatusOK, w.Code)
		var residents []map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &residents))
		s.Len(residents, 1)
	})
}
