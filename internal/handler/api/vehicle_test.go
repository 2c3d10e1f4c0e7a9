//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recarma/internal/domain/user"
	"recarma/internal/domain/vehicle"
	"recarma/internal/handler/api"
	"recarma/internal/usecase/commands"
	"recarma/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeVehicleCommands struct {
	createView   *queries.VehicleView
	createErr    error
	updateResult *commands.UpdateStatusResult
	updateErr    error
}

func (f *fakeVehicleCommands) CreateVehicle(context.Context, uuid.UUID, commands.CreateVehicleParams) (*queries.VehicleView, error) {
	return f.createView, f.createErr
}

func (f *fakeVehicleCommands) UpdateStatus(context.Context, queries.Actor, uuid.UUID, string) (*commands.UpdateStatusResult, error) {
	return f.updateResult, f.updateErr
}

type fakeVehicleQueries struct {
	listViews  []*queries.VehicleView
	listErr    error
	detailView *queries.VehicleDetailView
	detailErr  error
}

func (f *fakeVehicleQueries) ListMine(context.Context, uuid.UUID) ([]*queries.VehicleView, error) {
	return f.listViews, f.listErr
}

func (f *fakeVehicleQueries) GetByID(context.Context, queries.Actor, uuid.UUID) (*queries.VehicleDetailView, error) {
	return f.detailView, f.detailErr
}

type VehicleHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeVehicleCommands
	queries  *fakeVehicleQueries
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &fakeVehicleCommands{}
	s.queries = &fakeVehicleQueries{}
	handler := api.NewVehicleHandler(s.commands, s.queries)

	// Stand-in for the auth middleware.
	authenticated := func(role user.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			c.Set("user_role", role)
		}
	}

	s.router.POST("/vehicles", authenticated(user.RoleOwner), handler.CreateVehicle)
	s.router.GET("/vehicles/my", authenticated(user.RoleOwner), handler.ListMyVehicles)
	s.router.GET("/vehicles/:id", authenticated(user.RoleOwner), handler.GetVehicle)
	s.router.PATCH("/vehicles/:id/status", authenticated(user.RoleDealer), handler.UpdateStatus)
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

func (s *VehicleHandlerTestSuite) request(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *VehicleHandlerTestSuite) TestCreateVehicle() {
	validBody := `{"make":"Honda","model":"City","year":2015,"condition_score":6}`

	s.Run("success: returns 201 with the created view", func() {
		s.commands.createView = &queries.VehicleView{
			ID:     uuid.New(),
			Make:   "Honda",
			Model:  "City",
			Status: "CREATED",
		}
		s.commands.createErr = nil

		w := s.request(http.MethodPost, "/vehicles", validBody)

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), `"CREATED"`)
	})

	s.Run("missing fields: returns 400", func() {
		w := s.request(http.MethodPost, "/vehicles", `{"make":"Honda"}`)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("domain validation failure: returns 400", func() {
		s.commands.createView = nil
		s.commands.createErr = vehicle.ErrInvalidConditionScore

		w := s.request(http.MethodPost, "/vehicles", validBody)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "between 1 and 10")
	})
}

func (s *VehicleHandlerTestSuite) TestListMyVehicles() {
	s.Run("empty collection serializes as an array, not null", func() {
		s.queries.listViews = nil

		w := s.request(http.MethodGet, "/vehicles/my", "")

		s.Equal(http.StatusOK, w.Code)
		s.Equal("[]", strings.TrimSpace(w.Body.String()))
	})

	s.Run("returns the owner's vehicles", func() {
		s.queries.listViews = []*queries.VehicleView{
			{ID: uuid.New(), Make: "Honda", Model: "City", Status: "IN_TRANSIT", StatusLabel: "In Transit"},
		}

		w := s.request(http.MethodGet, "/vehicles/my", "")

		s.Equal(http.StatusOK, w.Code)

		var views []map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &views))
		s.Require().Len(views, 1)
		s.Equal("In Transit", views[0]["status_label"])
	})
}

func (s *VehicleHandlerTestSuite) TestGetVehicle() {
	s.Run("success", func() {
		s.queries.detailView = &queries.VehicleDetailView{
			VehicleView: queries.VehicleView{ID: uuid.New(), Status: "RECEIVED", StatusLabel: "Received at Yard"},
		}
		s.queries.detailErr = nil

		w := s.request(http.MethodGet, "/vehicles/"+uuid.NewString(), "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Received at Yard")
	})

	s.Run("malformed id: returns 400", func() {
		w := s.request(http.MethodGet, "/vehicles/not-a-uuid", "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("not found: returns 404", func() {
		s.queries.detailView = nil
		s.queries.detailErr = queries.ErrVehicleNotFound

		w := s.request(http.MethodGet, "/vehicles/"+uuid.NewString(), "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *VehicleHandlerTestSuite) TestUpdateStatus() {
	url := "/vehicles/" + uuid.NewString() + "/status"

	s.Run("success: acknowledges with the stage label", func() {
		s.commands.updateResult = &commands.UpdateStatusResult{
			Vehicle: &queries.VehicleDetailView{
				VehicleView: queries.VehicleView{ID: uuid.New(), Status: "DISMANTLED"},
			},
			StatusLabel: "Dismantled",
		}
		s.commands.updateErr = nil

		w := s.request(http.MethodPatch, url, `{"status":"DISMANTLED"}`)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Status updated to Dismantled")
	})

	s.Run("unknown status: returns 422", func() {
		s.commands.updateResult = nil
		s.commands.updateErr = vehicle.ErrUnknownStatus

		w := s.request(http.MethodPatch, url, `{"status":"SCRAPPED"}`)
		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("non-dealer: returns 403", func() {
		s.commands.updateErr = commands.ErrStatusUpdateForbidden

		w := s.request(http.MethodPatch, url, `{"status":"IN_TRANSIT"}`)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("vehicle missing: returns 404", func() {
		s.commands.updateErr = commands.ErrVehicleNotFound

		w := s.request(http.MethodPatch, url, `{"status":"IN_TRANSIT"}`)
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("strict transition rejected: returns 409", func() {
		s.commands.updateErr = commands.ErrInvalidTransition

		w := s.request(http.MethodPatch, url, `{"status":"COD_ISSUED"}`)
		s.Equal(http.StatusConflict, w.Code)
	})
}
