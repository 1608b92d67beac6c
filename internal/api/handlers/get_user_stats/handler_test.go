package get_user_stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
	"github.com/m04kA/EV-ChargingService/internal/service/stats"
	"github.com/m04kA/EV-ChargingService/internal/service/stats/models"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetUserStats(_ context.Context, userID int64) (*models.UserStatsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserStatsResponse{
		UserID: userID,
		Year:   2024,
		Month:  6,
		Total:  models.BucketResponse{Sessions: 2, EnergyKwh: 15, Cost: 5.25},
	}, nil
}

func serve(svc StatsService, pathUser string, caller int64, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+pathUser+"/stats", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": pathUser})
	req = req.WithContext(middleware.WithUser(req.Context(), caller, role))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{}, "7", 7, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":{"sessions":2,"energyKwh":15,"cost":5.25}`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "x", 7, "").Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{}, "8", 7, "").Code)
	assert.Equal(t, http.StatusOK, serve(&fakeService{}, "8", 1, middleware.RoleAdmin).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: stats.ErrStorage}, "7", 7, "").Code)
}
