package set_point_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/service/stations"
	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) SetPointStatus(_ context.Context, pointID int64, req *models.SetPointStatusRequest) (*models.PointResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PointResponse{ID: pointID, Status: req.Status}, nil
}

func serve(svc StationService, pointID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/charging-points/"+pointID+"/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"pointId": pointID})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{}, "4", `{"status":"maintenance"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"maintenance"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
	}{
		{name: "invalid id", id: "x", body: `{"status":"available"}`, status: http.StatusBadRequest},
		{name: "invalid body", id: "4", body: `status`, status: http.StatusBadRequest},
		{name: "invalid status", id: "4", body: `{"status":"in_use"}`, err: stations.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "not found", id: "4", body: `{"status":"available"}`, err: stations.ErrPointNotFound, status: http.StatusNotFound},
		{name: "busy", id: "4", body: `{"status":"maintenance"}`, err: stations.ErrPointBusy, status: http.StatusConflict},
		{name: "storage", id: "4", body: `{"status":"maintenance"}`, err: stations.ErrStorage, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(&fakeService{err: tt.err}, tt.id, tt.body).Code)
		})
	}
}
