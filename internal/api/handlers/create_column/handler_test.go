package create_column

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
	got *models.CreateColumnRequest
	err error
}

func (f *fakeService) CreateColumn(_ context.Context, req *models.CreateColumnRequest) (*models.ColumnResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ColumnResponse{ID: 10, StationID: req.StationID, ColumnNumber: req.ColumnNumber}, nil
}

func serve(svc StationService, stationID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/stations/"+stationID+"/columns", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"stationId": stationID})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "2", `{"columnNumber":1,"powerKw":22,"connectorType":"Type2"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(2), svc.got.StationID)
	assert.Equal(t, 22.0, svc.got.PowerKW)
	assert.Equal(t, "Type2", svc.got.ConnectorType)
}

func TestHandle_Errors(t *testing.T) {
	body := `{"columnNumber":1,"powerKw":22,"connectorType":"Type2"}`

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "x", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "2", `[]`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: stations.ErrInvalidInput}, "2", body).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: stations.ErrStationNotFound}, "2", body).Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeService{err: stations.ErrAlreadyExists}, "2", body).Code)
}
