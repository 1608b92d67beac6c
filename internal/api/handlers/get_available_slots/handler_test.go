package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	getAvailableSlots "github.com/m04kA/EV-ChargingService/internal/usecase/get_available_slots"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableSlots.Response{
		ChargingPointID: req.ChargingPointID,
		Date:            req.Date,
		DurationMinutes: 60,
		IntervalMinutes: 30,
		Slots: []domain.Slot{
			{StartTime: "08:00", EndTime: "09:00"},
			{StartTime: "08:30", EndTime: "09:30"},
		},
	}, nil
}

func serve(uc GetAvailableSlotsUseCase, pointID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/charging-points/"+pointID+"/available-slots?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"pointId": pointID})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "3", "date=2024-06-01&duration=60")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 60, uc.got.DurationMinutes)
	assert.Equal(t, 0, uc.got.IntervalMinutes)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.ChargingPointID)
	assert.Equal(t, "2024-06-01", body.Date)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, AvailableSlot{StartTime: "08:30", EndTime: "09:30"}, body.Slots[1])
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name    string
		pointID string
		query   string
	}{
		{name: "invalid point", pointID: "abc", query: "date=2024-06-01"},
		{name: "missing date", pointID: "3", query: ""},
		{name: "invalid date", pointID: "3", query: "date=01.06.2024"},
		{name: "invalid duration", pointID: "3", query: "date=2024-06-01&duration=hour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			assert.Equal(t, http.StatusBadRequest, serve(uc, tt.pointID, tt.query).Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&fakeUseCase{err: getAvailableSlots.ErrPointNotFound}, "3", "date=2024-06-01").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: getAvailableSlots.ErrInvalidInput}, "3", "date=2024-06-01").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeUseCase{err: getAvailableSlots.ErrStorage}, "3", "date=2024-06-01").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeUseCase{err: getAvailableSlots.ErrInternal}, "3", "date=2024-06-01").Code)
}
