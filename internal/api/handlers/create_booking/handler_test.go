package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
	createBooking "github.com/m04kA/EV-ChargingService/internal/usecase/create_booking"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		ID:              10,
		UserID:          req.UserID,
		ChargingPointID: req.ChargingPointID,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          "scheduled",
		CreatedAt:       time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC),
	}, nil
}

func serve(uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), 7, ""))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

const validBody = `{"chargingPointId":3,"bookingDate":"2024-06-01","startTime":"09:00","endTime":"10:00"}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), uc.got.UserID)
	assert.Equal(t, "09:00", uc.got.StartTime.String())

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2024-06-01", resp.BookingDate)
	assert.Equal(t, "10:00", resp.EndTime)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "broken body", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"chargingPointId":3,"bookingDate":"01.06.2024","startTime":"09:00","endTime":"10:00"}`, wantStatus: http.StatusBadRequest},
		{name: "bad time", body: `{"chargingPointId":3,"bookingDate":"2024-06-01","startTime":"9am","endTime":"10:00"}`, wantStatus: http.StatusBadRequest},
		{name: "slot taken", body: validBody, err: createBooking.ErrSlotUnavailable, wantStatus: http.StatusConflict},
		{name: "point missing", body: validBody, err: createBooking.ErrPointNotFound, wantStatus: http.StatusNotFound},
		{name: "maintenance", body: validBody, err: createBooking.ErrPointUnderMaintenance, wantStatus: http.StatusConflict},
		{name: "past date", body: validBody, err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "storage", body: validBody, err: fmt.Errorf("%w: timeout", createBooking.ErrStorage), wantStatus: http.StatusServiceUnavailable},
		{name: "internal", body: validBody, err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MissingUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	NewHandler(&fakeUseCase{}, logger.NewNop()).Handle(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
