package expire_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	expireBookings "github.com/m04kA/EV-ChargingService/internal/usecase/expire_bookings"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeUseCase struct {
	got *expireBookings.Request
	ids []int64
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *expireBookings.Request) (*expireBookings.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &expireBookings.Response{
		Cutoff:     time.Date(2024, 6, 1, 9, 45, 0, 0, time.UTC),
		ExpiredIDs: f.ids,
	}, nil
}

func serve(uc ExpireBookingsUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/bookings/expire", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_EmptyBody(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.got.Now.IsZero())
	assert.Nil(t, uc.got.GraceMinutes)
	assert.JSONEq(t, `{"cutoff":"2024-06-01T09:45:00Z","expiredCount":0,"expiredIds":[]}`, rec.Body.String())
}

func TestHandle_WithBody(t *testing.T) {
	uc := &fakeUseCase{ids: []int64{4, 9}}
	rec := serve(uc, `{"now":"2024-06-01T10:00:00Z","graceMinutes":15}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), uc.got.Now.UTC())
	require.NotNil(t, uc.got.GraceMinutes)
	assert.Equal(t, 15, *uc.got.GraceMinutes)
	assert.Contains(t, rec.Body.String(), `"expiredCount":2`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, `{"now":"yesterday"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: expireBookings.ErrInvalidInput}, `{"graceMinutes":-5}`).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeUseCase{err: expireBookings.ErrStorage}, "").Code)
}
