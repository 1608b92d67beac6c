package expire_bookings

import (
	"time"

	expireBookings "github.com/m04kA/EV-ChargingService/internal/usecase/expire_bookings"
)

// ExpireRequest HTTP request model, все поля опциональны
type ExpireRequest struct {
	Now          *time.Time `json:"now,omitempty"`
	GraceMinutes *int       `json:"graceMinutes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *ExpireRequest) ToUseCaseRequest() *expireBookings.Request {
	req := &expireBookings.Request{GraceMinutes: r.GraceMinutes}
	if r.Now != nil {
		req.Now = *r.Now
	}
	return req
}

// ExpireResponse HTTP response model
type ExpireResponse struct {
	Cutoff       string  `json:"cutoff"`
	ExpiredCount int     `json:"expiredCount"`
	ExpiredIDs   []int64 `json:"expiredIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *expireBookings.Response) *ExpireResponse {
	ids := resp.ExpiredIDs
	if ids == nil {
		ids = []int64{}
	}
	return &ExpireResponse{
		Cutoff:       resp.Cutoff.Format(time.RFC3339),
		ExpiredCount: len(ids),
		ExpiredIDs:   ids,
	}
}
