package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	createBooking "github.com/m04kA/EV-ChargingService/internal/usecase/create_booking"
	"github.com/m04kA/EV-ChargingService/pkg/types"
)

var (
	errParseDate = errors.New("parse date")
	errParseTime = errors.New("parse time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ChargingPointID int64  `json:"chargingPointId"`
	BookingDate     string `json:"bookingDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`   // "10:00"
	EndTime         string `json:"endTime"`     // "11:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	ChargingPointID int64  `json:"chargingPointId"`
	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParseDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParseTime, err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParseTime, err)
	}

	return &createBooking.Request{
		UserID:          userID,
		ChargingPointID: r.ChargingPointID,
		Date:            bookingDate,
		StartTime:       startTime,
		EndTime:         endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		ChargingPointID: resp.ChargingPointID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
