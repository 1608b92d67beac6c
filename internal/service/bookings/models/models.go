package models

import (
	"errors"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetBookingsRequest запрос администратора на получение бронирований
type GetBookingsRequest struct {
	ChargingPointID *int64     `json:"chargingPointId,omitempty"` // Фильтр по точке (опционально)
	UserID          *int64     `json:"userId,omitempty"`          // Фильтр по пользователю (опционально)
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	Limit           uint64     `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ChargingPointID: r.ChargingPointID,
		UserID:          r.UserID,
		Date:            r.Date,
		Limit:           r.Limit,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	ChargingPointID int64     `json:"chargingPointId"`
	BookingDate     string    `json:"bookingDate"` // "2025-10-15"
	StartTime       string    `json:"startTime"`   // "10:00"
	EndTime         string    `json:"endTime"`     // "11:00"
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SessionResponse зарядная сессия бронирования
type SessionResponse struct {
	ID              int64      `json:"id"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	EnergyConsumed  float64    `json:"energyConsumed"`
	Cost            float64    `json:"cost"`
	Status          string     `json:"status"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		ChargingPointID: b.ChargingPointID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainChargingLog конвертирует запись о сессии в DTO
func FromDomainChargingLog(l *domain.ChargingLog) *SessionResponse {
	if l == nil {
		return nil
	}

	return &SessionResponse{
		ID:              l.ID,
		StartTime:       l.StartTime,
		EndTime:         l.EndTime,
		DurationMinutes: int(l.Duration().Minutes()),
		EnergyConsumed:  l.EnergyConsumed,
		Cost:            l.Cost,
		Status:          string(l.Status),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
