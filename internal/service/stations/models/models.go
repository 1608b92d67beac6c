package models

import (
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

// Request модели

// CreateStationRequest запрос на создание станции
type CreateStationRequest struct {
	Name          string `json:"name"`
	AddressStreet string `json:"addressStreet"`
	AddressCivic  string `json:"addressCivic"`
	AddressCity   string `json:"addressCity"`
	Municipality  string `json:"municipality"`
	ZipCode       string `json:"zipCode"`
}

// ToDomainStation конвертирует request в domain модель
func (r *CreateStationRequest) ToDomainStation() *domain.Station {
	return &domain.Station{
		Name:          r.Name,
		AddressStreet: r.AddressStreet,
		AddressCivic:  r.AddressCivic,
		AddressCity:   r.AddressCity,
		Municipality:  r.Municipality,
		ZipCode:       r.ZipCode,
	}
}

// CreateColumnRequest запрос на создание колонки
type CreateColumnRequest struct {
	StationID     int64   `json:"-"`
	ColumnNumber  int     `json:"columnNumber"`
	PowerKW       float64 `json:"powerKw"`
	ConnectorType string  `json:"connectorType"`
}

// CreatePointRequest запрос на создание зарядной точки
type CreatePointRequest struct {
	ColumnID    int64 `json:"-"`
	PointNumber int   `json:"pointNumber"`
}

// SetPointStatusRequest запрос на перевод точки на обслуживание и обратно
type SetPointStatusRequest struct {
	Status string `json:"status"` // "maintenance" или "available"
}

// Response модели

// StationResponse ответ с данными станции
type StationResponse struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	AddressStreet          string    `json:"addressStreet"`
	AddressCivic           string    `json:"addressCivic"`
	AddressCity            string    `json:"addressCity"`
	Municipality           string    `json:"municipality"`
	ZipCode                string    `json:"zipCode"`
	TotalPoints            *int      `json:"totalPoints,omitempty"`
	AvailablePoints        *int      `json:"availablePoints,omitempty"`
	AvailabilityPercentage *int      `json:"availabilityPercentage,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// StationListResponse ответ со списком станций
type StationListResponse struct {
	Stations []StationResponse `json:"stations"`
}

// PointResponse ответ с данными зарядной точки
type PointResponse struct {
	ID            int64    `json:"id"`
	ColumnID      int64    `json:"columnId"`
	StationID     int64    `json:"stationId"`
	PointNumber   int      `json:"pointNumber"`
	Status        string   `json:"status"`
	ColumnNumber  *int     `json:"columnNumber,omitempty"`
	PowerKW       *float64 `json:"powerKw,omitempty"`
	ConnectorType *string  `json:"connectorType,omitempty"`
}

// ColumnResponse ответ с данными колонки
type ColumnResponse struct {
	ID            int64     `json:"id"`
	StationID     int64     `json:"stationId"`
	ColumnNumber  int       `json:"columnNumber"`
	PowerKW       float64   `json:"powerKw"`
	ConnectorType string    `json:"connectorType"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StationStatusResponse станция со всеми зарядными точками
type StationStatusResponse struct {
	Station StationResponse `json:"station"`
	Points  []PointResponse `json:"points"`
}

// Методы конвертации

// FromDomainStation конвертирует domain модель в DTO
func FromDomainStation(s *domain.Station) *StationResponse {
	if s == nil {
		return nil
	}

	return &StationResponse{
		ID:            s.ID,
		Name:          s.Name,
		AddressStreet: s.AddressStreet,
		AddressCivic:  s.AddressCivic,
		AddressCity:   s.AddressCity,
		Municipality:  s.Municipality,
		ZipCode:       s.ZipCode,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// FromDomainSummary конвертирует станцию со счетчиками в DTO
func FromDomainSummary(s *domain.StationSummary) *StationResponse {
	if s == nil {
		return nil
	}

	resp := FromDomainStation(&s.Station)
	total, available, percentage := s.TotalPoints, s.AvailablePoints, s.AvailabilityPercentage()
	resp.TotalPoints = &total
	resp.AvailablePoints = &available
	resp.AvailabilityPercentage = &percentage
	return resp
}

// FromDomainSummaryList конвертирует список станций в DTO
func FromDomainSummaryList(summaries []*domain.StationSummary) *StationListResponse {
	resp := &StationListResponse{
		Stations: make([]StationResponse, 0, len(summaries)),
	}

	for _, summary := range summaries {
		if s := FromDomainSummary(summary); s != nil {
			resp.Stations = append(resp.Stations, *s)
		}
	}

	return resp
}

// FromDomainColumn конвертирует колонку в DTO
func FromDomainColumn(c *domain.Column) *ColumnResponse {
	if c == nil {
		return nil
	}

	return &ColumnResponse{
		ID:            c.ID,
		StationID:     c.StationID,
		ColumnNumber:  c.ColumnNumber,
		PowerKW:       c.PowerKW,
		ConnectorType: c.ConnectorType,
		CreatedAt:     c.CreatedAt,
	}
}

// FromDomainPoint конвертирует зарядную точку в DTO
func FromDomainPoint(p *domain.ChargingPoint) *PointResponse {
	if p == nil {
		return nil
	}

	return &PointResponse{
		ID:          p.ID,
		ColumnID:    p.ColumnID,
		StationID:   p.StationID,
		PointNumber: p.PointNumber,
		Status:      string(p.Status),
	}
}

// FromDomainStationStatus конвертирует станцию с точками в DTO
func FromDomainStationStatus(status *domain.StationStatus) *StationStatusResponse {
	resp := &StationStatusResponse{
		Station: *FromDomainStation(&status.Station),
		Points:  make([]PointResponse, 0, len(status.Points)),
	}

	for i := range status.Points {
		details := status.Points[i]
		point := FromDomainPoint(&details.ChargingPoint)
		point.ColumnNumber = &details.ColumnNumber
		point.PowerKW = &details.PowerKW
		point.ConnectorType = &details.ConnectorType
		resp.Points = append(resp.Points, *point)
	}

	return resp
}
