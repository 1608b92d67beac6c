package models

import "github.com/m04kA/EV-ChargingService/internal/domain"

// BucketResponse агрегат завершенных сессий за период
type BucketResponse struct {
	Sessions  int     `json:"sessions"`
	EnergyKwh float64 `json:"energyKwh"`
	Cost      float64 `json:"cost"`
}

// UserStatsResponse статистика пользователя за все время, текущий год и месяц
type UserStatsResponse struct {
	UserID  int64          `json:"userId"`
	Year    int            `json:"year"`
	Month   int            `json:"month"`
	Total   BucketResponse `json:"total"`
	Yearly  BucketResponse `json:"yearly"`
	Monthly BucketResponse `json:"monthly"`
}

// FromDomainBucket конвертирует domain агрегат в DTO
func FromDomainBucket(b domain.StatsBucket) BucketResponse {
	return BucketResponse{
		Sessions:  b.Sessions,
		EnergyKwh: b.EnergyKwh,
		Cost:      b.Cost,
	}
}

// FromDomainStats конвертирует domain статистику в DTO
func FromDomainStats(s *domain.UserStats) *UserStatsResponse {
	return &UserStatsResponse{
		UserID:  s.UserID,
		Year:    s.Year,
		Month:   s.Month,
		Total:   FromDomainBucket(s.Total),
		Yearly:  FromDomainBucket(s.Yearly),
		Monthly: FromDomainBucket(s.Monthly),
	}
}
