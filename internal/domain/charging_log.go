package domain

import (
	"math"
	"time"
)

// ChargingLogStatus status of a charging session record
type ChargingLogStatus string

const (
	LogInProgress ChargingLogStatus = "in_progress"
	LogCompleted  ChargingLogStatus = "completed"
)

// ChargingLog records one charging session of a booking
type ChargingLog struct {
	ID              int64
	BookingID       int64
	UserID          int64
	ChargingPointID int64
	StartTime       time.Time
	EndTime         *time.Time
	EnergyConsumed  float64 // kWh
	Cost            float64
	Status          ChargingLogStatus
	CreatedAt       time.Time
}

// Duration of a completed session, zero while in progress
func (l *ChargingLog) Duration() time.Duration {
	if l.EndTime == nil {
		return 0
	}
	return l.EndTime.Sub(l.StartTime)
}

// ChargingCost energy times price rounded to CostPrecision decimals
func ChargingCost(energyKwh, pricePerKwh float64) float64 {
	scale := math.Pow10(CostPrecision)
	return math.Round(energyKwh*pricePerKwh*scale) / scale
}
