package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/internal/service/stats/models"
)

// Service сервис статистики зарядных сессий
type Service struct {
	logRepo      ChargingLogRepository
	settings     domain.BookingSettings
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(logRepo ChargingLogRepository, settings domain.BookingSettings, logger Logger) *Service {
	return &Service{
		logRepo:      logRepo,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetUserStats считает сессии, энергию и стоимость пользователя
// за все время, за текущий год и за текущий месяц часового пояса станций
func (s *Service) GetUserStats(ctx context.Context, userID int64) (*models.UserStatsResponse, error) {
	s.logger.Info("GetUserStats: fetching stats for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	now := s.settings.In(s.timeProvider.Now())
	loc := now.Location()

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	yearEnd := yearStart.AddDate(1, 0, 0)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	stats := &domain.UserStats{
		UserID: userID,
		Year:   now.Year(),
		Month:  int(now.Month()),
	}

	periods := []struct {
		name     string
		from, to *time.Time
		bucket   *domain.StatsBucket
	}{
		{name: "total", bucket: &stats.Total},
		{name: "yearly", from: &yearStart, to: &yearEnd, bucket: &stats.Yearly},
		{name: "monthly", from: &monthStart, to: &monthEnd, bucket: &stats.Monthly},
	}

	for _, p := range periods {
		bucket, err := s.logRepo.AggregateCompleted(ctx, userID, p.from, p.to)
		if err != nil {
			s.logger.Error("GetUserStats: failed to aggregate %s stats for user=%d: %v", p.name, userID, err)
			return nil, storageError("GetUserStats - repository error", err)
		}
		*p.bucket = bucket
	}

	s.logger.Info("GetUserStats: user=%d has %d completed sessions", userID, stats.Total.Sessions)
	return models.FromDomainStats(stats), nil
}
