package charging_log

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/dbmetrics"
	"github.com/m04kA/EV-ChargingService/pkg/psqlbuilder"
)

const table = "charging_logs"

// Repository репозиторий записей о зарядных сессиях
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория зарядных сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о начатой сессии
func (r *Repository) Create(ctx context.Context, log *domain.ChargingLog) (*domain.ChargingLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"booking_id",
			"user_id",
			"charging_point_id",
			"start_time",
			"energy_consumed",
			"cost",
			"status",
		).
		Values(
			log.BookingID,
			log.UserID,
			log.ChargingPointID,
			log.StartTime,
			log.EnergyConsumed,
			log.Cost,
			log.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&log.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	log.CreatedAt = createdAt.Time

	return log, nil
}

// GetByID получает запись о сессии по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ChargingLog, error) {
	query, args, err := logQuery(squirrel.Eq{"id": id}, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanLog(ctx, "GetByID", query, args)
}

// GetByBookingID получает сессию бронирования.
// На бронирование приходится не больше одной сессии (uq_charging_logs_booking)
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.ChargingLog, error) {
	query, args, err := logQuery(squirrel.Eq{"booking_id": bookingID}, false).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanLog(ctx, "GetByBookingID", query, args)
}

func (r *Repository) scanLog(ctx context.Context, op, query string, args []interface{}) (*domain.ChargingLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var log domain.ChargingLog
	var endTime, createdAt sql.NullTime

	err := executor.QueryRowContext(ctx, query, args...).Scan(
		&log.ID,
		&log.BookingID,
		&log.UserID,
		&log.ChargingPointID,
		&log.StartTime,
		&endTime,
		&log.EnergyConsumed,
		&log.Cost,
		&log.Status,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan log: %w", ErrScanRow, op, err)
	}

	if endTime.Valid {
		end := endTime.Time
		log.EndTime = &end
	}
	log.CreatedAt = createdAt.Time

	return &log, nil
}

func logQuery(where squirrel.Eq, lock bool) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(
		"id",
		"booking_id",
		"user_id",
		"charging_point_id",
		"start_time",
		"end_time",
		"energy_consumed",
		"cost",
		"status",
		"created_at",
	).
		From(table).
		Where(where)

	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}
	return selectBuilder
}

// Complete завершает сессию, только если она еще in_progress.
// Возвращает false, если запись уже завершена или не существует.
func (r *Repository) Complete(ctx context.Context, id int64, endTime time.Time, energy, cost float64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("end_time", endTime).
		Set("energy_consumed", energy).
		Set("cost", cost).
		Set("status", domain.LogCompleted).
		Where(squirrel.Eq{"id": id, "status": domain.LogInProgress}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Complete - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Complete - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// AggregateCompleted считает количество, энергию и стоимость завершенных сессий пользователя
// с началом в [from, to). nil границы не ограничивают выборку.
func (r *Repository) AggregateCompleted(ctx context.Context, userID int64, from, to *time.Time) (domain.StatsBucket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := aggregateQuery(userID, from, to).ToSql()
	if err != nil {
		return domain.StatsBucket{}, fmt.Errorf("%w: AggregateCompleted - build select query: %v", ErrBuildQuery, err)
	}

	var bucket domain.StatsBucket
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bucket.Sessions,
		&bucket.EnergyKwh,
		&bucket.Cost,
	)

	if err != nil {
		return domain.StatsBucket{}, fmt.Errorf("%w: AggregateCompleted - scan aggregate: %w", ErrScanRow, err)
	}

	return bucket, nil
}

func aggregateQuery(userID int64, from, to *time.Time) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(
		"COUNT(*)",
		"COALESCE(SUM(energy_consumed), 0)",
		"COALESCE(SUM(cost), 0)",
	).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "status": domain.LogCompleted})

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *to})
	}

	return selectBuilder
}
