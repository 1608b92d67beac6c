package station

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/dberrors"
	"github.com/m04kA/EV-ChargingService/pkg/dbmetrics"
	"github.com/m04kA/EV-ChargingService/pkg/psqlbuilder"
)

const (
	stationsTable = "stations"
	columnsTable  = "charging_columns"
	pointsTable   = "charging_points"
)

var stationColumns = []string{
	"s.id",
	"s.name",
	"s.address_street",
	"s.address_civic",
	"s.address_city",
	"s.municipality",
	"s.zip_code",
	"s.created_at",
	"s.updated_at",
}

var pointColumns = []string{
	"p.id",
	"p.column_id",
	"c.station_id",
	"p.point_number",
	"p.status",
	"p.created_at",
	"p.updated_at",
}

// Repository репозиторий станций, колонок и зарядных точек
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория станций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateStation создает новую станцию
func (r *Repository) CreateStation(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(stationsTable).
		Columns(
			"name",
			"address_street",
			"address_civic",
			"address_city",
			"municipality",
			"zip_code",
		).
		Values(
			station.Name,
			station.AddressStreet,
			station.AddressCivic,
			station.AddressCity,
			station.Municipality,
			station.ZipCode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateStation - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&station.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateStation - execute insert: %w", ErrExecQuery, err)
	}

	station.CreatedAt = createdAt.Time
	station.UpdatedAt = updatedAt.Time

	return station, nil
}

// GetStationByID получает станцию по ID
func (r *Repository) GetStationByID(ctx context.Context, id int64) (*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(stationColumns...).
		From(stationsTable + " s").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStationByID - build select query: %v", ErrBuildQuery, err)
	}

	var station domain.Station
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&station.ID,
		&station.Name,
		&station.AddressStreet,
		&station.AddressCivic,
		&station.AddressCity,
		&station.Municipality,
		&station.ZipCode,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStationByID - scan station: %w", ErrScanRow, err)
	}

	station.CreatedAt = createdAt.Time
	station.UpdatedAt = updatedAt.Time

	return &station, nil
}

// ListStationSummaries получает станции со счетчиками точек.
// При onlyAvailable возвращает только станции, где есть свободная точка.
func (r *Repository) ListStationSummaries(ctx context.Context, onlyAvailable bool) ([]*domain.StationSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := summariesQuery(onlyAvailable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStationSummaries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStationSummaries - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	summaries := make([]*domain.StationSummary, 0)

	for rows.Next() {
		var summary domain.StationSummary
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.AddressStreet,
			&summary.AddressCivic,
			&summary.AddressCity,
			&summary.Municipality,
			&summary.ZipCode,
			&createdAt,
			&updatedAt,
			&summary.TotalPoints,
			&summary.AvailablePoints,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListStationSummaries - scan row: %w", ErrScanRow, err)
		}

		summary.CreatedAt = createdAt.Time
		summary.UpdatedAt = updatedAt.Time

		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStationSummaries - rows error: %w", ErrScanRow, err)
	}

	return summaries, nil
}

// CreateColumn создает колонку на станции
func (r *Repository) CreateColumn(ctx context.Context, column *domain.Column) (*domain.Column, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(columnsTable).
		Columns("station_id", "column_number", "power_kw", "connector_type").
		Values(column.StationID, column.ColumnNumber, column.PowerKW, column.ConnectorType).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateColumn - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&column.ID, &createdAt)

	if dberrors.IsUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if dberrors.IsForeignKeyViolation(err) {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateColumn - execute insert: %w", ErrExecQuery, err)
	}

	column.CreatedAt = createdAt.Time

	return column, nil
}

// GetColumnByID получает колонку по ID
func (r *Repository) GetColumnByID(ctx context.Context, id int64) (*domain.Column, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"station_id",
		"column_number",
		"power_kw",
		"connector_type",
		"created_at",
	).
		From(columnsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetColumnByID - build select query: %v", ErrBuildQuery, err)
	}

	var column domain.Column
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&column.ID,
		&column.StationID,
		&column.ColumnNumber,
		&column.PowerKW,
		&column.ConnectorType,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrColumnNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetColumnByID - scan column: %w", ErrScanRow, err)
	}

	column.CreatedAt = createdAt.Time

	return &column, nil
}

// CreatePoint создает зарядную точку на колонке
func (r *Repository) CreatePoint(ctx context.Context, point *domain.ChargingPoint) (*domain.ChargingPoint, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(pointsTable).
		Columns("column_id", "point_number", "status").
		Values(point.ColumnID, point.PointNumber, point.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePoint - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&point.ID, &createdAt, &updatedAt)

	if dberrors.IsUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if dberrors.IsForeignKeyViolation(err) {
		return nil, ErrColumnNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePoint - execute insert: %w", ErrExecQuery, err)
	}

	point.CreatedAt = createdAt.Time
	point.UpdatedAt = updatedAt.Time

	return point, nil
}

// GetPointByID получает зарядную точку по ID вместе с ID станции.
// Внутри транзакции строка точки блокируется (FOR UPDATE OF p).
func (r *Repository) GetPointByID(ctx context.Context, id int64) (*domain.ChargingPoint, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := pointQuery(id, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPointByID - build select query: %v", ErrBuildQuery, err)
	}

	var point domain.ChargingPoint
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&point.ID,
		&point.ColumnID,
		&point.StationID,
		&point.PointNumber,
		&point.Status,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPointNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPointByID - scan point: %w", ErrScanRow, err)
	}

	point.CreatedAt = createdAt.Time
	point.UpdatedAt = updatedAt.Time

	return &point, nil
}

// ListPointDetails получает все точки станции с данными колонок
func (r *Repository) ListPointDetails(ctx context.Context, stationID int64) ([]domain.PointDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectColumns := append(append([]string{}, pointColumns...), "c.column_number", "c.power_kw", "c.connector_type")

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(pointsTable + " p").
		Join(columnsTable + " c ON c.id = p.column_id").
		Where(squirrel.Eq{"c.station_id": stationID}).
		OrderBy("c.column_number ASC", "p.point_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPointDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPointDetails - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	points := make([]domain.PointDetails, 0)

	for rows.Next() {
		var point domain.PointDetails
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&point.ID,
			&point.ColumnID,
			&point.StationID,
			&point.PointNumber,
			&point.Status,
			&createdAt,
			&updatedAt,
			&point.ColumnNumber,
			&point.PowerKW,
			&point.ConnectorType,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListPointDetails - scan row: %w", ErrScanRow, err)
		}

		point.CreatedAt = createdAt.Time
		point.UpdatedAt = updatedAt.Time

		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPointDetails - rows error: %w", ErrScanRow, err)
	}

	return points, nil
}

// SyncPointStatus пересчитывает статус точки по ее бронированиям:
// есть active - in_use, есть scheduled - reserved, иначе available.
// Точка на обслуживании не меняется
func (r *Repository) SyncPointStatus(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := syncQuery(id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: SyncPointStatus - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SyncPointStatus - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

// SetPointStatusIf меняет статус точки, только если текущий равен expected
func (r *Repository) SetPointStatusIf(ctx context.Context, id int64, expected, next domain.PointStatus) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(pointsTable).
		Set("status", next).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": expected}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: SetPointStatusIf - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: SetPointStatusIf - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: SetPointStatusIf - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

const pointStatusExpr = "CASE" +
	" WHEN EXISTS (SELECT 1 FROM bookings b WHERE b.charging_point_id = charging_points.id AND b.status = ?) THEN ?" +
	" WHEN EXISTS (SELECT 1 FROM bookings b WHERE b.charging_point_id = charging_points.id AND b.status = ?) THEN ?" +
	" ELSE ? END"

func syncQuery(id int64) squirrel.UpdateBuilder {
	return psqlbuilder.Update(pointsTable).
		Set("status", squirrel.Expr(pointStatusExpr,
			domain.StatusActive, domain.PointInUse,
			domain.StatusScheduled, domain.PointReserved,
			domain.PointAvailable,
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.PointMaintenance})
}

func summariesQuery(onlyAvailable bool) squirrel.SelectBuilder {
	availableCount := fmt.Sprintf("COUNT(p.id) FILTER (WHERE p.status = '%s')", domain.PointAvailable)

	selectColumns := append(append([]string{}, stationColumns...),
		"COUNT(p.id) AS total_points",
		availableCount+" AS available_points",
	)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From(stationsTable + " s").
		LeftJoin(columnsTable + " c ON c.station_id = s.id").
		LeftJoin(pointsTable + " p ON p.column_id = c.id").
		GroupBy("s.id").
		OrderBy("s.name ASC", "s.id ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Having(availableCount + " > 0")
	}

	return selectBuilder
}

func pointQuery(id int64, forUpdate bool) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(pointColumns...).
		From(pointsTable + " p").
		Join(columnsTable + " c ON c.id = p.column_id").
		Where(squirrel.Eq{"p.id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF p")
	}

	return selectBuilder
}
