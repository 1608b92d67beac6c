// Package testutil in-memory fakes of the storage layer for usecase and service tests.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/internal/infra/storage/booking"
	"github.com/m04kA/EV-ChargingService/internal/infra/storage/charging_log"
	"github.com/m04kA/EV-ChargingService/internal/infra/storage/station"
)

// Store общее состояние фейковых репозиториев
type Store struct {
	mu sync.Mutex

	Stations map[int64]*domain.Station
	Columns  map[int64]*domain.Column
	Points   map[int64]*domain.ChargingPoint
	Bookings map[int64]*domain.Booking
	Logs     map[int64]*domain.ChargingLog

	failures map[string]error
	nextID   int64
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		Stations: make(map[int64]*domain.Station),
		Columns:  make(map[int64]*domain.Column),
		Points:   make(map[int64]*domain.ChargingPoint),
		Bookings: make(map[int64]*domain.Booking),
		Logs:     make(map[int64]*domain.ChargingLog),
		failures: make(map[string]error),
	}
}

// Fail заставляет операцию op возвращать err
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) failure(op string) error {
	return s.failures[op]
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// AddPoint создает станцию, колонку и точку с заданным статусом
func (s *Store) AddPoint(status domain.PointStatus) *domain.ChargingPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &domain.Station{ID: s.id(), Name: "Station"}
	s.Stations[st.ID] = st

	col := &domain.Column{ID: s.id(), StationID: st.ID, ColumnNumber: 1, PowerKW: 22, ConnectorType: "Type 2"}
	s.Columns[col.ID] = col

	p := &domain.ChargingPoint{ID: s.id(), ColumnID: col.ID, StationID: st.ID, PointNumber: 1, Status: status}
	s.Points[p.ID] = p

	cp := *p
	return &cp
}

// AddBooking сохраняет бронирование как есть
func (s *Store) AddBooking(b domain.Booking) *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.id()
	s.Bookings[b.ID] = &b

	cp := b
	return &cp
}

// AddLog сохраняет запись о сессии как есть
func (s *Store) AddLog(l domain.ChargingLog) *domain.ChargingLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.ID = s.id()
	s.Logs[l.ID] = &l

	cp := l
	return &cp
}

// Booking возвращает копию бронирования
func (s *Store) Booking(id int64) domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.Bookings[id]
}

// Point возвращает копию точки
func (s *Store) Point(id int64) domain.ChargingPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.Points[id]
}

// Log возвращает копию записи о сессии
func (s *Store) Log(id int64) domain.ChargingLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.Logs[id]
}

// snapshot глубокая копия состояния для отката транзакции
func (s *Store) snapshot() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := NewStore()
	cp.nextID = s.nextID
	for k, v := range s.Stations {
		c := *v
		cp.Stations[k] = &c
	}
	for k, v := range s.Columns {
		c := *v
		cp.Columns[k] = &c
	}
	for k, v := range s.Points {
		c := *v
		cp.Points[k] = &c
	}
	for k, v := range s.Bookings {
		c := *v
		cp.Bookings[k] = &c
	}
	for k, v := range s.Logs {
		c := *v
		if v.EndTime != nil {
			end := *v.EndTime
			c.EndTime = &end
		}
		cp.Logs[k] = &c
	}
	return cp
}

func (s *Store) restore(from *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Stations = from.Stations
	s.Columns = from.Columns
	s.Points = from.Points
	s.Bookings = from.Bookings
	s.Logs = from.Logs
	s.nextID = from.nextID
}

// BookingRepo фейк репозитория бронирований
type BookingRepo struct{ *Store }

// Create сохраняет бронирование
func (r BookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("CreateBooking"); err != nil {
		return nil, err
	}

	cp := *b
	cp.ID = r.id()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.Bookings[cp.ID] = &cp

	out := cp
	return &out, nil
}

// GetByID возвращает бронирование или booking.ErrBookingNotFound
func (r BookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("GetBooking"); err != nil {
		return nil, err
	}

	b, ok := r.Bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

// GetByUserID бронирования пользователя, новые первыми
func (r BookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("GetByUserID"); err != nil {
		return nil, err
	}

	out := make([]*domain.Booking, 0)
	for _, b := range r.Bookings {
		if b.UserID != userID || (status != nil && b.Status != *status) {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sortBookings(out, true)
	return out, nil
}

// GetWithFilter бронирования по фильтру администратора
func (r BookingRepo) GetWithFilter(_ context.Context, f domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("GetWithFilter"); err != nil {
		return nil, err
	}

	out := make([]*domain.Booking, 0)
	for _, b := range r.Bookings {
		if f.ChargingPointID != nil && b.ChargingPointID != *f.ChargingPointID {
			continue
		}
		if f.UserID != nil && b.UserID != *f.UserID {
			continue
		}
		if f.Date != nil && !sameDate(b.BookingDate, *f.Date) {
			continue
		}
		if f.Status != nil && b.Status != *f.Status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sortBookings(out, f.Date == nil)
	if f.Limit > 0 && uint64(len(out)) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// FindOverlapping незавершенные бронирования точки на дату, пересекающиеся с окном
func (r BookingRepo) FindOverlapping(_ context.Context, q domain.OverlapQuery) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("FindOverlapping"); err != nil {
		return nil, err
	}

	out := make([]*domain.Booking, 0)
	for _, b := range r.Bookings {
		if b.ChargingPointID != q.ChargingPointID || !sameDate(b.BookingDate, q.Date) || !b.IsNonTerminal() {
			continue
		}
		if q.ExcludeBookingID != nil && b.ID == *q.ExcludeBookingID {
			continue
		}
		if q.Window != nil && !b.Window().Overlaps(*q.Window) {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sortBookings(out, false)
	return out, nil
}

// CompareAndSetStatus меняет статус, если текущий равен expected
func (r BookingRepo) CompareAndSetStatus(_ context.Context, id int64, expected, next domain.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("CompareAndSetStatus"); err != nil {
		return false, err
	}

	b, ok := r.Bookings[id]
	if !ok || b.Status != expected {
		return false, nil
	}
	b.Status = next
	b.UpdatedAt = time.Now()
	return true, nil
}

// GetStale запланированные бронирования, начало которых раньше cutoff
func (r BookingRepo) GetStale(_ context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("GetStale"); err != nil {
		return nil, err
	}

	cutoffDate := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)
	cutoffMinutes := cutoff.Hour()*60 + cutoff.Minute()

	out := make([]*domain.Booking, 0)
	for _, b := range r.Bookings {
		if b.Status != domain.StatusScheduled {
			continue
		}
		date := time.Date(b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(cutoffDate) || (date.Equal(cutoffDate) && b.StartTime.Minutes() < cutoffMinutes) {
			cp := *b
			out = append(out, &cp)
		}
	}
	sortBookings(out, false)
	return out, nil
}

// StationRepo фейк репозитория станций
type StationRepo struct{ *Store }

// CreateStation сохраняет станцию
func (r StationRepo) CreateStation(_ context.Context, st *domain.Station) (*domain.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("CreateStation"); err != nil {
		return nil, err
	}

	cp := *st
	cp.ID = r.id()
	r.Stations[cp.ID] = &cp
	out := cp
	return &out, nil
}

// GetStationByID возвращает станцию или station.ErrStationNotFound
func (r StationRepo) GetStationByID(_ context.Context, id int64) (*domain.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("GetStationByID"); err != nil {
		return nil, err
	}

	st, ok := r.Stations[id]
	if !ok {
		return nil, station.ErrStationNotFound
	}
	cp := *st
	return &cp, nil
}

// ListStationSummaries станции со счетчиками точек
func (r StationRepo) ListStationSummaries(_ context.Context, onlyAvailable bool) ([]*domain.StationSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("ListStationSummaries"); err != nil {
		return nil, err
	}

	out := make([]*domain.StationSummary, 0)
	for _, st := range r.Stations {
		summary := &domain.StationSummary{Station: *st}
		for _, p := range r.Points {
			if p.StationID != st.ID {
				continue
			}
			summary.TotalPoints++
			if p.Status == domain.PointAvailable {
				summary.AvailablePoints++
			}
		}
		if onlyAvailable && summary.AvailablePoints == 0 {
			continue
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreateColumn сохраняет колонку
func (r StationRepo) CreateColumn(_ context.Context, col *domain.Column) (*domain.Column, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("CreateColumn"); err != nil {
		return nil, err
	}
	if _, ok := r.Stations[col.StationID]; !ok {
		return nil, station.ErrStationNotFound
	}
	for _, c := range r.Columns {
		if c.StationID == col.StationID && c.ColumnNumber == col.ColumnNumber {
			return nil, station.ErrDuplicate
		}
	}

	cp := *col
	cp.ID = r.id()
	r.Columns[cp.ID] = &cp
	out := cp
	return &out, nil
}

// GetColumnByID возвращает колонку или station.ErrColumnNotFound
func (r StationRepo) GetColumnByID(_ context.Context, id int64) (*domain.Column, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.Columns[id]
	if !ok {
		return nil, station.ErrColumnNotFound
	}
	cp := *c
	return &cp, nil
}

// CreatePoint сохраняет точку
func (r StationRepo) CreatePoint(_ context.Context, p *domain.ChargingPoint) (*domain.ChargingPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("CreatePoint"); err != nil {
		return nil, err
	}
	col, ok := r.Columns[p.ColumnID]
	if !ok {
		return nil, station.ErrColumnNotFound
	}
	for _, existing := range r.Points {
		if existing.ColumnID == p.ColumnID && existing.PointNumber == p.PointNumber {
			return nil, station.ErrDuplicate
		}
	}

	cp := *p
	cp.ID = r.id()
	cp.StationID = col.StationID
	r.Points[cp.ID] = &cp
	out := cp
	return &out, nil
}

// GetPointByID возвращает точку или station.ErrPointNotFound
func (r StationRepo) GetPointByID(_ context.Context, id int64) (*domain.ChargingPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("GetPointByID"); err != nil {
		return nil, err
	}

	p, ok := r.Points[id]
	if !ok {
		return nil, station.ErrPointNotFound
	}
	cp := *p
	return &cp, nil
}

// ListPointDetails точки станции с данными колонок
func (r StationRepo) ListPointDetails(_ context.Context, stationID int64) ([]domain.PointDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.PointDetails, 0)
	for _, p := range r.Points {
		if p.StationID != stationID {
			continue
		}
		col := r.Columns[p.ColumnID]
		out = append(out, domain.PointDetails{
			ChargingPoint: *p,
			ColumnNumber:  col.ColumnNumber,
			PowerKW:       col.PowerKW,
			ConnectorType: col.ConnectorType,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ColumnNumber != out[j].ColumnNumber {
			return out[i].ColumnNumber < out[j].ColumnNumber
		}
		return out[i].PointNumber < out[j].PointNumber
	})
	return out, nil
}

// SyncPointStatus пересчитывает статус точки по бронированиям
func (r StationRepo) SyncPointStatus(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("SyncPointStatus"); err != nil {
		return err
	}

	p, ok := r.Points[id]
	if !ok || p.Status == domain.PointMaintenance {
		return nil
	}

	status := domain.PointAvailable
	for _, b := range r.Bookings {
		if b.ChargingPointID != id {
			continue
		}
		if b.Status == domain.StatusActive {
			status = domain.PointInUse
			break
		}
		if b.Status == domain.StatusScheduled {
			status = domain.PointReserved
		}
	}
	p.Status = status
	return nil
}

// SetPointStatusIf меняет статус точки, если текущий равен expected
func (r StationRepo) SetPointStatusIf(_ context.Context, id int64, expected, next domain.PointStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("SetPointStatusIf"); err != nil {
		return false, err
	}

	p, ok := r.Points[id]
	if !ok || p.Status != expected {
		return false, nil
	}
	p.Status = next
	return true, nil
}

// LogRepo фейк репозитория зарядных сессий
type LogRepo struct{ *Store }

// Create сохраняет запись о сессии
func (r LogRepo) Create(_ context.Context, l *domain.ChargingLog) (*domain.ChargingLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("CreateLog"); err != nil {
		return nil, err
	}

	cp := *l
	cp.ID = r.id()
	r.Logs[cp.ID] = &cp
	out := cp
	return &out, nil
}

// GetByID возвращает запись или charging_log.ErrLogNotFound
func (r LogRepo) GetByID(_ context.Context, id int64) (*domain.ChargingLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("GetLog"); err != nil {
		return nil, err
	}

	l, ok := r.Logs[id]
	if !ok {
		return nil, charging_log.ErrLogNotFound
	}
	cp := *l
	return &cp, nil
}

// GetByBookingID возвращает сессию бронирования или charging_log.ErrLogNotFound
func (r LogRepo) GetByBookingID(_ context.Context, bookingID int64) (*domain.ChargingLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("GetLogByBooking"); err != nil {
		return nil, err
	}

	for _, l := range r.Logs {
		if l.BookingID == bookingID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, charging_log.ErrLogNotFound
}

// Complete завершает сессию, если она in_progress
func (r LogRepo) Complete(_ context.Context, id int64, endTime time.Time, energy, cost float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("CompleteLog"); err != nil {
		return false, err
	}

	l, ok := r.Logs[id]
	if !ok || l.Status != domain.LogInProgress {
		return false, nil
	}
	end := endTime
	l.EndTime = &end
	l.EnergyConsumed = energy
	l.Cost = cost
	l.Status = domain.LogCompleted
	return true, nil
}

// AggregateCompleted агрегат завершенных сессий пользователя с началом в [from, to)
func (r LogRepo) AggregateCompleted(_ context.Context, userID int64, from, to *time.Time) (domain.StatsBucket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.failure("AggregateCompleted"); err != nil {
		return domain.StatsBucket{}, err
	}

	var bucket domain.StatsBucket
	for _, l := range r.Logs {
		if l.UserID != userID || l.Status != domain.LogCompleted {
			continue
		}
		if from != nil && l.StartTime.Before(*from) {
			continue
		}
		if to != nil && !l.StartTime.Before(*to) {
			continue
		}
		bucket.Sessions++
		bucket.EnergyKwh += l.EnergyConsumed
		bucket.Cost += l.Cost
	}
	return bucket, nil
}

type txKey struct{}

// TxManager фейк менеджера транзакций: транзакции выполняются по одной,
// при ошибке состояние хранилища откатывается
type TxManager struct {
	store *Store
	mu    sync.Mutex

	// SerializationErr возвращается из DoSerializable вместо выполнения fn
	SerializationErr error
}

// NewTxManager создает фейк менеджера транзакций поверх store
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Do выполняет fn в транзакции
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.SerializationErr != nil {
		return m.SerializationErr
	}
	return m.run(ctx, fn)
}

// DoReadOnly выполняет fn в читающей транзакции
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.store.snapshot()
	defer func() {
		if p := recover(); p != nil {
			m.store.restore(snap)
			panic(p)
		}
		if err != nil {
			m.store.restore(snap)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, true))
}

// ErrInjected ошибка для проверки путей отказа хранилища
var ErrInjected = errors.New("testutil: injected failure")

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func sortBookings(bookings []*domain.Booking, newestFirst bool) {
	sort.Slice(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !sameDate(a.BookingDate, b.BookingDate) {
			if newestFirst {
				return a.BookingDate.After(b.BookingDate)
			}
			return a.BookingDate.Before(b.BookingDate)
		}
		if a.StartTime != b.StartTime {
			if newestFirst {
				return a.StartTime.Minutes() > b.StartTime.Minutes()
			}
			return a.StartTime.Minutes() < b.StartTime.Minutes()
		}
		return a.ID < b.ID
	})
}
