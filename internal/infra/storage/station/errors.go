package station

import "errors"

var (
	// ErrStationNotFound возвращается, когда станция не найдена
	ErrStationNotFound = errors.New("station.repository: station not found")

	// ErrColumnNotFound возвращается, когда колонка не найдена
	ErrColumnNotFound = errors.New("station.repository: column not found")

	// ErrPointNotFound возвращается, когда зарядная точка не найдена
	ErrPointNotFound = errors.New("station.repository: charging point not found")

	// ErrDuplicate возвращается при нарушении уникальности номера колонки или точки
	ErrDuplicate = errors.New("station.repository: duplicate number")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("station.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("station.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("station.repository: failed to scan row")
)
