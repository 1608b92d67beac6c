package charging_log

import "errors"

var (
	// ErrLogNotFound возвращается, когда запись о сессии не найдена
	ErrLogNotFound = errors.New("charging_log.repository: charging log not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("charging_log.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("charging_log.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("charging_log.repository: failed to scan row")
)
