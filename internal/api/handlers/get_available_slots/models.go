package get_available_slots

import (
	"net/url"
	"strconv"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/domain"
	getAvailableSlots "github.com/m04kA/EV-ChargingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ChargingPointID int64           `json:"chargingPointId"`
	Date            string          `json:"date"`
	DurationMinutes int             `json:"durationMinutes"`
	IntervalMinutes int             `json:"intervalMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель свободного окна
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		ChargingPointID: resp.ChargingPointID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		IntervalMinutes: resp.IntervalMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(pointID int64, query url.Values) (*getAvailableSlots.Request, error) {
	date, err := handlers.ParseDate(query.Get("date"))
	if err != nil {
		return nil, err
	}

	duration, err := optionalInt(query.Get("duration"))
	if err != nil {
		return nil, err
	}
	interval, err := optionalInt(query.Get("interval"))
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ChargingPointID: pointID,
		Date:            date,
		DurationMinutes: duration,
		IntervalMinutes: interval,
	}, nil
}

// optionalInt пустая строка дает 0 (значение по умолчанию)
func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
