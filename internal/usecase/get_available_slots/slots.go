package get_available_slots

import (
	"time"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/types"
)

// listAvailableSlots перебирает окна длительностью duration от начала рабочего окна с шагом interval,
// пока конец окна не выйдет за operating.End.
// При пересечении с занятым интервалом курсор переносится сразу на его конец.
// booked должны быть отсортированы по началу.
func listAvailableSlots(operating types.TimeRange, duration, interval int, booked []types.TimeRange) []domain.Slot {
	slots := make([]domain.Slot, 0)
	if duration <= 0 || interval <= 0 {
		return slots
	}

	opEnd := operating.End.Minutes()
	current := operating.Start.Minutes()

	for current+duration <= opEnd {
		slotEnd := current + duration
		next := current + interval

		conflict := false
		for _, b := range booked {
			// Занятый интервал заканчивается после current (иначе нет пересечения),
			// поэтому прыжок всегда двигает курсор вперед
			if current < b.End.Minutes() && b.Start.Minutes() < slotEnd {
				conflict = true
				next = b.End.Minutes()
				break
			}
		}

		if !conflict {
			start, _ := types.FromMinutes(current)
			end, _ := types.FromMinutes(slotEnd)
			slots = append(slots, domain.Slot{StartTime: start, EndTime: end})
		}

		current = next
	}

	return slots
}

// dropPastSlots для сегодняшней даты убирает окна, начало которых уже прошло;
// для прошедшей даты возвращает пустой список
func dropPastSlots(slots []domain.Slot, date, now time.Time) []domain.Slot {
	if isDateInPast(date, now) {
		return []domain.Slot{}
	}
	if !isSameDay(date, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)
	result := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if !slot.StartTime.IsBefore(currentTime) {
			result = append(result, slot)
		}
	}
	return result
}

// bookedWindows окна незавершенных бронирований
func bookedWindows(bookings []*domain.Booking) []types.TimeRange {
	windows := make([]types.TimeRange, 0, len(bookings))
	for _, b := range bookings {
		if b.IsNonTerminal() {
			windows = append(windows, b.Window())
		}
	}
	return windows
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
