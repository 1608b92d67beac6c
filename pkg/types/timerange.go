package types

import (
	"errors"
	"fmt"
)

// ErrInvalidTimeRange возвращается, когда конец интервала не позже начала
var ErrInvalidTimeRange = errors.New("invalid time range")

// TimeRange полуоткрытый интервал [Start, End) внутри одних суток
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// NewTimeRange создает интервал и проверяет, что End > Start
func NewTimeRange(start, end TimeString) (TimeRange, error) {
	r := TimeRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	return r, nil
}

// Validate проверяет формат границ и порядок
func (r TimeRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidTimeRange, err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidTimeRange, err)
	}
	if r.End.Minutes() <= r.Start.Minutes() {
		return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTimeRange, r.End, r.Start)
	}
	return nil
}

// DurationMinutes длительность интервала
func (r TimeRange) DurationMinutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// Overlaps два полуоткрытых интервала пересекаются тогда и только тогда, когда s1 < e2 && s2 < e1.
// Интервалы, которые только соприкасаются (end == otherStart), не пересекаются.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Minutes() < other.End.Minutes() && other.Start.Minutes() < r.End.Minutes()
}

// Contains проверяет, что other целиком лежит внутри r
func (r TimeRange) Contains(other TimeRange) bool {
	return r.Start.Minutes() <= other.Start.Minutes() && other.End.Minutes() <= r.End.Minutes()
}

// String форматирует интервал как "HH:MM-HH:MM"
func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
