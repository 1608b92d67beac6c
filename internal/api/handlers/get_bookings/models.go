package get_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/EV-ChargingService/internal/api/handlers"
	"github.com/m04kA/EV-ChargingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(query url.Values) (*models.GetBookingsRequest, error) {
	req := &models.GetBookingsRequest{}

	// Парсим pointId если указан
	if s := query.Get("pointId"); s != "" {
		pointID, err := handlers.ParseID(s)
		if err != nil {
			return nil, err
		}
		req.ChargingPointID = &pointID
	}

	// Парсим userId если указан
	if s := query.Get("userId"); s != "" {
		userID, err := handlers.ParseID(s)
		if err != nil {
			return nil, err
		}
		req.UserID = &userID
	}

	// Парсим date если указана
	if s := query.Get("date"); s != "" {
		date, err := handlers.ParseDate(s)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if s := query.Get("status"); s != "" {
		req.Status = &s
	}

	if s := query.Get("limit"); s != "" {
		limit, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	return req, nil
}
