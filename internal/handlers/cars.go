package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
)

//go:generate mockgen -source=cars.go -destination=mock_cars.go -package=handlers

// CarLister defines the interface that the car service must implement.
type CarLister interface {
	ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
}

// NewListCarsHandler returns an HTTP handler for the public car listing.
// @Summary List rental cars
// @Description Returns cars matching every given filter, sorted by price per day ascending. Numeric filters without a leading integer match nothing.
// @Tags cars
// @Produce json
// @Param year query int false "Model year"
// @Param color query string false "Color"
// @Param steering_type query string false "automatic or manual"
// @Param number_of_seats query int false "Number of seats"
// @Success 200 {array} models.Car "Cars"
// @Failure 500 {object} models.ErrorResponse "Failed to fetch cars"
// @Router /rental-cars [get]
func NewListCarsHandler(svc CarLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseCarFilter(r)

		cars, err := svc.ListCars(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("list cars error", "err", err)
			writeInternalError(w, "Failed to fetch cars", err)
			return
		}

		writeJSON(w, http.StatusOK, cars)
	}
}

func parseCarFilter(r *http.Request) models.CarFilter {
	q := r.URL.Query()
	filter := models.CarFilter{
		Color:        q.Get("color"),
		SteeringType: q.Get("steering_type"),
	}

	if v := q.Get("year"); v != "" {
		if n, ok := parseLeadingInt(v); ok {
			filter.Year = &n
		} else {
			filter.Unsatisfiable = true
		}
	}
	if v := q.Get("number_of_seats"); v != "" {
		if n, ok := parseLeadingInt(v); ok {
			filter.NumberOfSeats = &n
		} else {
			filter.Unsatisfiable = true
		}
	}

	return filter
}

// parseLeadingInt reads an optionally signed decimal integer at the start of
// s after leading whitespace and ignores whatever follows it ("2020abc" is
// 2020). It reports false when no digit is found or the value overflows.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
