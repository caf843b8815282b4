package services

import (
	"context"

	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
)

//go:generate mockgen -source=car.go -destination=mock_car.go -package=services

// CarReader lists cars.
type CarReader interface {
	List(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
}

// CarService serves the public car listing.
type CarService struct {
	reader CarReader
}

func NewCarService(reader CarReader) *CarService {
	return &CarService{reader: reader}
}

// ListCars returns the cars matching filter sorted by price per day.
// The result is never nil.
func (s *CarService) ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	if filter.Unsatisfiable {
		logger.Log.Debugw("car filter can never match, skipping query", "filter", filter)
		return []models.Car{}, nil
	}

	cars, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list cars", "filter", filter, "error", err)
		return nil, err
	}
	if cars == nil {
		cars = []models.Car{}
	}
	return cars, nil
}
