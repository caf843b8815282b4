package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Steering types a car can have.
const (
	SteeringAutomatic = "automatic"
	SteeringManual    = "manual"
)

// Car represents a document in the cars collection.
// swagger:model Car
type Car struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	PricePerDay   float64            `json:"price_per_day" bson:"price_per_day"`
	Year          int                `json:"year" bson:"year"`
	Color         string             `json:"color" bson:"color"`
	SteeringType  string             `json:"steering_type" bson:"steering_type"`
	NumberOfSeats int                `json:"number_of_seats" bson:"number_of_seats"`
}

// CarFilter holds the optional exact-match filters for the car listing.
// Nil pointers and empty strings are not filtered on.
type CarFilter struct {
	Year          *int
	Color         string
	SteeringType  string
	NumberOfSeats *int

	// Unsatisfiable is set when a numeric filter had no leading integer;
	// such a filter never matches any car.
	Unsatisfiable bool
}

// DefaultCars is the fixed inventory written by the seeder.
var DefaultCars = []Car{
	{
		Name:          "Golf mk8",
		PricePerDay:   50.0,
		Year:          2015,
		Color:         "black",
		SteeringType:  SteeringAutomatic,
		NumberOfSeats: 5,
	},
	{
		Name:          "Toyota Corolla",
		PricePerDay:   45.0,
		Year:          2020,
		Color:         "white",
		SteeringType:  SteeringAutomatic,
		NumberOfSeats: 5,
	},
	{
		Name:          "Ford Focus",
		PricePerDay:   40.0,
		Year:          2018,
		Color:         "red",
		SteeringType:  SteeringManual,
		NumberOfSeats: 5,
	},
}
