package repositories

import "errors"

var (
	// ErrAlreadyExists is returned when a write violates a unique index.
	ErrAlreadyExists = errors.New("document already exists")
	// ErrInvalidID is returned for identifiers that are not hex ObjectIDs.
	ErrInvalidID = errors.New("invalid document id")
	// ErrCacheMiss is returned by cache repositories when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
)

// Collection names.
const (
	CarsCollection  = "cars"
	UsersCollection = "users"
)
