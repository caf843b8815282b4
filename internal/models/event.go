package models

// UserRegistered is published to the message broker after a successful registration.
type UserRegistered struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	UserID    string `json:"user_id"`   // UserID is the hex ObjectID of the new user.
	Username  string `json:"username"`  // Username of the new user.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the registration.
}
