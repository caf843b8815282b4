package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a document in the users collection.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"` // Primary key
	FullName  string             `json:"fullName" bson:"fullName"`
	Email     string             `json:"email" bson:"email"`       // Unique email
	Username  string             `json:"username" bson:"username"` // Unique username
	Password  string             `json:"-" bson:"password"`        // bcrypt hash, never sent to clients
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
