package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // Hide from JSON responses
	Role      string             `bson:"role" json:"role"`  // "patient", "doctor", "admin"
}

// FullName returns the user's display name as shown in overviews and listings.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
