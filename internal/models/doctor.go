package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	Email         string             `bson:"email" json:"email"`
	Specialty     string             `bson:"specialty" json:"specialty"`
	LicenseNumber string             `bson:"licenseNumber" json:"licenseNumber"`
	Phone         string             `bson:"phone" json:"phone"`
	Password      string             `bson:"password" json:"-"` // Hide from JSON responses
}

// FullName returns the doctor's display name as shown in overviews and listings.
func (d Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
