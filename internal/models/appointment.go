package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses as stored in the appointments collection.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorID  primitive.ObjectID `bson:"doctorId" json:"doctorId"`
	PatientID primitive.ObjectID `bson:"patientId" json:"patientId"`
	Date      time.Time          `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"` // "HH:MM", 24-hour clock
	Status    string             `bson:"status" json:"status"`
}
