package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/clinic-admin-api/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("store: duplicate key")
)

// DoctorStore defines the persistence interface for doctor accounts.
type DoctorStore interface {
	Insert(ctx context.Context, doctor *models.Doctor) error
	Count(ctx context.Context) (int64, error)
	// FindAll returns every doctor in store-natural order.
	FindAll(ctx context.Context) ([]models.Doctor, error)
}

// AdminStore defines the persistence interface for admin accounts.
type AdminStore interface {
	Insert(ctx context.Context, admin *models.Admin) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	// UpdateProfile overwrites first name, last name and email on the admin
	// with the given id and returns the updated document.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, firstName, lastName, email string) (*models.Admin, error)
}

// UserStore defines the read-only interface over application users.
type UserStore interface {
	CountByRole(ctx context.Context, role string) (int64, error)
	// FindByRole returns every user with the given role in store-natural order.
	FindByRole(ctx context.Context, role string) ([]models.User, error)
}

// AppointmentStore defines the read-only interface over appointments.
type AppointmentStore interface {
	// CountByPatient counts every appointment referencing the patient.
	CountByPatient(ctx context.Context, patientID primitive.ObjectID) (int64, error)
	// CountDistinctPatients counts the distinct patients the doctor has
	// appointments with; repeat visits count once.
	CountDistinctPatients(ctx context.Context, doctorID primitive.ObjectID) (int64, error)
	// FindByStatuses returns appointments whose status is one of the given
	// values, most recent date first.
	FindByStatuses(ctx context.Context, statuses ...string) ([]models.Appointment, error)
	// FindScheduledSince returns scheduled appointments dated on or after
	// from, ordered by (date, time) ascending.
	FindScheduledSince(ctx context.Context, from time.Time) ([]models.Appointment, error)
}
