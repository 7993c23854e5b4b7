package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/clinic-admin-api/internal/models"
	"github.com/harentsoaR/clinic-admin-api/internal/store"
)

// In-memory stand-ins for the mongo-backed stores. Each keeps documents in
// insertion order, which is the "store-natural order" the overview handlers
// preserve, and can be forced to fail to drive the 500 paths.

type fakeDoctorStore struct {
	mu      sync.Mutex
	doctors []models.Doctor
	err     error
}

func (f *fakeDoctorStore) Insert(_ context.Context, doctor *models.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, d := range f.doctors {
		if d.Email == doctor.Email || d.LicenseNumber == doctor.LicenseNumber {
			return store.ErrDuplicateKey
		}
	}
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	f.doctors = append(f.doctors, *doctor)
	return nil
}

func (f *fakeDoctorStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.doctors)), nil
}

func (f *fakeDoctorStore) FindAll(_ context.Context) ([]models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Doctor(nil), f.doctors...), nil
}

type fakeAdminStore struct {
	mu     sync.Mutex
	admins []models.Admin
	err    error
}

func (f *fakeAdminStore) Insert(_ context.Context, admin *models.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, a := range f.admins {
		if a.Email == admin.Email {
			return store.ErrDuplicateKey
		}
	}
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	f.admins = append(f.admins, *admin)
	return nil
}

func (f *fakeAdminStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.admins {
		if a.ID == id {
			admin := a
			return &admin, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAdminStore) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.admins {
		if a.Email == email {
			admin := a
			return &admin, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAdminStore) UpdateProfile(_ context.Context, id primitive.ObjectID, firstName, lastName, email string) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.admins {
		if f.admins[i].ID == id {
			f.admins[i].FirstName = firstName
			f.admins[i].LastName = lastName
			f.admins[i].Email = email
			admin := f.admins[i]
			return &admin, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeUserStore struct {
	mu    sync.Mutex
	users []models.User
	err   error
}

func (f *fakeUserStore) CountByRole(_ context.Context, role string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserStore) FindByRole(_ context.Context, role string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var users []models.User
	for _, u := range f.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

type fakeAppointmentStore struct {
	mu           sync.Mutex
	appointments []models.Appointment
	err          error
}

func (f *fakeAppointmentStore) CountByPatient(_ context.Context, patientID primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, apt := range f.appointments {
		if apt.PatientID == patientID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentStore) CountDistinctPatients(_ context.Context, doctorID primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	seen := make(map[primitive.ObjectID]struct{})
	for _, apt := range f.appointments {
		if apt.DoctorID == doctorID {
			seen[apt.PatientID] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

func (f *fakeAppointmentStore) FindByStatuses(_ context.Context, statuses ...string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var matches []models.Appointment
	for _, apt := range f.appointments {
		for _, status := range statuses {
			if apt.Status == status {
				matches = append(matches, apt)
				break
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[j].Date.Before(matches[i].Date)
	})
	return matches, nil
}

func (f *fakeAppointmentStore) FindScheduledSince(_ context.Context, from time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var matches []models.Appointment
	for _, apt := range f.appointments {
		if apt.Status == models.StatusScheduled && !apt.Date.Before(from) {
			matches = append(matches, apt)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.Before(matches[j].Date)
		}
		return matches[i].Time < matches[j].Time
	})
	return matches, nil
}
