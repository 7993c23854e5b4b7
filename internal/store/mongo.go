package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/clinic-admin-api/internal/models"
)

const (
	doctorsCollection      = "doctors"
	adminsCollection       = "admins"
	usersCollection        = "users"
	appointmentsCollection = "appointments"
)

// EnsureIndexes creates the unique indexes backing the account uniqueness
// constraints. Creating an index that already exists is a no-op, so this is
// safe to run on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	if _, err := db.Collection(doctorsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("email"),
		unique("licenseNumber"),
	}); err != nil {
		return err
	}
	_, err := db.Collection(adminsCollection).Indexes().CreateOne(ctx, unique("email"))
	return err
}

// translateError maps driver errors onto the store sentinels handlers match on.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	default:
		return err
	}
}

// -- Doctors --

type mongoDoctorStore struct {
	coll *mongo.Collection
}

func NewDoctorStore(db *mongo.Database) DoctorStore {
	return &mongoDoctorStore{coll: db.Collection(doctorsCollection)}
}

func (s *mongoDoctorStore) Insert(ctx context.Context, doctor *models.Doctor) error {
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, doctor)
	return translateError(err)
}

func (s *mongoDoctorStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

func (s *mongoDoctorStore) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// -- Admins --

type mongoAdminStore struct {
	coll *mongo.Collection
}

func NewAdminStore(db *mongo.Database) AdminStore {
	return &mongoAdminStore{coll: db.Collection(adminsCollection)}
}

func (s *mongoAdminStore) Insert(ctx context.Context, admin *models.Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, admin)
	return translateError(err)
}

func (s *mongoAdminStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&admin); err != nil {
		return nil, translateError(err)
	}
	return &admin, nil
}

func (s *mongoAdminStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		return nil, translateError(err)
	}
	return &admin, nil
}

func (s *mongoAdminStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, firstName, lastName, email string) (*models.Admin, error) {
	update := bson.M{"$set": bson.M{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var admin models.Admin
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&admin); err != nil {
		return nil, translateError(err)
	}
	return &admin, nil
}

// -- Users --

type mongoUserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) UserStore {
	return &mongoUserStore{coll: db.Collection(usersCollection)}
}

func (s *mongoUserStore) CountByRole(ctx context.Context, role string) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"role": role})
}

func (s *mongoUserStore) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// -- Appointments --

type mongoAppointmentStore struct {
	coll *mongo.Collection
}

func NewAppointmentStore(db *mongo.Database) AppointmentStore {
	return &mongoAppointmentStore{coll: db.Collection(appointmentsCollection)}
}

func (s *mongoAppointmentStore) CountByPatient(ctx context.Context, patientID primitive.ObjectID) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"patientId": patientID})
}

func (s *mongoAppointmentStore) CountDistinctPatients(ctx context.Context, doctorID primitive.ObjectID) (int64, error) {
	patients, err := s.coll.Distinct(ctx, "patientId", bson.M{"doctorId": doctorID})
	if err != nil {
		return 0, err
	}
	return int64(len(patients)), nil
}

func (s *mongoAppointmentStore) FindByStatuses(ctx context.Context, statuses ...string) ([]models.Appointment, error) {
	filter := bson.M{"status": bson.M{"$in": statuses}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return s.find(ctx, filter, opts)
}

func (s *mongoAppointmentStore) FindScheduledSince(ctx context.Context, from time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"status": models.StatusScheduled,
		"date":   bson.M{"$gte": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	return s.find(ctx, filter, opts)
}

func (s *mongoAppointmentStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
