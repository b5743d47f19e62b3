package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communityhub/platform-api/internal/core/domain"
)

const (
	doctorCollection      = "doctors"
	appointmentCollection = "appointments"
)

type MongoDoctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *MongoDoctorRepository {
	return &MongoDoctorRepository{coll: db.Collection(doctorCollection)}
}

type mongoDoctor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Specialization string             `bson:"specialization"`
	ExperienceYrs  int                `bson:"experience_years,omitempty"`
	CreatedBy      string             `bson:"created_by"`
	CreatedAt      int64              `bson:"created_at"`
}

func (md mongoDoctor) toDomain() *domain.Doctor {
	return &domain.Doctor{
		ID:             md.ID.Hex(),
		Name:           md.Name,
		Specialization: md.Specialization,
		ExperienceYrs:  md.ExperienceYrs,
		CreatedBy:      md.CreatedBy,
		CreatedAt:      unixToTime(md.CreatedAt),
	}
}

func (r *MongoDoctorRepository) FindAll(ctx context.Context) ([]domain.Doctor, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Doctor
	for cur.Next(ctx) {
		var md mongoDoctor
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode doctor: %w", err)
		}
		out = append(out, *md.toDomain())
	}
	return out, cur.Err()
}

func (r *MongoDoctorRepository) FindByID(ctx context.Context, id string) (*domain.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDoctorNotFound
	}

	var md mongoDoctor
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return md.toDomain(), nil
}

func (r *MongoDoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error) {
	doc := mongoDoctor{
		Name:           doctor.Name,
		Specialization: doctor.Specialization,
		ExperienceYrs:  doctor.ExperienceYrs,
		CreatedBy:      doctor.CreatedBy,
		CreatedAt:      doctor.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}

	created := *doctor
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

type MongoAppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *MongoAppointmentRepository {
	return &MongoAppointmentRepository{coll: db.Collection(appointmentCollection)}
}

type mongoAppointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PatientID string             `bson:"patient_id"`
	DoctorID  string             `bson:"doctor_id"`
	At        time.Time          `bson:"at"`
	CreatedAt int64              `bson:"created_at"`
}

func (ma mongoAppointment) toDomain() domain.Appointment {
	return domain.Appointment{
		ID:        ma.ID.Hex(),
		PatientID: ma.PatientID,
		DoctorID:  ma.DoctorID,
		At:        ma.At,
		CreatedAt: unixToTime(ma.CreatedAt),
	}
}

func (r *MongoAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	doc := mongoAppointment{
		PatientID: appt.PatientID,
		DoctorID:  appt.DoctorID,
		At:        appt.At,
		CreatedAt: appt.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAppointmentTaken
		}
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	created := *appt
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoAppointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"patient_id": patientID},
		options.Find().SetSort(bson.D{{Key: "at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Appointment
	for cur.Next(ctx) {
		var ma mongoAppointment
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	return out, cur.Err()
}
