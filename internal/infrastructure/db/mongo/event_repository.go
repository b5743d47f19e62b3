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
	eventCollection        = "events"
	registrationCollection = "registrations"
)

type MongoEventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{coll: db.Collection(eventCollection)}
}

type mongoEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Date        time.Time          `bson:"date"`
	CreatedBy   string             `bson:"created_by"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (me mongoEvent) toDomain() *domain.Event {
	return &domain.Event{
		ID:          me.ID.Hex(),
		Title:       me.Title,
		Description: me.Description,
		Category:    me.Category,
		Location:    me.Location,
		Date:        me.Date,
		CreatedBy:   me.CreatedBy,
		CreatedAt:   unixToTime(me.CreatedAt),
		UpdatedAt:   unixToTime(me.UpdatedAt),
	}
}

func (r *MongoEventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Event
	for cur.Next(ctx) {
		var me mongoEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		out = append(out, *me.toDomain())
	}
	return out, cur.Err()
}

func (r *MongoEventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	var me mongoEvent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return me.toDomain(), nil
}

func (r *MongoEventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	doc := mongoEvent{
		Title:       event.Title,
		Description: event.Description,
		Category:    event.Category,
		Location:    event.Location,
		Date:        event.Date,
		CreatedBy:   event.CreatedBy,
		CreatedAt:   event.CreatedAt.Unix(),
		UpdatedAt:   event.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *event
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoEventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(event.ID)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	set := bson.M{
		"title":       event.Title,
		"description": event.Description,
		"category":    event.Category,
		"location":    event.Location,
		"date":        event.Date,
		"updated_at":  nowUnix(),
	}

	var me mongoEvent
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&me)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return me.toDomain(), nil
}

func (r *MongoEventRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

type MongoRegistrationRepository struct {
	coll *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) *MongoRegistrationRepository {
	return &MongoRegistrationRepository{coll: db.Collection(registrationCollection)}
}

type mongoRegistration struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	EventID   string             `bson:"event_id"`
	CreatedAt int64              `bson:"created_at"`
}

// Create inserts a registration. The unique (user_id, event_id) index makes
// the duplicate check atomic under concurrent sign-ups.
func (r *MongoRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	doc := mongoRegistration{
		UserID:    reg.UserID,
		EventID:   reg.EventID,
		CreatedAt: reg.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	created := *reg
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoRegistrationRepository) Delete(ctx context.Context, userID, eventID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "event_id": eventID})
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotRegistered
	}
	return nil
}
