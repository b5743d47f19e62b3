package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communityhub/platform-api/internal/core/domain"
)

const auditCollection = "audit_trail"

// MongoAuditRepository is the persistence side of the audit pipeline. The
// trail is append-only; there is no update or delete path.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Action    string             `bson:"action"`
	Subject   string             `bson:"subject"`
	ActorID   string             `bson:"actor_id,omitempty"`
	Detail    string             `bson:"detail,omitempty"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, rec *domain.AuditRecord) error {
	doc := mongoAuditRecord{
		Action:    rec.Action,
		Subject:   rec.Subject,
		ActorID:   rec.ActorID,
		Detail:    rec.Detail,
		CreatedAt: rec.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) FindRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.AuditRecord
	for cur.Next(ctx) {
		var mr mongoAuditRecord
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode audit record: %w", err)
		}
		out = append(out, domain.AuditRecord{
			ID:        mr.ID.Hex(),
			Action:    mr.Action,
			Subject:   mr.Subject,
			ActorID:   mr.ActorID,
			Detail:    mr.Detail,
			CreatedAt: unixToTime(mr.CreatedAt),
		})
	}
	return out, cur.Err()
}
