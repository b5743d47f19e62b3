package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communityhub/platform-api/internal/core/domain"
)

const bookCollection = "books"

type MongoBookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *MongoBookRepository {
	return &MongoBookRepository{coll: db.Collection(bookCollection)}
}

type mongoBook struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Author     string             `bson:"author"`
	AddedBy    string             `bson:"added_by"`
	Borrowed   bool               `bson:"borrowed"`
	BorrowedBy string             `bson:"borrowed_by,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func (mb mongoBook) toDomain() *domain.Book {
	return &domain.Book{
		ID:         mb.ID.Hex(),
		Title:      mb.Title,
		Author:     mb.Author,
		AddedBy:    mb.AddedBy,
		Borrowed:   mb.Borrowed,
		BorrowedBy: mb.BorrowedBy,
		CreatedAt:  unixToTime(mb.CreatedAt),
		UpdatedAt:  unixToTime(mb.UpdatedAt),
	}
}

func (r *MongoBookRepository) FindAll(ctx context.Context) ([]domain.Book, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Book
	for cur.Next(ctx) {
		var mb mongoBook
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}
		out = append(out, *mb.toDomain())
	}
	return out, cur.Err()
}

func (r *MongoBookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	var mb mongoBook
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *MongoBookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	doc := mongoBook{
		Title:     book.Title,
		Author:    book.Author,
		AddedBy:   book.AddedBy,
		CreatedAt: book.CreatedAt.Unix(),
		UpdatedAt: book.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	created := *book
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// SetBorrower claims the book for userID with a single conditional update.
// The filter requires borrowed=false, so two racing borrowers cannot both
// match; the loser sees ErrBookUnavailable (or ErrBookNotFound when the
// book does not exist at all).
func (r *MongoBookRepository) SetBorrower(ctx context.Context, bookID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return domain.ErrBookNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "borrowed": false},
		bson.M{"$set": bson.M{
			"borrowed":    true,
			"borrowed_by": userID,
			"updated_at":  nowUnix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("borrow book: %w", err)
	}
	if res.MatchedCount == 0 {
		if exists, err := r.exists(ctx, oid); err != nil {
			return err
		} else if !exists {
			return domain.ErrBookNotFound
		}
		return domain.ErrBookUnavailable
	}
	return nil
}

// ClearBorrower releases the book, matching only when userID is the current
// holder.
func (r *MongoBookRepository) ClearBorrower(ctx context.Context, bookID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return domain.ErrBookNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "borrowed": true, "borrowed_by": userID},
		bson.M{"$set": bson.M{
			"borrowed":   false,
			"updated_at": nowUnix(),
		}, "$unset": bson.M{"borrowed_by": ""}},
	)
	if err != nil {
		return fmt.Errorf("return book: %w", err)
	}
	if res.MatchedCount == 0 {
		if exists, err := r.exists(ctx, oid); err != nil {
			return err
		} else if !exists {
			return domain.ErrBookNotFound
		}
		return domain.ErrNotBorrower
	}
	return nil
}

func (r *MongoBookRepository) exists(ctx context.Context, oid primitive.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("count books: %w", err)
	}
	return n > 0, nil
}
