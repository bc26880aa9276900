package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estagiotrack/estagio_backend/internal/model"
)

const collectionName = "estagiarios"

type Mongo struct {
	coll *mongo.Collection
}

// NewMongo returns the MongoDB-backed Repository. The caller owns the
// client lifecycle.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique email index. Run once at startup or via
// `estagio system init`.
func (r *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *Mongo) CreateIntern(ctx context.Context, name, email string) (*model.Intern, error) {
	intern := &model.Intern{
		ID:      NewID(),
		Name:    name,
		Email:   email,
		Entries: []model.TimeEntry{},
	}

	if _, err := r.coll.InsertOne(ctx, intern); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert intern: %w", err)
	}
	return intern, nil
}

func (r *Mongo) FindAllInterns(ctx context.Context) ([]model.Intern, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find interns: %w", err)
	}

	interns := []model.Intern{}
	if err := cursor.All(ctx, &interns); err != nil {
		return nil, fmt.Errorf("decode interns: %w", err)
	}
	return interns, nil
}

func (r *Mongo) FindInternByID(ctx context.Context, id string) (*model.Intern, error) {
	var intern model.Intern
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&intern)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find intern %s: %w", id, err)
	}
	return &intern, nil
}

func (r *Mongo) DeleteInternByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete intern %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Mongo) AppendEntry(ctx context.Context, internID string, entry model.TimeEntry) (*model.Intern, error) {
	return r.findAndUpdate(ctx, internID, bson.M{
		"$push": bson.M{"entries": entry},
	})
}

func (r *Mongo) RemoveEntry(ctx context.Context, internID, entryID string) (*model.Intern, error) {
	return r.findAndUpdate(ctx, internID, bson.M{
		"$pull": bson.M{"entries": bson.M{"id": entryID}},
	})
}

func (r *Mongo) findAndUpdate(ctx context.Context, internID string, update bson.M) (*model.Intern, error) {
	var intern model.Intern
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": internID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&intern)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update intern %s: %w", internID, err)
	}
	return &intern, nil
}

func mustNewV7() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id.String()
}
