package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anvaya/crm-backend/internal/core/domain"
)

const collectionTags = "tags"

type TagRepository struct {
	col *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{col: db.Collection(collectionTags)}
}

type tagDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Create inserts a tag. A duplicate name surfaces as domain.ErrAlreadyExists.
func (r *TagRepository) Create(ctx context.Context, t *domain.Tag) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := tagDoc{Name: t.Name, CreatedAt: time.Now().UTC()}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert tag: %w", err)
	}

	t.ID = res.InsertedID.(primitive.ObjectID).Hex()
	t.CreatedAt = doc.CreatedAt
	return nil
}

func (r *TagRepository) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}
	var docs []tagDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}

	tags := make([]*domain.Tag, 0, len(docs))
	for _, d := range docs {
		tags = append(tags, &domain.Tag{ID: d.ID.Hex(), Name: d.Name, CreatedAt: d.CreatedAt})
	}
	return tags, nil
}

func (r *TagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d tagDoc
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return &domain.Tag{ID: d.ID.Hex(), Name: d.Name, CreatedAt: d.CreatedAt}, nil
}

func (r *TagRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
