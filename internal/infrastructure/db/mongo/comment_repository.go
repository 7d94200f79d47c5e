package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anvaya/crm-backend/internal/core/domain"
)

const collectionComments = "comments"

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments)}
}

type commentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Lead        primitive.ObjectID `bson:"lead"`
	Author      primitive.ObjectID `bson:"author,omitempty"`
	CommentText string             `bson:"commentText"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	leadID, err := primitive.ObjectIDFromHex(c.LeadID)
	if err != nil {
		return domain.ErrInvalidID
	}
	// A lead whose agent reference is malformed still accepts comments; the
	// author is simply left unset.
	authorID, _ := primitive.ObjectIDFromHex(c.AuthorID)

	doc := commentDoc{
		Lead:        leadID,
		Author:      authorID,
		CommentText: c.CommentText,
		CreatedAt:   c.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// FindByLead returns the comments on a lead ordered by _id, i.e. insertion order.
func (r *CommentRepository) FindByLead(ctx context.Context, leadID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(leadID)
	if err != nil {
		return []*domain.Comment{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"lead": oid}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}
	var docs []commentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	comments := make([]*domain.Comment, 0, len(docs))
	for _, d := range docs {
		comments = append(comments, &domain.Comment{
			ID:          d.ID.Hex(),
			LeadID:      d.Lead.Hex(),
			AuthorID:    hexOrEmpty(d.Author),
			CommentText: d.CommentText,
			CreatedAt:   d.CreatedAt,
		})
	}
	return comments, nil
}

func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "lead", Value: 1}}})
	return err
}
