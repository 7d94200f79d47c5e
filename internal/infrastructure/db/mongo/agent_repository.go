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

const collectionAgents = "salesagents"

type AgentRepository struct {
	col *mongo.Collection
}

func NewAgentRepository(db *mongo.Database) *AgentRepository {
	return &AgentRepository{col: db.Collection(collectionAgents)}
}

type agentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *agentDoc) toDomain() *domain.SalesAgent {
	return &domain.SalesAgent{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Create inserts a new agent. A duplicate email surfaces as domain.ErrConflict.
func (r *AgentRepository) Create(ctx context.Context, a *domain.SalesAgent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := agentDoc{Name: a.Name, Email: a.Email, CreatedAt: now, UpdatedAt: now}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert agent: %w", err)
	}

	a.ID = res.InsertedID.(primitive.ObjectID).Hex()
	a.CreatedAt, a.UpdatedAt = now, now
	return nil
}

func (r *AgentRepository) FindAll(ctx context.Context) ([]*domain.SalesAgent, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *AgentRepository) FindByID(ctx context.Context, id string) (*domain.SalesAgent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *AgentRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.SalesAgent, error) {
	out := make(map[string]*domain.SalesAgent, len(ids))
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return out, nil
	}

	agents, err := r.findMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	for _, a := range agents {
		out[a.ID] = a
	}
	return out, nil
}

func (r *AgentRepository) FindByEmail(ctx context.Context, email string) (*domain.SalesAgent, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AgentRepository) FindByName(ctx context.Context, name string) (*domain.SalesAgent, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *AgentRepository) findOne(ctx context.Context, filter bson.M) (*domain.SalesAgent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc agentDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find agent: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AgentRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.SalesAgent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find agents: %w", err)
	}
	var docs []agentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode agents: %w", err)
	}

	agents := make([]*domain.SalesAgent, 0, len(docs))
	for i := range docs {
		agents = append(agents, docs[i].toDomain())
	}
	return agents, nil
}

// EnsureIndexes creates the unique email index backing agent uniqueness.
func (r *AgentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
