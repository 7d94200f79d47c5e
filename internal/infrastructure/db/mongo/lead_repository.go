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
	"github.com/anvaya/crm-backend/internal/core/ports"
)

const collectionLeads = "leads"

// LeadRepository implements ports.LeadRepository using MongoDB. It owns the
// closedAt timestamp: set on the first write that moves a lead to Closed,
// preserved while the lead stays Closed and removed when it is reopened.
type LeadRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{
		col: db.Collection(collectionLeads),
		now: func() time.Time { return time.Now().UTC() },
	}
}

type leadDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Source      string             `bson:"source"`
	SalesAgent  primitive.ObjectID `bson:"salesAgent"`
	Status      string             `bson:"status"`
	Tags        []string           `bson:"tags"`
	TimeToClose int                `bson:"timeToClose"`
	Priority    string             `bson:"priority"`
	ClosedAt    *time.Time         `bson:"closedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *leadDoc) toDomain() *domain.Lead {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Lead{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Source:       domain.LeadSource(d.Source),
		SalesAgentID: hexOrEmpty(d.SalesAgent),
		Status:       domain.LeadStatus(d.Status),
		Tags:         tags,
		TimeToClose:  d.TimeToClose,
		Priority:     d.Priority,
		ClosedAt:     d.ClosedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Create inserts a lead. A malformed agent reference yields domain.ErrInvalidID.
func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	agentID, err := primitive.ObjectIDFromHex(l.SalesAgentID)
	if err != nil {
		return domain.ErrInvalidID
	}

	now := r.now()
	doc := leadDoc{
		Name:        l.Name,
		Source:      string(l.Source),
		SalesAgent:  agentID,
		Status:      string(l.Status),
		Tags:        l.Tags,
		TimeToClose: l.TimeToClose,
		Priority:    l.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if l.IsClosed() {
		doc.ClosedAt = &now
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}

	l.ID = res.InsertedID.(primitive.ObjectID).Hex()
	l.CreatedAt, l.UpdatedAt, l.ClosedAt = now, now, doc.ClosedAt
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc leadDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return doc.toDomain(), nil
}

// Find returns the leads matching filter in insertion order.
func (r *LeadRepository) Find(ctx context.Context, filter ports.LeadFilter) ([]*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q, err := buildLeadFilter(filter)
	if err != nil {
		return []*domain.Lead{}, nil
	}

	cur, err := r.col.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find leads: %w", err)
	}
	var docs []leadDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}

	leads := make([]*domain.Lead, 0, len(docs))
	for i := range docs {
		leads = append(leads, docs[i].toDomain())
	}
	return leads, nil
}

func (r *LeadRepository) Count(ctx context.Context, filter ports.LeadFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q, err := buildLeadFilter(filter)
	if err != nil {
		return 0, nil
	}
	n, err := r.col.CountDocuments(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}

// Replace overwrites the lead's fields and returns the document after the write.
func (r *LeadRepository) Replace(ctx context.Context, id string, u ports.LeadUpdate) (*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	agentID, err := primitive.ObjectIDFromHex(u.SalesAgentID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc leadDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, buildLeadUpdate(u, agentID, r.now()), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by the list filters and reports.
func (r *LeadRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "salesAgent", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// buildLeadFilter translates a ports.LeadFilter into a Mongo query.
func buildLeadFilter(f ports.LeadFilter) (bson.M, error) {
	q := bson.M{}
	if f.SalesAgentID != "" {
		oid, err := primitive.ObjectIDFromHex(f.SalesAgentID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		q["salesAgent"] = oid
	}
	switch {
	case f.Status != "":
		q["status"] = string(f.Status)
	case f.ExcludeStatus != "":
		q["status"] = bson.M{"$ne": string(f.ExcludeStatus)}
	}
	if f.Source != "" {
		q["source"] = string(f.Source)
	}
	if len(f.Tags) > 0 {
		q["tags"] = bson.M{"$all": f.Tags}
	}
	return q, nil
}

// buildLeadUpdate returns the update pipeline for Replace. Caller-supplied
// values are wrapped in $literal so strings starting with "$" are not read as
// field paths.
func buildLeadUpdate(u ports.LeadUpdate, agentID primitive.ObjectID, now time.Time) mongo.Pipeline {
	set := bson.D{
		{Key: "name", Value: literal(u.Name)},
		{Key: "source", Value: literal(string(u.Source))},
		{Key: "salesAgent", Value: agentID},
		{Key: "status", Value: literal(string(u.Status))},
		{Key: "timeToClose", Value: u.TimeToClose},
		{Key: "priority", Value: literal(u.Priority)},
		{Key: "updatedAt", Value: now},
	}
	if u.Tags != nil {
		tags := *u.Tags
		if tags == nil {
			tags = []string{}
		}
		set = append(set, bson.E{Key: "tags", Value: literal(tags)})
	}

	if u.Status == domain.StatusClosed {
		set = append(set, bson.E{Key: "closedAt", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$closedAt", now}}}})
		return mongo.Pipeline{{{Key: "$set", Value: set}}}
	}
	return mongo.Pipeline{
		{{Key: "$set", Value: set}},
		{{Key: "$unset", Value: "closedAt"}},
	}
}

func literal(v any) bson.D {
	return bson.D{{Key: "$literal", Value: v}}
}
