package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storefront/people-catalog/internal/core/domain"
)

const mutationEventsCollection = "mutation_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// EnsureIndexes creates the lookup index on entity and time. It is safe to
// call on every start.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(mutationEventsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "entity", Value: 1}, {Key: "entity_id", Value: 1}, {Key: "occurred_at", Value: -1}},
		Options: options.Index().SetName("entity_occurred_at"),
	})
	if err != nil {
		return fmt.Errorf("audit index: %w", err)
	}
	return nil
}

// InsertMutationEvent persists one event. Field names are stored, values
// never are.
func (r *AuditRepository) InsertMutationEvent(ctx context.Context, event *domain.MutationEvent) error {
	fields := event.Fields
	if fields == nil {
		fields = []string{}
	}
	doc := bson.M{
		"_id":          event.ID,
		"operation":    event.Operation,
		"entity":       string(event.Entity),
		"entity_id":    event.EntityID,
		"fields":       fields,
		"occurred_at":  event.OccurredAt.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.db.Collection(mutationEventsCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Redelivery of an event already stored.
			return nil
		}
		return fmt.Errorf("insert mutation event: %w", err)
	}
	return nil
}
