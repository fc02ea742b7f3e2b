package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

const collectionReviewEvents = "review_events"

// ReviewLog implements ports.ReviewLog using MongoDB.
type ReviewLog struct {
	col *mongo.Collection
}

func NewReviewLog(db *mongo.Database) ports.ReviewLog {
	return &ReviewLog{col: db.Collection(collectionReviewEvents)}
}

// Append persists a review decision to the review_events audit collection.
func (l *ReviewLog) Append(ctx context.Context, event *domain.ReviewEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"application_id": event.ApplicationID,
		"decision":       string(event.Decision),
		"reviewer":       event.Reviewer,
		"at":             event.At.UTC(),
		"recorded_at":    time.Now().UTC(),
	}
	if event.Reason != "" {
		doc["reason"] = event.Reason
	}

	_, err := l.col.InsertOne(ctx, doc)
	return err
}
