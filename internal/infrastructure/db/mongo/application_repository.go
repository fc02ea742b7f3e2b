package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

const collectionApplications = "lawyer_applications"

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

// Create inserts a new application document.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.LawyerApplication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.LawyerApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var app domain.LawyerApplication
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return &app, nil
}

// List returns applications ordered by applied_at. An empty status matches all.
func (r *ApplicationRepository) List(ctx context.Context, status domain.ApplicationStatus) ([]*domain.LawyerApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "applied_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	apps := make([]*domain.LawyerApplication, 0)
	if err := cur.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return apps, nil
}

// UpdateReview writes the review fields only while the stored document is
// still pending, so two concurrent reviews cannot both win.
func (r *ApplicationRepository) UpdateReview(ctx context.Context, app *domain.LawyerApplication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":      string(app.Status),
		"reviewed_at": app.ReviewedAt,
		"reviewed_by": app.ReviewedBy,
	}
	if app.RejectionReason != "" {
		set["rejection_reason"] = app.RejectionReason
	}

	filter := bson.M{"_id": app.ID, "status": string(domain.ApplicationPending)}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update application review: %w", err)
	}
	if res.MatchedCount == 0 {
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": app.ID})
		if err != nil {
			return fmt.Errorf("update application review: %w", err)
		}
		if n == 0 {
			return domain.ErrApplicationNotFound
		}
		return domain.ErrApplicationFinalized
	}
	return nil
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes used by List and the applicant lookup.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "applied_at", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
