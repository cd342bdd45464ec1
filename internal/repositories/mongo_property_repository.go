package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
	"homevest-listings/pkg/database"
	"homevest-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPropertyRepository struct {
	collection *mongo.Collection
}

// NewMongoPropertyRepository stores listings in the properties collection of db.
func NewMongoPropertyRepository(db *mongo.Database) PropertyRepository {
	return &mongoPropertyRepository{
		collection: db.Collection(database.PropertiesCollection),
	}
}

func (r *mongoPropertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	start := time.Now()
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("property %s: %w", id, apperrors.ErrNotFound)
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.PropertiesCollection).Inc()
		return nil, err
	}
	return &property, nil
}

func (r *mongoPropertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"owner": ownerID}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.PropertiesCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	result := make([]models.Property, 0)
	if err := cursor.All(ctx, &result); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("decode", database.PropertiesCollection).Inc()
		return nil, err
	}
	return result, nil
}

func (r *mongoPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	metrics.MongoOperationDuration.WithLabelValues("insert_one", database.PropertiesCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert_one", database.PropertiesCollection).Inc()
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("property %s already exists", property.ID)
		}
		return err
	}
	return nil
}
