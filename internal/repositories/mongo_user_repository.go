package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
	"homevest-listings/pkg/database"
	"homevest-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository stores accounts in the users collection of db.
// Emails are matched lowercased, the form registration stores them in.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(database.UsersCollection),
	}
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.UsersCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.UsersCollection).Inc()
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	metrics.MongoOperationDuration.WithLabelValues("insert_one", database.UsersCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert_one", database.UsersCollection).Inc()
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email already registered: %s", user.Email)
		}
		return err
	}
	return nil
}
