// Package repositories contains the MongoDB data access layer. Each
// repository translates driver errors into the apperr taxonomy so services
// never see mongo internals.
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	col := db.Collection("users")

	// Unique email backs the DuplicateEmail contract.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &UserRepository{col: col}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return user, apperr.New(apperr.NotFound, "User not found")
	}
	if err != nil {
		return user, apperr.Wrap(apperr.Internal, "find user by email", err)
	}
	return user, nil
}

// FindByID looks up a user by its hex ObjectID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, apperr.New(apperr.NotFound, "User not found")
	}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return user, apperr.New(apperr.NotFound, "User not found")
	}
	if err != nil {
		return user, apperr.Wrap(apperr.Internal, "find user by id", err)
	}
	return user, nil
}

// FindByResetToken looks up a user by the sha256 digest of a reset token.
func (r *UserRepository) FindByResetToken(ctx context.Context, digest string) (models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"resetPasswordToken": digest}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return user, apperr.New(apperr.NotFound, "User not found")
	}
	if err != nil {
		return user, apperr.Wrap(apperr.Internal, "find user by reset token", err)
	}
	return user, nil
}

// Create persists a new user record. A unique-index violation on email
// surfaces as a Duplicate error.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.New(apperr.Duplicate, "User already exists")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "create user", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// Update replaces the stored user document.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.New(apperr.Duplicate, "User already exists")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "update user", err)
	}
	if res.MatchedCount == 0 {
		return apperr.New(apperr.NotFound, "User not found")
	}
	return nil
}

// SetResetToken stores the reset digest and expiry on a user.
func (r *UserRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, digest string, expires time.Time) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"resetPasswordToken":   digest,
		"resetPasswordExpires": expires,
		"updatedAt":            time.Now(),
	}})
	if err != nil {
		return apperr.Wrap(apperr.Internal, "set reset token", err)
	}
	return nil
}

// ClearResetToken removes any pending reset token from a user.
func (r *UserRepository) ClearResetToken(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$unset": bson.M{
		"resetPasswordToken":   "",
		"resetPasswordExpires": "",
	}})
	if err != nil {
		return apperr.Wrap(apperr.Internal, "clear reset token", err)
	}
	return nil
}

// All returns every user. Password hashes stay in the struct; controllers
// rely on the json:"-" tag to keep them out of responses.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list users", err)
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "decode users", err)
	}
	return users, nil
}

// Delete removes a user by hex id.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.New(apperr.NotFound, "User not found")
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Wrap(apperr.Internal, "delete user", err)
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "User not found")
	}
	return nil
}
