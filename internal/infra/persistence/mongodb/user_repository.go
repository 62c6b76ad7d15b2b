package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"devnet/internal/domain/entity"
	domainerrors "devnet/internal/domain/errors"
	"devnet/internal/domain/repository"
	"devnet/internal/errors"
	"devnet/internal/infra/persistence/model"
)

const usersCollection = "users"

// userRepository implements the repository.UserRepository interface on a
// MongoDB collection.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(usersCollection),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()}, "failed to find user by id")
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find user by email")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, wrapMsg string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&userM); err != nil {
		// If no document matches, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, wrapMsg)
	}

	return userM.ToDomain()
}

// Create persists a new user document. The store assigns the account ID and
// timestamps here; a duplicate-key error from the unique email index is the
// authoritative conflict signal and maps to the same domain error as the
// workflow's pre-check.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := repo.collection.InsertOne(ctx, model.FromUserDomain(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailExists.WrapMessage("unique email index rejected insert")
		}

		return domainerrors.NewStorageError(err, "failed to create user")
	}

	return nil
}
