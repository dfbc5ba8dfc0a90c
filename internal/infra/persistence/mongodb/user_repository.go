package mongodb

import (
	"context"
	"time"

	"medistore/internal/domain/entity"
	"medistore/internal/domain/repository"
	"medistore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// CreateUser persists a new user account.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.CreatedAt.IsZero() {
		userM.CreatedAt = time.Now().UTC()
	}

	result, err := repo.collection.InsertOne(ctx, userM)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(err, "failed to insert user")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindUserByEmail retrieves a user by its identity email.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.collection.FindOne(ctx, bson.M{"email": email}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindAllUsers retrieves every registered user.
func (repo *userRepository) FindAllUsers(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	var userModels []*model.UserModel
	if err := cursor.All(ctx, &userModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateUserRole changes the role of the user identified by email.
func (repo *userRepository) UpdateUserRole(ctx context.Context, email string, role entity.Role) error {
	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": string(role)}})
	if err != nil {
		return errors.Wrap(err, "failed to update user role")
	}

	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:        data.ID.Hex(),
		Email:     data.Email,
		Name:      data.Name,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		Email:     data.Email,
		Name:      data.Name,
		Role:      string(data.Role),
		CreatedAt: data.CreatedAt,
	}
}
