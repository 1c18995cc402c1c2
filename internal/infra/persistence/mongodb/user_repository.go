package mongodb

import (
	"context"

	"jobtrack/internal/domain/entity"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/errors"
	"jobtrack/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface on the 'users' collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// Create persists a new user and fills in its ID and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := fromUserDomain(user)
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	oid, err := insertOne(ctx, repo.coll, doc)
	if err != nil {
		return err
	}

	user.ID = oid.Hex()
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := findOneByID[model.UserModel](ctx, repo.coll, id)
	if err != nil {
		return nil, err
	}

	return toUserDomain(doc), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		return nil, translateError(err, "failed to find user by email")
	}

	return toUserDomain(&doc), nil
}

// UpdateProfile applies the non-nil fields of patch.
func (repo *userRepository) UpdateProfile(ctx context.Context, id string, patch *entity.UserPatch) (*entity.User, error) {
	doc, err := updateOneByID[model.UserModel](ctx, repo.coll, id, userPatchSet(patch))
	if err != nil {
		return nil, err
	}

	return toUserDomain(doc), nil
}

// SetRefreshToken overwrites the token slot.
func (repo *userRepository) SetRefreshToken(ctx context.Context, id, tokenHash string) error {
	return repo.writeRefreshToken(ctx, id, nil, &tokenHash)
}

// RotateRefreshToken swaps the slot only while it still holds expectedHash.
func (repo *userRepository) RotateRefreshToken(ctx context.Context, id, expectedHash, nextHash string) error {
	err := repo.writeRefreshToken(ctx, id, &expectedHash, &nextHash)
	if errors.Is(err, repository.ErrNotFound) {
		return errors.WithStack(repository.ErrRefreshTokenMismatch)
	}

	return err
}

// ClearRefreshToken sets the slot to null.
func (repo *userRepository) ClearRefreshToken(ctx context.Context, id string) error {
	return repo.writeRefreshToken(ctx, id, nil, nil)
}

func (repo *userRepository) writeRefreshToken(ctx context.Context, id string, expected, next *string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid}
	if expected != nil {
		filter["refreshToken"] = *expected
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "refreshToken", Value: next},
		{Key: "updatedAt", Value: now()},
	}}}

	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return translateError(err, "failed to write refresh token")
	}
	if res.MatchedCount == 0 {
		return errors.WithStack(repository.ErrNotFound)
	}

	return nil
}

func userPatchSet(patch *entity.UserPatch) bson.D {
	b := &setBuilder{}
	if patch == nil {
		return b.build()
	}

	setIfPresent(b, "firstName", patch.FirstName)
	setIfPresent(b, "lastName", patch.LastName)
	setIfPresent(b, "skills", patch.Skills)
	setIfPresent(b, "aspiringRole", patch.AspiringRole)
	if patch.ExperienceLevel != nil {
		level := string(*patch.ExperienceLevel)
		setIfPresent(b, "experienceLevel", &level)
	}

	return b.build()
}

// toUserDomain converts a UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:              hexOrEmpty(data.ID),
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		PasswordHash:    data.Password,
		Skills:          nonNilStrings(data.Skills),
		AspiringRole:    data.AspiringRole,
		ExperienceLevel: entity.ExperienceLevel(data.ExperienceLevel),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.RefreshToken != nil {
		user.RefreshTokenHash = *data.RefreshToken
	}

	return user
}

// fromUserDomain converts a domain User entity to a UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	doc := &model.UserModel{
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		Password:        data.PasswordHash,
		Skills:          nonNilStrings(data.Skills),
		AspiringRole:    data.AspiringRole,
		ExperienceLevel: string(data.ExperienceLevel),
	}
	if data.RefreshTokenHash != "" {
		token := data.RefreshTokenHash
		doc.RefreshToken = &token
	}

	return doc
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
