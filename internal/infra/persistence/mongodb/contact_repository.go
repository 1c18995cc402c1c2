package mongodb

import (
	"context"

	"jobtrack/internal/domain/entity"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	contactSort       = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	contactProjection = bson.M{
		"firstName":       1,
		"lastName":        1,
		"email":           1,
		"companyName":     1,
		"role":            1,
		"phoneNumber":     1,
		"linkedInProfile": 1,
		"userId":          1,
	}
)

type contactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *mongo.Database) repository.ContactRepository {
	return &contactRepository{
		coll: db.Collection(model.ContactModel{}.CollectionName()),
	}
}

// Create inserts the contact. A taken email yields repository.ErrDuplicateKey.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	doc, err := fromContactDomain(contact)
	if err != nil {
		return err
	}
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	oid, err := insertOne(ctx, repo.coll, doc)
	if err != nil {
		return err
	}

	contact.ID = oid.Hex()
	contact.CreatedAt = doc.CreatedAt
	contact.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *contactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	doc, err := findOneByID[model.ContactModel](ctx, repo.coll, id)
	if err != nil {
		return nil, err
	}

	return toContactDomain(doc), nil
}

func (repo *contactRepository) Update(ctx context.Context, id string, patch *entity.ContactPatch) (*entity.Contact, error) {
	b := &setBuilder{}
	if patch != nil {
		setIfPresent(b, "firstName", patch.FirstName)
		setIfPresent(b, "lastName", patch.LastName)
		setIfPresent(b, "email", patch.Email)
		setIfPresent(b, "phoneNumber", patch.PhoneNumber)
		setIfPresent(b, "linkedInProfile", patch.LinkedInProfile)
	}

	doc, err := updateOneByID[model.ContactModel](ctx, repo.coll, id, b.build())
	if err != nil {
		return nil, err
	}

	return toContactDomain(doc), nil
}

func (repo *contactRepository) Delete(ctx context.Context, id string) (*entity.Contact, error) {
	doc, err := deleteOneByID[model.ContactModel](ctx, repo.coll, id)
	if err != nil {
		return nil, err
	}

	return toContactDomain(doc), nil
}

func (repo *contactRepository) List(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Contact], error) {
	match, err := ownerMatch(userID)
	if err != nil {
		return nil, err
	}

	docs, total, err := paginate[model.ContactModel](ctx, repo.coll, match, contactSort, contactProjection, page)
	if err != nil {
		return nil, err
	}

	items := make([]entity.Contact, 0, len(docs))
	for i := range docs {
		items = append(items, *toContactDomain(&docs[i]))
	}

	return &entity.Page[entity.Contact]{
		Items:      items,
		Pagination: entity.NewPagination(total, page),
	}, nil
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:              hexOrEmpty(data.ID),
		UserID:          hexOrEmpty(data.UserID),
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		CompanyName:     data.CompanyName,
		Role:            data.Role,
		PhoneNumber:     data.PhoneNumber,
		LinkedInProfile: data.LinkedInProfile,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromContactDomain(data *entity.Contact) (*model.ContactModel, error) {
	userID, err := parseOwnerID(data.UserID)
	if err != nil {
		return nil, err
	}

	return &model.ContactModel{
		UserID:          userID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		CompanyName:     data.CompanyName,
		Role:            data.Role,
		PhoneNumber:     data.PhoneNumber,
		LinkedInProfile: data.LinkedInProfile,
	}, nil
}
