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

var (
	applicationSort       = bson.D{{Key: "appliedOn", Value: -1}, {Key: "_id", Value: -1}}
	applicationProjection = bson.M{
		"companyName":         1,
		"position":            1,
		"jobLink":             1,
		"applicationStatus":   1,
		"appliedOn":           1,
		"resumeUploaded":      1,
		"coverLetterUploaded": 1,
		"userId":              1,
	}
)

type applicationRepository struct {
	coll *mongo.Collection
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *mongo.Database) repository.ApplicationRepository {
	return &applicationRepository{
		coll: db.Collection(model.ApplicationModel{}.CollectionName()),
	}
}

func (repo *applicationRepository) Create(ctx context.Context, app *entity.Application) error {
	doc, err := fromApplicationDomain(app)
	if err != nil {
		return err
	}
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	oid, err := insertOne(ctx, repo.coll, doc)
	if err != nil {
		return err
	}

	app.ID = oid.Hex()
	app.CreatedAt = doc.CreatedAt
	app.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *applicationRepository) FindByID(ctx context.Context, id string) (*entity.Application, error) {
	doc, err := findOneByID[model.ApplicationModel](ctx, repo.coll, id)
	if err != nil {
		return nil, err
	}

	return toApplicationDomain(doc), nil
}

func (repo *applicationRepository) Update(ctx context.Context, id string, patch *entity.ApplicationPatch) (*entity.Application, error) {
	doc, err := updateOneByID[model.ApplicationModel](ctx, repo.coll, id, applicationPatchSet(patch))
	if err != nil {
		return nil, err
	}

	return toApplicationDomain(doc), nil
}

func (repo *applicationRepository) Delete(ctx context.Context, id string) (*entity.Application, error) {
	doc, err := deleteOneByID[model.ApplicationModel](ctx, repo.coll, id)
	if err != nil {
		return nil, err
	}

	return toApplicationDomain(doc), nil
}

// List returns one page of matching applications, most recent application date first.
func (repo *applicationRepository) List(ctx context.Context, filter entity.ApplicationFilter, page entity.PageRequest) (*entity.Page[entity.Application], error) {
	match, err := applicationMatch(filter)
	if err != nil {
		return nil, err
	}

	docs, total, err := paginate[model.ApplicationModel](ctx, repo.coll, match, applicationSort, applicationProjection, page)
	if err != nil {
		return nil, err
	}

	items := make([]entity.Application, 0, len(docs))
	for i := range docs {
		items = append(items, *toApplicationDomain(&docs[i]))
	}

	return &entity.Page[entity.Application]{
		Items:      items,
		Pagination: entity.NewPagination(total, page),
	}, nil
}

func (repo *applicationRepository) Count(ctx context.Context, filter entity.ApplicationFilter) (int64, error) {
	match, err := applicationMatch(filter)
	if err != nil {
		return 0, err
	}

	count, err := repo.coll.CountDocuments(ctx, match)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count applications")
	}

	return count, nil
}

func applicationMatch(filter entity.ApplicationFilter) (bson.M, error) {
	match, err := ownerMatch(filter.UserID)
	if err != nil {
		return nil, err
	}

	switch len(filter.Statuses) {
	case 0:
	case 1:
		match["applicationStatus"] = string(filter.Statuses[0])
	default:
		statuses := make(bson.A, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		match["applicationStatus"] = bson.M{"$in": statuses}
	}

	return match, nil
}

func applicationPatchSet(patch *entity.ApplicationPatch) bson.D {
	b := &setBuilder{}
	if patch == nil {
		return b.build()
	}

	setIfPresent(b, "companyName", patch.CompanyName)
	setIfPresent(b, "position", patch.Position)
	setIfPresent(b, "jobLink", patch.JobLink)
	if patch.ApplicationStatus != nil {
		status := string(*patch.ApplicationStatus)
		setIfPresent(b, "applicationStatus", &status)
	}
	setIfPresent(b, "resumeUploaded", patch.ResumeUploaded)
	setIfPresent(b, "coverLetterUploaded", patch.CoverLetterUploaded)
	setIfPresent(b, "notes", patch.Notes)
	setIfPresent(b, "appliedOn", patch.AppliedOn)

	return b.build()
}

func toApplicationDomain(data *model.ApplicationModel) *entity.Application {
	if data == nil {
		return nil
	}

	return &entity.Application{
		ID:                  hexOrEmpty(data.ID),
		UserID:              hexOrEmpty(data.UserID),
		CompanyName:         data.CompanyName,
		Position:            data.Position,
		JobLink:             data.JobLink,
		ApplicationStatus:   entity.ApplicationStatus(data.ApplicationStatus),
		ResumeUploaded:      data.ResumeUploaded,
		CoverLetterUploaded: data.CoverLetterUploaded,
		Notes:               data.Notes,
		AppliedOn:           data.AppliedOn,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromApplicationDomain(data *entity.Application) (*model.ApplicationModel, error) {
	userID, err := parseOwnerID(data.UserID)
	if err != nil {
		return nil, err
	}

	return &model.ApplicationModel{
		UserID:              userID,
		CompanyName:         data.CompanyName,
		Position:            data.Position,
		JobLink:             data.JobLink,
		ApplicationStatus:   string(data.ApplicationStatus),
		ResumeUploaded:      data.ResumeUploaded,
		CoverLetterUploaded: data.CoverLetterUploaded,
		Notes:               data.Notes,
		AppliedOn:           data.AppliedOn.UTC(),
	}, nil
}
