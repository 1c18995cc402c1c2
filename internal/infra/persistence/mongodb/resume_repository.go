package mongodb

import (
	"context"
	"time"

	"jobtrack/internal/domain/entity"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	resumeSort       = bson.D{{Key: "uploadedOn", Value: -1}, {Key: "_id", Value: -1}}
	resumeProjection = bson.M{
		"fileName":       1,
		"targetPosition": 1,
		"skills":         1,
		"resumeLink":     1,
		"uploadedOn":     1,
		"userId":         1,
	}
)

type resumeRepository struct {
	coll *mongo.Collection
}

// NewResumeRepository is the constructor for resumeRepository.
func NewResumeRepository(db *mongo.Database) repository.ResumeRepository {
	return &resumeRepository{
		coll: db.Collection(model.ResumeModel{}.CollectionName()),
	}
}

func (repo *resumeRepository) Create(ctx context.Context, resume *entity.Resume) error {
	userID, err := parseOwnerID(resume.UserID)
	if err != nil {
		return err
	}

	createdAt := now()
	uploadedOn := resume.UploadedOn.UTC().Truncate(time.Millisecond)
	if uploadedOn.IsZero() {
		uploadedOn = createdAt
	}

	doc := &model.ResumeModel{
		UserID:         userID,
		FileName:       resume.FileName,
		TargetPosition: resume.TargetPosition,
		Skills:         nonNilStrings(resume.Skills),
		ResumeLink:     resume.ResumeLink,
		StorageKey:     resume.StorageKey,
		UploadedOn:     uploadedOn,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}

	oid, err := insertOne(ctx, repo.coll, doc)
	if err != nil {
		return err
	}

	resume.ID = oid.Hex()
	resume.UploadedOn = doc.UploadedOn
	resume.CreatedAt = doc.CreatedAt
	resume.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *resumeRepository) List(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Resume], error) {
	match, err := ownerMatch(userID)
	if err != nil {
		return nil, err
	}

	docs, total, err := paginate[model.ResumeModel](ctx, repo.coll, match, resumeSort, resumeProjection, page)
	if err != nil {
		return nil, err
	}

	items := make([]entity.Resume, 0, len(docs))
	for _, doc := range docs {
		items = append(items, entity.Resume{
			ID:             hexOrEmpty(doc.ID),
			UserID:         hexOrEmpty(doc.UserID),
			FileName:       doc.FileName,
			TargetPosition: doc.TargetPosition,
			Skills:         nonNilStrings(doc.Skills),
			ResumeLink:     doc.ResumeLink,
			UploadedOn:     doc.UploadedOn,
			CreatedAt:      doc.CreatedAt,
			UpdatedAt:      doc.UpdatedAt,
		})
	}

	return &entity.Page[entity.Resume]{
		Items:      items,
		Pagination: entity.NewPagination(total, page),
	}, nil
}
