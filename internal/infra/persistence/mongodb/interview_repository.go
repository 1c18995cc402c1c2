package mongodb

import (
	"context"

	"jobtrack/internal/domain/entity"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var interviewProjection = bson.M{
	"position":       1,
	"companyName":    1,
	"interviewRound": 1,
	"roundDetails":   1,
	"scheduledOn":    1,
	"userId":         1,
}

type interviewRepository struct {
	coll *mongo.Collection
}

// NewInterviewRepository is the constructor for interviewRepository.
func NewInterviewRepository(db *mongo.Database) repository.InterviewRepository {
	return &interviewRepository{
		coll: db.Collection(model.InterviewRoundModel{}.CollectionName()),
	}
}

func (repo *interviewRepository) Create(ctx context.Context, round *entity.InterviewRound) error {
	doc, err := fromInterviewDomain(round)
	if err != nil {
		return err
	}
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	oid, err := insertOne(ctx, repo.coll, doc)
	if err != nil {
		return err
	}

	round.ID = oid.Hex()
	round.CreatedAt = doc.CreatedAt
	round.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *interviewRepository) FindByID(ctx context.Context, id string) (*entity.InterviewRound, error) {
	doc, err := findOneByID[model.InterviewRoundModel](ctx, repo.coll, id)
	if err != nil {
		return nil, err
	}

	return toInterviewDomain(doc), nil
}

func (repo *interviewRepository) Update(ctx context.Context, id string, patch *entity.InterviewRoundPatch) (*entity.InterviewRound, error) {
	b := &setBuilder{}
	if patch != nil {
		setIfPresent(b, "position", patch.Position)
		setIfPresent(b, "companyName", patch.CompanyName)
		if patch.InterviewRound != nil {
			round := string(*patch.InterviewRound)
			setIfPresent(b, "interviewRound", &round)
		}
		setIfPresent(b, "roundDetails", patch.RoundDetails)
		setIfPresent(b, "scheduledOn", patch.ScheduledOn)
	}

	doc, err := updateOneByID[model.InterviewRoundModel](ctx, repo.coll, id, b.build())
	if err != nil {
		return nil, err
	}

	return toInterviewDomain(doc), nil
}

func (repo *interviewRepository) Delete(ctx context.Context, id string) (*entity.InterviewRound, error) {
	doc, err := deleteOneByID[model.InterviewRoundModel](ctx, repo.coll, id)
	if err != nil {
		return nil, err
	}

	return toInterviewDomain(doc), nil
}

// List pages through the rounds on one side of filter.Now.
func (repo *interviewRepository) List(ctx context.Context, filter entity.InterviewFilter, page entity.PageRequest) (*entity.Page[entity.InterviewRound], error) {
	match, sort, err := interviewQuery(filter)
	if err != nil {
		return nil, err
	}

	docs, total, err := paginate[model.InterviewRoundModel](ctx, repo.coll, match, sort, interviewProjection, page)
	if err != nil {
		return nil, err
	}

	items := make([]entity.InterviewRound, 0, len(docs))
	for i := range docs {
		items = append(items, *toInterviewDomain(&docs[i]))
	}

	return &entity.Page[entity.InterviewRound]{
		Items:      items,
		Pagination: entity.NewPagination(total, page),
	}, nil
}

func interviewQuery(filter entity.InterviewFilter) (bson.M, bson.D, error) {
	match, err := ownerMatch(filter.UserID)
	if err != nil {
		return nil, nil, err
	}

	ref := filter.Now.UTC()
	if filter.Window == entity.WindowPast {
		match["scheduledOn"] = bson.M{"$lt": ref}
		return match, bson.D{{Key: "scheduledOn", Value: -1}, {Key: "_id", Value: -1}}, nil
	}

	match["scheduledOn"] = bson.M{"$gte": ref}

	return match, bson.D{{Key: "scheduledOn", Value: 1}, {Key: "_id", Value: 1}}, nil
}

func toInterviewDomain(data *model.InterviewRoundModel) *entity.InterviewRound {
	if data == nil {
		return nil
	}

	return &entity.InterviewRound{
		ID:             hexOrEmpty(data.ID),
		UserID:         hexOrEmpty(data.UserID),
		Position:       data.Position,
		CompanyName:    data.CompanyName,
		InterviewRound: entity.RoundType(data.InterviewRound),
		RoundDetails:   data.RoundDetails,
		ScheduledOn:    data.ScheduledOn,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromInterviewDomain(data *entity.InterviewRound) (*model.InterviewRoundModel, error) {
	userID, err := parseOwnerID(data.UserID)
	if err != nil {
		return nil, err
	}

	return &model.InterviewRoundModel{
		UserID:         userID,
		Position:       data.Position,
		CompanyName:    data.CompanyName,
		InterviewRound: string(data.InterviewRound),
		RoundDetails:   data.RoundDetails,
		ScheduledOn:    data.ScheduledOn.UTC(),
	}, nil
}
