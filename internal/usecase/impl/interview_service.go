package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/constants"
	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"
	"jobtrack/internal/usecase"
	"jobtrack/internal/validation"

	"go.uber.org/fx"
)

type interviewService struct {
	interviewRepo repository.InterviewRepository
	events        eventEmitter
	logger        *slog.Logger
	now           func() time.Time
}

// InterviewServiceParams holds dependencies for InterviewService, injected by Fx.
type InterviewServiceParams struct {
	fx.In

	InterviewRepo repository.InterviewRepository
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

func NewInterviewService(params InterviewServiceParams) usecase.InterviewUsecase {
	return &interviewService{
		interviewRepo: params.InterviewRepo,
		events:        eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *interviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// CreateInterview schedules a round for the caller. Past dates are accepted so
// rounds can be recorded after the fact.
func (srv *interviewService) CreateInterview(ctx context.Context, input *usecase.CreateInterviewInput) (*entity.InterviewRound, error) {
	input.Position = strings.TrimSpace(input.Position)
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.InterviewRound = strings.TrimSpace(input.InterviewRound)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	scheduledOn, err := scheduledOn(input.ScheduledOn)
	if err != nil {
		return nil, err
	}

	round := &entity.InterviewRound{
		UserID:         input.UserID,
		Position:       input.Position,
		CompanyName:    input.CompanyName,
		InterviewRound: entity.RoundType(input.InterviewRound),
		RoundDetails:   strings.TrimSpace(input.RoundDetails),
		ScheduledOn:    scheduledOn,
	}

	if err := srv.interviewRepo.Create(ctx, round); err != nil {
		srv.log(ctx).Error("Failed to create interview round", slog.String("user_id", input.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrInterviewCreateFailed.Wrap(err)
	}

	srv.events.emit(ctx, constants.EventInterviewScheduled, round.UserID, round.ID, map[string]string{
		"company_name": round.CompanyName,
		"round":        string(round.InterviewRound),
		"scheduled_on": round.ScheduledOn.Format(time.RFC3339),
	})

	return round, nil
}

func (srv *interviewService) GetInterview(ctx context.Context, id, userID string) (*entity.InterviewRound, error) {
	return loadOwned(ctx, srv.interviewRepo.FindByID, id, userID, domainerrors.ErrInterviewNotFound)
}

func (srv *interviewService) UpdateInterview(ctx context.Context, input *usecase.UpdateInterviewInput) (*entity.InterviewRound, error) {
	if _, err := loadOwned(ctx, srv.interviewRepo.FindByID, input.ID, input.UserID, domainerrors.ErrInterviewNotFound); err != nil {
		return nil, err
	}

	if err := entity.InterviewRoundUpdatableFields.Permits(input.Fields); err != nil {
		return nil, err
	}

	input.Position = trimmed(input.Position)
	input.CompanyName = trimmed(input.CompanyName)
	input.InterviewRound = trimmed(input.InterviewRound)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	patch := &entity.InterviewRoundPatch{
		Position:     input.Position,
		CompanyName:  input.CompanyName,
		RoundDetails: trimmed(input.RoundDetails),
	}
	if input.InterviewRound != nil {
		round := entity.RoundType(*input.InterviewRound)
		patch.InterviewRound = &round
	}
	if input.ScheduledOn != nil {
		at, err := scheduledOn(*input.ScheduledOn)
		if err != nil {
			return nil, err
		}
		patch.ScheduledOn = &at
	}

	updated, err := srv.interviewRepo.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, domainerrors.ErrInterviewUpdateFailed.Wrap(err)
	}

	return updated, nil
}

func (srv *interviewService) DeleteInterview(ctx context.Context, id, userID string) (*entity.InterviewRound, error) {
	if _, err := loadOwned(ctx, srv.interviewRepo.FindByID, id, userID, domainerrors.ErrInterviewNotFound); err != nil {
		return nil, err
	}

	deleted, err := srv.interviewRepo.Delete(ctx, id)
	if err != nil {
		return nil, domainerrors.ErrInterviewDeleteFailed.Wrap(err)
	}

	srv.events.emit(ctx, constants.EventInterviewDeleted, deleted.UserID, deleted.ID, nil)

	return deleted, nil
}

func (srv *interviewService) ListInterviews(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.InterviewRound], error) {
	return srv.list(ctx, userID, entity.WindowUpcoming, page)
}

func (srv *interviewService) ListArchivedInterviews(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.InterviewRound], error) {
	return srv.list(ctx, userID, entity.WindowPast, page)
}

func (srv *interviewService) list(ctx context.Context, userID string, window entity.InterviewWindow, page entity.PageRequest) (*entity.Page[entity.InterviewRound], error) {
	if err := validPage(page); err != nil {
		return nil, err
	}

	filter := entity.InterviewFilter{
		UserID: userID,
		Window: window,
		Now:    srv.now().UTC(),
	}

	result, err := srv.interviewRepo.List(ctx, filter, page)
	if err != nil {
		return nil, domainerrors.ErrInterviewListFailed.Wrap(err)
	}

	return result, nil
}

func scheduledOn(value string) (time.Time, error) {
	at, ok := parseDate(value)
	if !ok {
		return time.Time{}, errors.WithStack(domainerrors.ErrInvalidScheduledOn.WithDetails(value))
	}

	return at, nil
}
