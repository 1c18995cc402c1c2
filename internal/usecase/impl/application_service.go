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

type applicationService struct {
	appRepo repository.ApplicationRepository
	events  eventEmitter
	logger  *slog.Logger
	now     func() time.Time
}

// ApplicationServiceParams holds dependencies for ApplicationService, injected by Fx.
type ApplicationServiceParams struct {
	fx.In

	AppRepo   repository.ApplicationRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewApplicationService creates the application usecase.
func NewApplicationService(params ApplicationServiceParams) usecase.ApplicationUsecase {
	return &applicationService{
		appRepo: params.AppRepo,
		events:  eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:  params.Logger,
		now:     time.Now,
	}
}

func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// CreateApplication records a new application for the caller. The status
// defaults to Applied and the applied date may not lie in the future.
func (srv *applicationService) CreateApplication(ctx context.Context, input *usecase.CreateApplicationInput) (*entity.Application, error) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Position = strings.TrimSpace(input.Position)
	input.ResumeUploaded = strings.TrimSpace(input.ResumeUploaded)
	input.ApplicationStatus = strings.TrimSpace(input.ApplicationStatus)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	appliedOn, err := srv.appliedOn(input.AppliedOn)
	if err != nil {
		return nil, err
	}

	status := entity.ApplicationStatus(input.ApplicationStatus)
	if status == "" {
		status = entity.StatusApplied
	}

	app := &entity.Application{
		UserID:              input.UserID,
		CompanyName:         input.CompanyName,
		Position:            input.Position,
		JobLink:             strings.TrimSpace(input.JobLink),
		ApplicationStatus:   status,
		ResumeUploaded:      input.ResumeUploaded,
		CoverLetterUploaded: strings.TrimSpace(input.CoverLetterUploaded),
		Notes:               input.Notes,
		AppliedOn:           appliedOn,
	}

	if err := srv.appRepo.Create(ctx, app); err != nil {
		srv.log(ctx).Error("Failed to create application", slog.String("user_id", input.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrApplicationCreateFailed.Wrap(err)
	}

	srv.events.emit(ctx, constants.EventApplicationCreated, app.UserID, app.ID, map[string]string{
		"company_name": app.CompanyName,
		"status":       string(app.ApplicationStatus),
	})

	return app, nil
}

func (srv *applicationService) GetApplication(ctx context.Context, id, userID string) (*entity.Application, error) {
	return loadOwned(ctx, srv.appRepo.FindByID, id, userID, domainerrors.ErrApplicationNotFound)
}

// UpdateApplication applies an allow-listed partial update. A status change emits an event.
func (srv *applicationService) UpdateApplication(ctx context.Context, input *usecase.UpdateApplicationInput) (*entity.Application, error) {
	current, err := loadOwned(ctx, srv.appRepo.FindByID, input.ID, input.UserID, domainerrors.ErrApplicationNotFound)
	if err != nil {
		return nil, err
	}

	if err := entity.ApplicationUpdatableFields.Permits(input.Fields); err != nil {
		return nil, err
	}

	input.CompanyName = trimmed(input.CompanyName)
	input.Position = trimmed(input.Position)
	input.ApplicationStatus = trimmed(input.ApplicationStatus)
	input.ResumeUploaded = trimmed(input.ResumeUploaded)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	patch := &entity.ApplicationPatch{
		CompanyName:         input.CompanyName,
		Position:            input.Position,
		JobLink:             trimmed(input.JobLink),
		ResumeUploaded:      input.ResumeUploaded,
		CoverLetterUploaded: trimmed(input.CoverLetterUploaded),
		Notes:               input.Notes,
	}
	if input.ApplicationStatus != nil {
		status := entity.ApplicationStatus(*input.ApplicationStatus)
		patch.ApplicationStatus = &status
	}
	if input.AppliedOn != nil {
		appliedOn, err := srv.appliedOn(*input.AppliedOn)
		if err != nil {
			return nil, err
		}
		patch.AppliedOn = &appliedOn
	}

	updated, err := srv.appRepo.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, domainerrors.ErrApplicationUpdateFailed.Wrap(err)
	}

	if updated.ApplicationStatus != current.ApplicationStatus {
		srv.events.emit(ctx, constants.EventApplicationStatusChanged, updated.UserID, updated.ID, map[string]string{
			"from": string(current.ApplicationStatus),
			"to":   string(updated.ApplicationStatus),
		})
	}

	return updated, nil
}

func (srv *applicationService) DeleteApplication(ctx context.Context, id, userID string) (*entity.Application, error) {
	if _, err := loadOwned(ctx, srv.appRepo.FindByID, id, userID, domainerrors.ErrApplicationNotFound); err != nil {
		return nil, err
	}

	deleted, err := srv.appRepo.Delete(ctx, id)
	if err != nil {
		return nil, domainerrors.ErrApplicationDeleteFailed.Wrap(err)
	}

	srv.events.emit(ctx, constants.EventApplicationDeleted, deleted.UserID, deleted.ID, nil)

	return deleted, nil
}

// ListApplications pages through the caller's applications, optionally narrowed to one status.
// An unknown status is rejected with INVALID_STATUS.
func (srv *applicationService) ListApplications(ctx context.Context, input *usecase.ListApplicationsInput) (*entity.Page[entity.Application], error) {
	filter := entity.ApplicationFilter{UserID: input.UserID}

	if status := strings.TrimSpace(input.Status); status != "" {
		if !entity.ApplicationStatus(status).Valid() {
			return nil, errors.WithStack(domainerrors.ErrInvalidStatus.WithDetails(status))
		}
		filter.Statuses = []entity.ApplicationStatus{entity.ApplicationStatus(status)}
	}

	return srv.list(ctx, filter, input.Page)
}

// ListArchivedApplications pages through applications that reached a terminal status.
func (srv *applicationService) ListArchivedApplications(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Application], error) {
	return srv.list(ctx, entity.ApplicationFilter{UserID: userID, Statuses: entity.ArchivedStatuses}, page)
}

func (srv *applicationService) CountArchivedApplications(ctx context.Context, userID string) (int64, error) {
	count, err := srv.appRepo.Count(ctx, entity.ApplicationFilter{UserID: userID, Statuses: entity.ArchivedStatuses})
	if err != nil {
		return 0, domainerrors.ErrApplicationListFailed.Wrap(err)
	}

	return count, nil
}

func (srv *applicationService) list(ctx context.Context, filter entity.ApplicationFilter, page entity.PageRequest) (*entity.Page[entity.Application], error) {
	if err := validPage(page); err != nil {
		return nil, err
	}

	result, err := srv.appRepo.List(ctx, filter, page)
	if err != nil {
		return nil, domainerrors.ErrApplicationListFailed.Wrap(err)
	}

	return result, nil
}

// appliedOn parses the submitted date and refuses dates after now.
func (srv *applicationService) appliedOn(value string) (time.Time, error) {
	appliedOn, ok := parseDate(value)
	if !ok {
		return time.Time{}, errors.WithStack(domainerrors.ErrInvalidAppliedOn.WithDetails(value))
	}
	if appliedOn.After(srv.now()) {
		return time.Time{}, errors.WithStack(domainerrors.ErrAppliedOnInFuture)
	}

	return appliedOn, nil
}
