package impl

import (
	"context"
	"testing"
	"time"

	"jobtrack/internal/domain/constants"
	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"
	mockRepo "jobtrack/internal/mocks/repository"
	mockSvc "jobtrack/internal/mocks/service"
	"jobtrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type applicationServiceFixtures struct {
	service   usecase.ApplicationUsecase
	appRepo   *mockRepo.MockApplicationRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestApplicationService(t *testing.T) applicationServiceFixtures {
	appRepo := mockRepo.NewMockApplicationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewApplicationService(ApplicationServiceParams{
		AppRepo:   appRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
	srv.(*applicationService).now = func() time.Time { return fixedNow }

	return applicationServiceFixtures{
		service:   srv,
		appRepo:   appRepo,
		publisher: publisher,
	}
}

func validApplicationInput() *usecase.CreateApplicationInput {
	return &usecase.CreateApplicationInput{
		UserID:         "u1",
		CompanyName:    "Acme",
		Position:       "Backend Engineer",
		ResumeUploaded: "https://files.example.com/r.pdf",
		AppliedOn:      "2024-05-30",
	}
}

func TestApplicationService_Create_DefaultsStatus(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Application")).
		Run(func(_ context.Context, app *entity.Application) {
			assert.Equal(t, entity.StatusApplied, app.ApplicationStatus)
			assert.Equal(t, "u1", app.UserID)
			assert.Equal(t, time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), app.AppliedOn)
			app.ID = "a1"
		}).
		Return(nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			assert.Equal(t, constants.EventApplicationCreated, event.Type)
			assert.Equal(t, "a1", event.ResourceID)
		}).
		Return(nil)

	app, err := fx.service.CreateApplication(ctx, validApplicationInput())

	require.NoError(t, err)
	assert.Equal(t, "a1", app.ID)
}

func TestApplicationService_Create_AppliedToday(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	input := validApplicationInput()
	input.AppliedOn = fixedNow.Format(time.RFC3339)
	input.ApplicationStatus = "Interviewing"

	fx.appRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, app *entity.Application) {
			assert.Equal(t, entity.StatusInterviewing, app.ApplicationStatus)
		}).
		Return(nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.CreateApplication(ctx, input)

	require.NoError(t, err)
}

func TestApplicationService_Create_DateErrors(t *testing.T) {
	tests := []struct {
		name      string
		appliedOn string
		want      *domainerrors.BaseError
	}{
		{name: "future", appliedOn: "2024-06-02", want: domainerrors.ErrAppliedOnInFuture},
		{name: "unparseable", appliedOn: "last tuesday", want: domainerrors.ErrInvalidAppliedOn},
		{name: "blank", appliedOn: " ", want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestApplicationService(t)

			input := validApplicationInput()
			input.AppliedOn = tt.appliedOn

			_, err := fx.service.CreateApplication(context.Background(), input)

			assert.True(t, errors.Is(err, tt.want))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
		})
	}
}

func TestApplicationService_Create_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.CreateApplication(ctx, validApplicationInput())

	require.NoError(t, err)
}

func TestApplicationService_Create_PersistFailure(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := fx.service.CreateApplication(ctx, validApplicationInput())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 501, appErr.HTTPCode())
}

func TestApplicationService_Get(t *testing.T) {
	tests := []struct {
		name    string
		found   *entity.Application
		findErr error
		caller  string
		want    *domainerrors.BaseError
	}{
		{name: "owner", found: &entity.Application{ID: "a1", UserID: "u1"}, caller: "u1"},
		{name: "other user", found: &entity.Application{ID: "a1", UserID: "u1"}, caller: "u2", want: domainerrors.ErrNotOwner},
		{name: "missing", findErr: repository.ErrNotFound, caller: "u1", want: domainerrors.ErrApplicationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestApplicationService(t)
			ctx := context.Background()

			fx.appRepo.EXPECT().FindByID(ctx, "a1").Return(tt.found, tt.findErr)

			app, err := fx.service.GetApplication(ctx, "a1", tt.caller)
			if tt.want == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.found, app)

				return
			}
			assert.Nil(t, app)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestApplicationService_Update_StatusChangeEmitsEvent(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().FindByID(ctx, "a1").
		Return(&entity.Application{ID: "a1", UserID: "u1", ApplicationStatus: entity.StatusApplied}, nil)
	fx.appRepo.EXPECT().Update(ctx, "a1", mock.AnythingOfType("*entity.ApplicationPatch")).
		Run(func(_ context.Context, _ string, patch *entity.ApplicationPatch) {
			require.NotNil(t, patch.ApplicationStatus)
			assert.Equal(t, entity.StatusOfferReceived, *patch.ApplicationStatus)
			assert.Nil(t, patch.CompanyName)
		}).
		Return(&entity.Application{ID: "a1", UserID: "u1", ApplicationStatus: entity.StatusOfferReceived}, nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			assert.Equal(t, constants.EventApplicationStatusChanged, event.Type)
			assert.Equal(t, "Applied", event.Attributes["from"])
			assert.Equal(t, "Offer Received", event.Attributes["to"])
		}).
		Return(nil)

	app, err := fx.service.UpdateApplication(ctx, &usecase.UpdateApplicationInput{
		ID:                "a1",
		UserID:            "u1",
		Fields:            []string{"applicationStatus"},
		ApplicationStatus: ptr("Offer Received"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusOfferReceived, app.ApplicationStatus)
}

func TestApplicationService_Update_EmptyPatch(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	current := &entity.Application{ID: "a1", UserID: "u1", CompanyName: "Acme", ApplicationStatus: entity.StatusApplied}

	fx.appRepo.EXPECT().FindByID(ctx, "a1").Return(current, nil)
	fx.appRepo.EXPECT().Update(ctx, "a1", &entity.ApplicationPatch{}).Return(current, nil)

	app, err := fx.service.UpdateApplication(ctx, &usecase.UpdateApplicationInput{
		ID:     "a1",
		UserID: "u1",
		Fields: []string{},
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme", app.CompanyName)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestApplicationService_Update_RejectsOwnerField(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Application{ID: "a1", UserID: "u1"}, nil)

	_, err := fx.service.UpdateApplication(ctx, &usecase.UpdateApplicationInput{
		ID:     "a1",
		UserID: "u1",
		Fields: []string{"notes", "userId"},
		Notes:  ptr("keep"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrFieldNotAllowed))
	fx.appRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationService_Update_OtherOwner(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Application{ID: "a1", UserID: "u1"}, nil)

	_, err := fx.service.UpdateApplication(ctx, &usecase.UpdateApplicationInput{
		ID:     "a1",
		UserID: "intruder",
		Fields: []string{"notes"},
		Notes:  ptr("mine now"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrNotOwner))
}

func TestApplicationService_Update_FutureAppliedOn(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Application{ID: "a1", UserID: "u1"}, nil)

	_, err := fx.service.UpdateApplication(ctx, &usecase.UpdateApplicationInput{
		ID:        "a1",
		UserID:    "u1",
		Fields:    []string{"appliedOn"},
		AppliedOn: ptr("2030-01-01"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAppliedOnInFuture))
}

func TestApplicationService_Update_VanishedDocument(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().FindByID(ctx, "a1").Return(&entity.Application{ID: "a1", UserID: "u1"}, nil)
	fx.appRepo.EXPECT().Update(ctx, "a1", mock.Anything).Return(nil, repository.ErrNotFound)

	_, err := fx.service.UpdateApplication(ctx, &usecase.UpdateApplicationInput{
		ID:     "a1",
		UserID: "u1",
		Fields: []string{"notes"},
		Notes:  ptr("n"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrApplicationUpdateFailed))
}

func TestApplicationService_Delete(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	snapshot := &entity.Application{ID: "a1", UserID: "u1", CompanyName: "Acme"}

	fx.appRepo.EXPECT().FindByID(ctx, "a1").Return(snapshot, nil)
	fx.appRepo.EXPECT().Delete(ctx, "a1").Return(snapshot, nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	deleted, err := fx.service.DeleteApplication(ctx, "a1", "u1")

	require.NoError(t, err)
	assert.Equal(t, snapshot, deleted)
}

func TestApplicationService_List_StatusFilter(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	page := entity.NewPageRequest(2, 5)

	expected := &entity.Page[entity.Application]{
		Items:      make([]entity.Application, 5),
		Pagination: entity.NewPagination(12, page),
	}

	fx.appRepo.EXPECT().List(ctx, entity.ApplicationFilter{
		UserID:   "u1",
		Statuses: []entity.ApplicationStatus{entity.StatusRejected},
	}, page).Return(expected, nil)

	result, err := fx.service.ListApplications(ctx, &usecase.ListApplicationsInput{UserID: "u1", Status: "Rejected", Page: page})

	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.Equal(t, int64(3), result.Pagination.TotalPages)
	assert.Equal(t, int64(2), result.Pagination.CurrentPage)
}

func TestApplicationService_List_InvalidStatus(t *testing.T) {
	fx := createTestApplicationService(t)

	_, err := fx.service.ListApplications(context.Background(), &usecase.ListApplicationsInput{
		UserID: "u1",
		Status: "Ghosted",
		Page:   entity.NewPageRequest(1, 10),
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode())
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestApplicationService_List_InvalidPage(t *testing.T) {
	fx := createTestApplicationService(t)

	_, err := fx.service.ListApplications(context.Background(), &usecase.ListApplicationsInput{
		UserID: "u1",
		Page:   entity.NewPageRequest(-1, 10),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestApplicationService_Archived(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	page := entity.NewPageRequest(1, 10)
	filter := entity.ApplicationFilter{UserID: "u1", Statuses: entity.ArchivedStatuses}

	fx.appRepo.EXPECT().List(ctx, filter, page).Return(&entity.Page[entity.Application]{}, nil)
	fx.appRepo.EXPECT().Count(ctx, filter).Return(int64(4), nil)

	_, err := fx.service.ListArchivedApplications(ctx, "u1", page)
	require.NoError(t, err)

	count, err := fx.service.CountArchivedApplications(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
