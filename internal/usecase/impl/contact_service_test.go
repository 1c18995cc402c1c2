package impl

import (
	"context"
	"testing"

	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/errors"
	mockRepo "jobtrack/internal/mocks/repository"
	"jobtrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contactServiceFixtures struct {
	service     usecase.ContactUsecase
	contactRepo *mockRepo.MockContactRepository
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	contactRepo := mockRepo.NewMockContactRepository(t)

	return contactServiceFixtures{
		service: NewContactService(ContactServiceParams{
			ContactRepo: contactRepo,
			Logger:      newDiscardLogger(),
		}),
		contactRepo: contactRepo,
	}
}

func validContactInput() *usecase.CreateContactInput {
	return &usecase.CreateContactInput{
		UserID:      "u1",
		FirstName:   "Grace",
		LastName:    "Hopper",
		Email:       "Grace@Navy.mil",
		CompanyName: "US Navy",
		Role:        "Recruiter",
		PhoneNumber: "+15551234567",
	}
}

func TestContactService_Create_Success(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(_ context.Context, contact *entity.Contact) {
			assert.Equal(t, "grace@navy.mil", contact.Email)
			assert.Equal(t, "u1", contact.UserID)
			contact.ID = "c1"
		}).
		Return(nil)

	contact, err := fx.service.CreateContact(ctx, validContactInput())

	require.NoError(t, err)
	assert.Equal(t, "c1", contact.ID)
}

func TestContactService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *usecase.CreateContactInput)
	}{
		{name: "missing role", modify: func(in *usecase.CreateContactInput) { in.Role = "" }},
		{name: "bad phone", modify: func(in *usecase.CreateContactInput) { in.PhoneNumber = "call me" }},
		{name: "bad email", modify: func(in *usecase.CreateContactInput) { in.Email = "grace-at-navy" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContactService(t)

			input := validContactInput()
			tt.modify(input)

			_, err := fx.service.CreateContact(context.Background(), input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestContactService_Create_DuplicateEmail(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateKey)

	_, err := fx.service.CreateContact(ctx, validContactInput())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONTACT_EMAIL_TAKEN", appErr.ErrorCode())
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestContactService_Create_PersistFailure(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("timeout"))

	_, err := fx.service.CreateContact(ctx, validContactInput())

	assert.True(t, errors.Is(err, domainerrors.ErrContactCreateFailed))
}

func TestContactService_CrossOwnerAccess(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().FindByID(ctx, "c1").Return(&entity.Contact{ID: "c1", UserID: "u1"}, nil)

	_, getErr := fx.service.GetContact(ctx, "c1", "u2")
	_, delErr := fx.service.DeleteContact(ctx, "c1", "u2")
	_, updErr := fx.service.UpdateContact(ctx, &usecase.UpdateContactInput{
		ID: "c1", UserID: "u2", Fields: []string{"role"},
	})

	for _, err := range []error{getErr, delErr, updErr} {
		assert.True(t, errors.Is(err, domainerrors.ErrNotOwner))
	}
}

func TestContactService_Update_FieldOutsideAllowList(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().FindByID(ctx, "c1").Return(&entity.Contact{ID: "c1", UserID: "u1"}, nil)

	_, err := fx.service.UpdateContact(ctx, &usecase.UpdateContactInput{
		ID:        "c1",
		UserID:    "u1",
		Fields:    []string{"firstName", "companyName"},
		FirstName: ptr("Ada"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrFieldNotAllowed))
}

func TestContactService_Update_Success(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().FindByID(ctx, "c1").Return(&entity.Contact{ID: "c1", UserID: "u1"}, nil)
	fx.contactRepo.EXPECT().Update(ctx, "c1", mock.AnythingOfType("*entity.ContactPatch")).
		Run(func(_ context.Context, _ string, patch *entity.ContactPatch) {
			require.NotNil(t, patch.Email)
			assert.Equal(t, "new@corp.io", *patch.Email)
		}).
		Return(&entity.Contact{ID: "c1", UserID: "u1", Email: "new@corp.io"}, nil)

	contact, err := fx.service.UpdateContact(ctx, &usecase.UpdateContactInput{
		ID:     "c1",
		UserID: "u1",
		Fields: []string{"email"},
		Email:  ptr(" NEW@corp.io "),
	})

	require.NoError(t, err)
	assert.Equal(t, "new@corp.io", contact.Email)
}

func TestContactService_Delete_Failure(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().FindByID(ctx, "c1").Return(&entity.Contact{ID: "c1", UserID: "u1"}, nil)
	fx.contactRepo.EXPECT().Delete(ctx, "c1").Return(nil, repository.ErrNotFound)

	_, err := fx.service.DeleteContact(ctx, "c1", "u1")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestContactService_List(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	page := entity.NewPageRequest(1, 10)

	fx.contactRepo.EXPECT().List(ctx, "u1", page).Return(nil, errors.New("cursor closed"))

	_, err := fx.service.ListContacts(ctx, "u1", page)

	assert.True(t, errors.Is(err, domainerrors.ErrContactListFailed))
}
