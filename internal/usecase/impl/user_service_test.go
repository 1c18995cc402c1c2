package impl

import (
	"context"
	"testing"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName:    " Ada ",
		LastName:     "Lovelace",
		Email:        " Ada@Example.COM ",
		Password:     "s3cret-pass",
		AspiringRole: "Backend Engineer",
		Skills:       []string{"go", " ", "mongo"},
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "Ada", user.FirstName)
			assert.Equal(t, "ada@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, entity.ExperienceEntry, user.ExperienceLevel)
			assert.Equal(t, []string{"go", "mongo"}, user.Skills)
			user.ID = "u1"
		}).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{
		ID:               "u1",
		Email:            "ada@example.com",
		PasswordHash:     "hashed",
		RefreshTokenHash: "slot",
	}, nil)

	out, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)
	assert.Empty(t, out.User.PasswordHash)
	assert.Empty(t, out.User.RefreshTokenHash)
}

func TestUserService_Register_MissingField(t *testing.T) {
	fx := createTestUserService(t)

	input := validRegisterInput()
	input.AspiringRole = "   "

	_, err := fx.service.Register(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{ID: "u0"}, nil)

	_, err := fx.service.Register(ctx, validRegisterInput())

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_DuplicateKeyRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateKey)

	_, err := fx.service.Register(ctx, validRegisterInput())

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_ReloadFails(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, user *entity.User) { user.ID = "u1" }).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(nil, repository.ErrNotFound)

	_, err := fx.service.Register(ctx, validRegisterInput())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.True(t, errors.Is(err, domainerrors.ErrUserRegistrationFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: "u1", Email: "ada@example.com", FirstName: "Ada", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
	fx.tokenService.EXPECT().IssueAccessToken(user.Identity()).Return("access", nil)
	fx.tokenService.EXPECT().IssueRefreshToken("u1").Return("refresh", nil)
	fx.userRepo.EXPECT().SetRefreshToken(ctx, "u1", service.HashRefreshToken("refresh")).Return(nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Empty(t, out.User.PasswordHash)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{ID: "u1", PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: "u1", RefreshTokenHash: service.HashRefreshToken("old")}

	fx.tokenService.EXPECT().VerifyRefreshToken("old").Return("u1", nil)
	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(user, nil)
	fx.tokenService.EXPECT().IssueAccessToken(user.Identity()).Return("access2", nil)
	fx.tokenService.EXPECT().IssueRefreshToken("u1").Return("new", nil)
	fx.userRepo.EXPECT().
		RotateRefreshToken(ctx, "u1", service.HashRefreshToken("old"), service.HashRefreshToken("new")).
		Return(nil)

	pair, err := fx.service.RefreshToken(ctx, "old")

	require.NoError(t, err)
	assert.Equal(t, "access2", pair.AccessToken)
	assert.Equal(t, "new", pair.RefreshToken)
}

func TestUserService_RefreshToken_StaleToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().VerifyRefreshToken("old").Return("u1", nil)
	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{
		ID:               "u1",
		RefreshTokenHash: service.HashRefreshToken("newer"),
	}, nil)

	_, err := fx.service.RefreshToken(ctx, "old")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))
}

func TestUserService_RefreshToken_LostRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: "u1", RefreshTokenHash: service.HashRefreshToken("old")}

	fx.tokenService.EXPECT().VerifyRefreshToken("old").Return("u1", nil)
	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(user, nil)
	fx.tokenService.EXPECT().IssueAccessToken(mock.Anything).Return("access2", nil)
	fx.tokenService.EXPECT().IssueRefreshToken("u1").Return("new", nil)
	fx.userRepo.EXPECT().RotateRefreshToken(ctx, "u1", mock.Anything, mock.Anything).
		Return(repository.ErrRefreshTokenMismatch)

	pair, err := fx.service.RefreshToken(ctx, "old")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenReused))
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().VerifyRefreshToken("garbage").Return("", errors.New("token is malformed"))

	_, err := fx.service.RefreshToken(context.Background(), "garbage")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_Missing(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.RefreshToken(context.Background(), "  ")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ClearRefreshToken(ctx, "u1").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, "u1"))
}

func TestUserService_GetCurrentUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrNotFound)

	_, err := fx.service.GetCurrentUser(ctx, "gone")

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil)
	fx.userRepo.EXPECT().UpdateProfile(ctx, "u1", mock.AnythingOfType("*entity.UserPatch")).
		Run(func(_ context.Context, _ string, patch *entity.UserPatch) {
			require.NotNil(t, patch.AspiringRole)
			assert.Equal(t, "Staff Engineer", *patch.AspiringRole)
			require.NotNil(t, patch.ExperienceLevel)
			assert.Equal(t, entity.ExperienceSenior, *patch.ExperienceLevel)
			assert.Nil(t, patch.FirstName)
		}).
		Return(&entity.User{ID: "u1", AspiringRole: "Staff Engineer", PasswordHash: "hashed"}, nil)

	user, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID:          "u1",
		Fields:          []string{"aspiringRole", "experienceLevel"},
		AspiringRole:    ptr(" Staff Engineer "),
		ExperienceLevel: ptr("Senior"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", user.AspiringRole)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_UpdateProfile_RejectsUnknownField(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil)

	_, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID:    "u1",
		Fields:    []string{"firstName", "email"},
		FirstName: ptr("Ada"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrFieldNotAllowed))
}
