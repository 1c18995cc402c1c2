package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"
	"jobtrack/internal/usecase"
	"jobtrack/internal/validation"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Register creates a new account. The password is stored as a bcrypt hash
// and the returned user never carries credentials.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = normalizeEmail(input.Email)
	input.AspiringRole = strings.TrimSpace(input.AspiringRole)
	input.ExperienceLevel = strings.TrimSpace(input.ExperienceLevel)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.Wrap(err)
	}

	level := entity.ExperienceLevel(input.ExperienceLevel)
	if level == "" {
		level = entity.ExperienceEntry
	}

	user := &entity.User{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		PasswordHash:    hash,
		Skills:          cleanSkills(input.Skills),
		AspiringRole:    input.AspiringRole,
		ExperienceLevel: level,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, domainerrors.ErrUserRegistrationFailed.Wrap(err)
	}

	created, err := srv.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to reload registered user", slog.String("user_id", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrUserRegistrationFailed.Wrap(err)
	}

	srv.log(ctx).Debug("Registration completed", slog.String("user_id", created.ID))

	return &usecase.RegisterOutput{User: sanitizeUser(created)}, nil
}

// Login verifies credentials and issues a token pair. An unknown email and a
// wrong password fail identically.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	input.Email = normalizeEmail(input.Email)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("user_id", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	pair, err := srv.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.SetRefreshToken(ctx, user.ID, service.HashRefreshToken(pair.RefreshToken)); err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.Wrap(err)
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID))

	return &usecase.LoginOutput{TokenPair: *pair, User: sanitizeUser(user)}, nil
}

// RefreshToken rotates the refresh token. Only the token currently stored for
// the user is accepted, and the swap is conditional on it still being there.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	userID, err := srv.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.Wrap(err)
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	presented := service.HashRefreshToken(refreshToken)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(user.RefreshTokenHash)) != 1 {
		srv.log(ctx).Warn("Stale refresh token presented", slog.String("user_id", user.ID))

		return nil, errors.WithStack(domainerrors.ErrRefreshTokenReused)
	}

	pair, err := srv.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	err = srv.userRepo.RotateRefreshToken(ctx, user.ID, presented, service.HashRefreshToken(pair.RefreshToken))
	if errors.Is(err, repository.ErrRefreshTokenMismatch) {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenReused)
	}
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.Wrap(err)
	}

	return pair, nil
}

// Logout empties the refresh token slot so no refresh token remains valid.
func (srv *userService) Logout(ctx context.Context, userID string) error {
	err := srv.userRepo.ClearRefreshToken(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to clear refresh token")
	}

	srv.log(ctx).Info("User logged out", slog.String("user_id", userID))

	return nil
}

func (srv *userService) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return sanitizeUser(user), nil
}

// UpdateProfile applies an allow-listed partial update to the caller's own record.
func (srv *userService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if _, err := srv.GetCurrentUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	if err := entity.UserProfileFields.Permits(input.Fields); err != nil {
		return nil, err
	}

	input.FirstName = trimmed(input.FirstName)
	input.LastName = trimmed(input.LastName)
	input.AspiringRole = trimmed(input.AspiringRole)
	input.ExperienceLevel = trimmed(input.ExperienceLevel)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	patch := &entity.UserPatch{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		AspiringRole: input.AspiringRole,
	}
	if input.Skills != nil {
		skills := cleanSkills(*input.Skills)
		patch.Skills = &skills
	}
	if input.ExperienceLevel != nil {
		level := entity.ExperienceLevel(*input.ExperienceLevel)
		patch.ExperienceLevel = &level
	}

	updated, err := srv.userRepo.UpdateProfile(ctx, input.UserID, patch)
	if err != nil {
		return nil, domainerrors.ErrUserUpdateFailed.Wrap(err)
	}

	return sanitizeUser(updated), nil
}

func (srv *userService) issueTokenPair(user *entity.User) (*usecase.TokenPair, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(user.Identity())
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.Wrap(err)
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.Wrap(err)
	}

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// sanitizeUser drops the credential fields before a user leaves the usecase layer.
func sanitizeUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}

	out := *user
	out.PasswordHash = ""
	out.RefreshTokenHash = ""

	return &out
}
