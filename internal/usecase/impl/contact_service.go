package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/errors"
	"jobtrack/internal/usecase"
	"jobtrack/internal/validation"

	"go.uber.org/fx"
)

type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// CreateContact saves a contact for the caller. Contact emails are unique across all users.
func (srv *contactService) CreateContact(ctx context.Context, input *usecase.CreateContactInput) (*entity.Contact, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = normalizeEmail(input.Email)
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Role = strings.TrimSpace(input.Role)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	contact := &entity.Contact{
		UserID:          input.UserID,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		CompanyName:     input.CompanyName,
		Role:            input.Role,
		PhoneNumber:     input.PhoneNumber,
		LinkedInProfile: strings.TrimSpace(input.LinkedInProfile),
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, errors.WithStack(domainerrors.ErrContactEmailTaken)
		}

		srv.log(ctx).Error("Failed to create contact", slog.String("user_id", input.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrContactCreateFailed.Wrap(err)
	}

	return contact, nil
}

func (srv *contactService) GetContact(ctx context.Context, id, userID string) (*entity.Contact, error) {
	return loadOwned(ctx, srv.contactRepo.FindByID, id, userID, domainerrors.ErrContactNotFound)
}

func (srv *contactService) UpdateContact(ctx context.Context, input *usecase.UpdateContactInput) (*entity.Contact, error) {
	if _, err := loadOwned(ctx, srv.contactRepo.FindByID, input.ID, input.UserID, domainerrors.ErrContactNotFound); err != nil {
		return nil, err
	}

	if err := entity.ContactUpdatableFields.Permits(input.Fields); err != nil {
		return nil, err
	}

	input.FirstName = trimmed(input.FirstName)
	input.LastName = trimmed(input.LastName)
	input.PhoneNumber = trimmed(input.PhoneNumber)
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		input.Email = &email
	}

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	updated, err := srv.contactRepo.Update(ctx, input.ID, &entity.ContactPatch{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		LinkedInProfile: trimmed(input.LinkedInProfile),
	})
	if errors.Is(err, repository.ErrDuplicateKey) {
		return nil, errors.WithStack(domainerrors.ErrContactEmailTaken)
	}
	if err != nil {
		return nil, domainerrors.ErrContactUpdateFailed.Wrap(err)
	}

	return updated, nil
}

func (srv *contactService) DeleteContact(ctx context.Context, id, userID string) (*entity.Contact, error) {
	if _, err := loadOwned(ctx, srv.contactRepo.FindByID, id, userID, domainerrors.ErrContactNotFound); err != nil {
		return nil, err
	}

	deleted, err := srv.contactRepo.Delete(ctx, id)
	if err != nil {
		return nil, domainerrors.ErrContactDeleteFailed.Wrap(err)
	}

	return deleted, nil
}

func (srv *contactService) ListContacts(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Contact], error) {
	if err := validPage(page); err != nil {
		return nil, err
	}

	result, err := srv.contactRepo.List(ctx, userID, page)
	if err != nil {
		return nil, domainerrors.ErrContactListFailed.Wrap(err)
	}

	return result, nil
}
