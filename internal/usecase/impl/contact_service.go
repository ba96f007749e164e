package impl

import (
	"context"
	"log/slog"

	deliverycontext "rolodex/internal/delivery/context"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	txManager   repository.TransactionManager
	contactRepo repository.ContactRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContactRepo repository.ContactRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager:   params.TxManager,
		contactRepo: params.ContactRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListContacts returns one page of the contact collection ordered by creation
// time. Negative offsets clamp to zero and non-positive limits fall back to
// the default page size.
func (srv *contactService) ListContacts(ctx context.Context, input usecase.ListContactsInput) ([]*entity.Contact, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}

	limit := input.Limit
	if limit <= 0 {
		limit = usecase.DefaultContactPageSize
	}

	contacts, err := srv.contactRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

// GetContact loads a single contact by its identifier.
func (srv *contactService) GetContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound.WrapMessage("contact does not exist")
		}

		return nil, errors.Wrap(err, "failed to get contact")
	}

	return contact, nil
}

// CreateContact stores a new contact and returns it with its generated identifier.
func (srv *contactService) CreateContact(ctx context.Context, input usecase.ContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		Birthday:       input.Birthday,
		AdditionalInfo: input.AdditionalInfo,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ContactRepo().Create(ctx, contact)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute contact creation transaction", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Contact created", slog.Any("contactID", contact.ID))

	return contact, nil
}

// UpdateContact replaces every writable field of an existing contact.
func (srv *contactService) UpdateContact(ctx context.Context, id uuid.UUID, input usecase.ContactInput) (*entity.Contact, error) {
	var updated *entity.Contact
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		contact, err := contactRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrContactNotFound) {
				return domainerrors.ErrContactNotFound.WrapMessage("contact does not exist")
			}

			return errors.Wrap(err, "failed to load contact for update")
		}

		contact.FirstName = input.FirstName
		contact.LastName = input.LastName
		contact.Email = input.Email
		contact.PhoneNumber = input.PhoneNumber
		contact.Birthday = input.Birthday
		contact.AdditionalInfo = input.AdditionalInfo

		if err := contactRepo.Update(ctx, contact); err != nil {
			return err
		}

		updated = contact

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute contact update transaction", slog.Any("contactID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteContact removes a contact and returns its last persisted state.
func (srv *contactService) DeleteContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var deleted *entity.Contact
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		contact, err := contactRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrContactNotFound) {
				return domainerrors.ErrContactNotFound.WrapMessage("contact does not exist")
			}

			return errors.Wrap(err, "failed to load contact for delete")
		}

		if err := contactRepo.Delete(ctx, contact.ID); err != nil {
			return errors.Wrap(err, "failed to delete contact")
		}

		deleted = contact

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute contact deletion transaction", slog.Any("contactID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Contact deleted", slog.Any("contactID", id))

	return deleted, nil
}

// ContactQR loads the contact and renders its vCard as a PNG QR code.
func (srv *contactService) ContactQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	contact, err := srv.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateContactQR(contact)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render contact QR code")
	}

	return png, nil
}
