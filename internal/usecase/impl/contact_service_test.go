package impl

import (
	"context"
	"testing"
	"time"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	mockRepo "rolodex/internal/mocks/repository"
	mockSvc "rolodex/internal/mocks/service"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contactServiceFixtures holds all test dependencies for contact service tests.
type contactServiceFixtures struct {
	service     usecase.ContactUsecase
	txManager   *mockRepo.MockTransactionManager
	contactRepo *mockRepo.MockContactRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewContactService(ContactServiceParams{
		TxManager:   txManager,
		ContactRepo: contactRepo,
		QRService:   qrService,
		Logger:      newDiscardLogger(),
	})

	return contactServiceFixtures{
		service:     service,
		txManager:   txManager,
		contactRepo: contactRepo,
		qrService:   qrService,
	}
}

func newTestContactInput() usecase.ContactInput {
	return usecase.ContactInput{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		PhoneNumber:    "+442079460000",
		Birthday:       time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC),
		AdditionalInfo: "First programmer",
	}
}

func TestContactService_ListContacts_Success(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	contacts := []*entity.Contact{
		{ID: uuid.New(), FirstName: "Ada"},
		{ID: uuid.New(), FirstName: "Charles"},
	}

	fx.contactRepo.EXPECT().List(ctx, 10, 2).Return(contacts, nil)

	got, err := fx.service.ListContacts(ctx, usecase.ListContactsInput{Skip: 10, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, contacts, got)
}

func TestContactService_ListContacts_ClampsPagination(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()

	fx.contactRepo.EXPECT().
		List(ctx, 0, usecase.DefaultContactPageSize).
		Return([]*entity.Contact{}, nil)

	got, err := fx.service.ListContacts(ctx, usecase.ListContactsInput{Skip: -5, Limit: 0})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestContactService_ListContacts_RepoError(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()

	fx.contactRepo.EXPECT().
		List(ctx, 0, usecase.DefaultContactPageSize).
		Return(nil, errors.New("connection reset"))

	got, err := fx.service.ListContacts(ctx, usecase.ListContactsInput{})

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestContactService_GetContact_Success(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	contact := &entity.Contact{ID: uuid.New(), FirstName: "Ada"}

	fx.contactRepo.EXPECT().FindByID(ctx, contact.ID).Return(contact, nil)

	got, err := fx.service.GetContact(ctx, contact.ID)

	require.NoError(t, err)
	assert.Equal(t, contact, got)
}

func TestContactService_GetContact_NotFound(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.contactRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrContactNotFound)

	got, err := fx.service.GetContact(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestContactService_CreateContact_Success(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	input := newTestContactInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().ContactRepo().Return(mockContactRepo)

			mockContactRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Contact")).
				Run(func(ctx context.Context, contact *entity.Contact) {
					contact.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	got, err := fx.service.CreateContact(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, input.FirstName, got.FirstName)
	assert.Equal(t, input.LastName, got.LastName)
	assert.Equal(t, input.Email, got.Email)
	assert.Equal(t, input.PhoneNumber, got.PhoneNumber)
	assert.Equal(t, input.Birthday, got.Birthday)
	assert.Equal(t, input.AdditionalInfo, got.AdditionalInfo)
}

func TestContactService_CreateContact_RepoError(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	input := newTestContactInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("insert failed"))

	got, err := fx.service.CreateContact(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestContactService_UpdateContact_Success(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	id := uuid.New()
	input := newTestContactInput()

	stored := &entity.Contact{
		ID:          id,
		FirstName:   "Old",
		LastName:    "Name",
		Email:       "old@example.com",
		PhoneNumber: "+10000000000",
		Birthday:    time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().ContactRepo().Return(mockContactRepo)

			mockContactRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)
			mockContactRepo.EXPECT().Update(ctx, stored).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	got, err := fx.service.UpdateContact(ctx, id, input)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, input.FirstName, got.FirstName)
	assert.Equal(t, input.LastName, got.LastName)
	assert.Equal(t, input.Email, got.Email)
	assert.Equal(t, input.PhoneNumber, got.PhoneNumber)
	assert.Equal(t, input.Birthday, got.Birthday)
	assert.Equal(t, input.AdditionalInfo, got.AdditionalInfo)
}

func TestContactService_UpdateContact_NotFound(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	id := uuid.New()
	input := newTestContactInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().ContactRepo().Return(mockContactRepo)

			mockContactRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrContactNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrContactNotFound, "contact does not exist"))

	got, err := fx.service.UpdateContact(ctx, id, input)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestContactService_DeleteContact_Success(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	contact := &entity.Contact{ID: uuid.New(), FirstName: "Ada"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().ContactRepo().Return(mockContactRepo)

			mockContactRepo.EXPECT().FindByID(ctx, contact.ID).Return(contact, nil)
			mockContactRepo.EXPECT().Delete(ctx, contact.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	got, err := fx.service.DeleteContact(ctx, contact.ID)

	require.NoError(t, err)
	assert.Equal(t, contact, got)
}

func TestContactService_DeleteContact_NotFound(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().ContactRepo().Return(mockContactRepo)

			mockContactRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrContactNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrContactNotFound, "contact does not exist"))

	got, err := fx.service.DeleteContact(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestContactService_ContactQR_Success(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	contact := &entity.Contact{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.contactRepo.EXPECT().FindByID(ctx, contact.ID).Return(contact, nil)
	fx.qrService.EXPECT().GenerateContactQR(contact).Return(png, nil)

	got, err := fx.service.ContactQR(ctx, contact.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestContactService_ContactQR_NotFound(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.contactRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrContactNotFound)

	got, err := fx.service.ContactQR(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestContactService_ContactQR_EncodeFailure(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	contact := &entity.Contact{ID: uuid.New(), FirstName: "Ada"}

	fx.contactRepo.EXPECT().FindByID(ctx, contact.ID).Return(contact, nil)
	fx.qrService.EXPECT().GenerateContactQR(contact).Return(nil, errors.New("content too long"))

	got, err := fx.service.ContactQR(ctx, contact.ID)

	assert.Error(t, err)
	assert.Nil(t, got)
}
