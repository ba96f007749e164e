// Package impl contains the implementation of the application's business logic.
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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailSender   service.MailSender
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailSender   service.MailSender
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailSender:   params.MailSender,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the registration flow: hash the password, insert the
// account inside a transaction, then send the confirmation mail after commit.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Fast duplicate check for a friendly error. The unique index on email
		// remains the authoritative guard for concurrent registrations.
		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		user := &entity.User{
			Email:        input.Email,
			PasswordHash: passwordHash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		registeredUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// The account exists once the transaction commits; mail delivery is best effort.
	srv.sendVerificationMail(ctx, registeredUser.Email)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// sendVerificationMail issues a verification token and emails the confirmation
// link. Delivery problems are logged and swallowed; the account stays
// registered and verification can be retried later.
func (srv *authService) sendVerificationMail(ctx context.Context, email string) {
	token, err := srv.tokenService.IssueVerificationToken(email)
	if err != nil {
		srv.log(ctx).Warn("Failed to issue verification token", slog.String("email", email), slog.Any("error", err))

		return
	}

	if err := srv.mailSender.SendVerificationMail(ctx, email, token); err != nil {
		srv.log(ctx).Warn("Failed to send verification mail", slog.String("email", email), slog.Any("error", err))
	}
}

// Authenticate validates an email/password pair. Every failure collapses to
// ErrInvalidCredentials so callers cannot probe which half was wrong.
func (srv *authService) Authenticate(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return user, nil
}

// Login authenticates the credentials and issues a bearer access token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// ResolvePrincipal exchanges a bearer access token for the user it identifies.
// Expired or malformed tokens, wrong-purpose tokens and vanished accounts all
// collapse to ErrUnauthenticated.
func (srv *authService) ResolvePrincipal(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(token, service.PurposeAccess)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("failed to load principal")
	}

	return user, nil
}

// VerifyEmail consumes a confirmation token and marks the account verified.
// The operation is idempotent; re-verifying succeeds without a write.
func (srv *authService) VerifyEmail(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(token, service.PurposeVerification)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	var verifiedUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidToken.WrapMessage("token subject no longer exists")
			}

			return errors.Wrap(err, "failed to load user for verification")
		}

		if user.Verified {
			verifiedUser = user

			return nil
		}

		user.Verified = true
		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}

		verifiedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute email verification transaction", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", verifiedUser.ID))

	return verifiedUser, nil
}
