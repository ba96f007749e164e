package main

import (
	"context"
	"log/slog"
	"os"

	"rolodex/config"
	"rolodex/internal/delivery"
	"rolodex/internal/delivery/http"
	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/router/handler"
	"rolodex/internal/domain/service"
	"rolodex/internal/infra/auth"
	logs "rolodex/internal/infra/log"
	"rolodex/internal/infra/mail"
	"rolodex/internal/infra/persistence/postgres"
	"rolodex/internal/infra/qrcode"
	"rolodex/internal/usecase/impl"

	"go.uber.org/fx"
)

type serveParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHTTP(),
		fx.Invoke(serve),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewUserRepository,
		postgres.NewContactRepository,
		postgres.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		auth.NewJWTService,
		mail.NewSMTPSender,
		newQRCodeService,
	)
}

// newQRCodeService falls back to a scannable default when the config omits
// the qrCode section.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "M"
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return qrcode.NewQRCodeService(size, level)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAuthService,
		impl.NewContactService,
	)
}

// injectHTTP wires the transport layer: the auth middleware the router
// guards contacts with, the handlers, and the server collected into the
// deliveries group.
func injectHTTP() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		handler.NewAuthHandler,
		handler.NewContactHandler,
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func serve(ctx context.Context, params serveParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("delivery stopped", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
