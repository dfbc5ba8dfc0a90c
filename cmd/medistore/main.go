package main

import (
	"context"
	"log/slog"
	"os"

	"medistore/config"
	"medistore/internal/delivery"
	"medistore/internal/delivery/http"
	"medistore/internal/delivery/http/router/handler"
	logs "medistore/internal/infra/log"
	"medistore/internal/infra/payment"
	"medistore/internal/infra/persistence/mongodb"
	"medistore/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
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
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewUserRepository,
			mongodb.NewMedicineRepository,
			mongodb.NewOrderRepository,
			mongodb.NewAdvertisementRepository,
			mongodb.NewContentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			payment.NewStripeGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewCheckoutService,
			impl.NewSellerService,
			impl.NewAdvertisementService,
			impl.NewContentService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewMedicineHandler,
			handler.NewOrderHandler,
			handler.NewCheckoutHandler,
			handler.NewSellerHandler,
			handler.NewAdvertisementHandler,
			handler.NewContentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
