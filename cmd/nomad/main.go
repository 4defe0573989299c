package main

import (
	"context"
	"log/slog"
	"os"

	"nomad/config"
	"nomad/internal/delivery"
	"nomad/internal/delivery/api"
	"nomad/internal/delivery/api/middleware"
	"nomad/internal/delivery/api/router/handler"
	workerhandler "nomad/internal/delivery/worker/handler"
	"nomad/internal/domain/service"
	"nomad/internal/infra/auth"
	"nomad/internal/infra/geo"
	logs "nomad/internal/infra/log"
	"nomad/internal/infra/notification"
	"nomad/internal/infra/persistence/postgres"
	"nomad/internal/infra/presence"
	"nomad/internal/infra/pubsub"
	"nomad/internal/infra/transport/websocket"
	"nomad/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewMessageRepository,
			postgres.NewBusinessRepository,
			postgres.NewBusinessLocationRepository,
			postgres.NewBusinessNotificationRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.New,
			pubsub.NewEventPublisher,
			websocket.NewUpgrader,
			fx.Annotate(
				presence.NewRegistry,
				fx.As(new(service.PresenceRegistry)),
			),
			fx.Annotate(
				geo.New,
				fx.As(new(service.LocationResolver)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMessagingService,
			impl.NewNotificationService,
			impl.NewMatchingService,
			impl.NewBusinessService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewMessageHandler,
			handler.NewWebSocketHandler,
			handler.NewBusinessHandler,
			handler.NewDeviceHandler,
			handler.NewContextHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
