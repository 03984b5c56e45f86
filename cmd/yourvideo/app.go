package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/delivery"
	"github.com/Abhithakur7080/your-video/internal/delivery/api"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/middleware"
	"github.com/Abhithakur7080/your-video/internal/delivery/api/router/handler"
	"github.com/Abhithakur7080/your-video/internal/infra/auth"
	logs "github.com/Abhithakur7080/your-video/internal/infra/log"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/postgres"
	"github.com/Abhithakur7080/your-video/internal/infra/storage"
	"github.com/Abhithakur7080/your-video/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// newApp assembles the HTTP service.
func newApp() *fx.App {
	return fx.New(
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
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVideoRepository,
			postgres.NewCommentRepository,
			postgres.NewTweetRepository,
			postgres.NewLikeRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewPlaylistRepository,
			postgres.NewViewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewCascadeService,
			impl.NewUserService,
			impl.NewVideoService,
			impl.NewCommentService,
			impl.NewTweetService,
			impl.NewLikeService,
			impl.NewSubscriptionService,
			impl.NewPlaylistService,
			impl.NewDashboardService,
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
			handler.NewUserHandler,
			handler.NewVideoHandler,
			handler.NewCommentHandler,
			handler.NewTweetHandler,
			handler.NewLikeHandler,
			handler.NewSubscriptionHandler,
			handler.NewPlaylistHandler,
			handler.NewDashboardHandler,
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
				os.Exit(1)
			}
		}()
	}
}
