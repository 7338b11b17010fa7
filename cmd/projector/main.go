package main

import (
	"context"
	"flag"
	"log/slog"

	"clipcast/config"
	"clipcast/internal/infra/docstore"
	logs "clipcast/internal/infra/log"
	"clipcast/internal/infra/persistence/postgres"
	"clipcast/internal/usecase"
	"clipcast/internal/usecase/impl"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Projector usecase.ProjectionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

type projectorFlags struct {
	wipe      bool
	offset    int
	block     int
	feedCache bool
}

func main() {
	flags := projectorFlags{}
	flag.BoolVar(&flags.wipe, "wipe", false, "delete every derived document before projecting")
	flag.IntVar(&flags.offset, "offset", 0, "video page offset to start from")
	flag.IntVar(&flags.block, "block", 0, "videos per block, 0 uses the configured block size")
	flag.BoolVar(&flags.feedCache, "feedcache", false, "also populate per-user feed caches")
	flag.Parse()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(func(params runParams) {
			runProjector(params, flags)
		}),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
		docstore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVideoRepository,
			postgres.NewUserRepository,
			docstore.NewDocumentStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProjectionService,
		),
	)
}

func runProjector(params runParams, flags projectorFlags) {
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx := context.Background()
				exitCode := 0

				if err := project(ctx, params, flags); err != nil {
					params.Logger.Error("projection failed", "error", err)
					exitCode = 1
				}

				_ = params.Shutdown(fx.ExitCode(exitCode))
			}()

			return nil
		},
	})
}

func project(ctx context.Context, params runParams, flags projectorFlags) error {
	if flags.wipe {
		if err := params.Projector.WipeDocuments(ctx); err != nil {
			return err
		}
	}

	block := flags.block
	if block <= 0 && params.Config.Projection != nil {
		block = params.Config.Projection.BlockSize
	}

	summary, err := params.Projector.ProjectVideos(ctx, flags.offset, block)
	if err != nil {
		return err
	}

	params.Logger.Info("projection run complete",
		"videos", summary.Videos,
		"comments", summary.Comments,
		"reactions", summary.Reactions,
		"views", summary.Views,
	)

	feedCache := flags.feedCache
	if !feedCache && params.Config.Projection != nil {
		feedCache = params.Config.Projection.FeedCache
	}
	if feedCache {
		cached, err := params.Projector.PopulateFeedCache(ctx)
		if err != nil {
			return err
		}
		params.Logger.Info("feed cache run complete", "users", cached)
	}

	return nil
}
