package main

import (
	"context"
	"flag"
	"log/slog"

	"clipcast/config"
	logs "clipcast/internal/infra/log"
	"clipcast/internal/infra/persistence/postgres"
	"clipcast/internal/usecase"
	"clipcast/internal/usecase/impl"
	"clipcast/internal/util"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Seeder usecase.SeedUsecase
	Logger *slog.Logger
}

func main() {
	wipe := flag.Bool("wipe", false, "delete every relational row before seeding")
	flag.Parse()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(func(params runParams) {
			runSeeder(params, *wipe)
		}),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRepositoryFactory,
			postgres.NewBatchManager,
			postgres.NewMaintenanceRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSeedService,
		),
	)
}

// runSeeder performs one seeding pass and shuts the app down when done.
func runSeeder(params runParams, wipe bool) {
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx := context.Background()
				exitCode := 0

				if err := seed(ctx, params, wipe); err != nil {
					params.Logger.Error("seeding failed", "error", err)
					exitCode = 1
				}

				_ = params.Shutdown(fx.ExitCode(exitCode))
			}()

			return nil
		},
	})
}

func seed(ctx context.Context, params runParams, wipe bool) error {
	if wipe {
		if err := params.Seeder.WipeRelational(ctx); err != nil {
			return err
		}
	}

	result, err := params.Seeder.SeedAll(ctx)
	if err != nil {
		return err
	}

	params.Logger.Info("seeding run complete",
		"inserted", result.Inserted,
		"elapsed", util.FormatDuration(result.Elapsed),
	)

	return nil
}
