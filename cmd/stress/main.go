package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"clipcast/config"
	"clipcast/internal/infra/docstore"
	logs "clipcast/internal/infra/log"
	"clipcast/internal/infra/persistence/postgres"
	"clipcast/internal/usecase"
	"clipcast/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Stress usecase.StressUsecase
	Config *config.Config
	Logger *slog.Logger
}

func main() {
	mode := flag.String("mode", "pg-read", "workload: pg-insert, pg-read, fs-insert or fs-read")
	flag.Parse()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(func(params runParams) {
			runStress(params, *mode)
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
			postgres.NewUserRepository,
			postgres.NewBatchManager,
			docstore.NewDocumentStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStressService,
		),
	)
}

func runStress(params runParams, mode string) {
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx := context.Background()
				exitCode := 0

				if err := measure(ctx, params, mode); err != nil {
					params.Logger.Error("stress run failed", "mode", mode, "error", err)
					exitCode = 1
				}

				_ = params.Shutdown(fx.ExitCode(exitCode))
			}()

			return nil
		},
	})
}

func measure(ctx context.Context, params runParams, mode string) error {
	if params.Config.Stress == nil {
		return errors.New("stress config is required")
	}

	insertLoads := params.Config.Stress.InsertLoads
	readLoads := params.Config.Stress.ReadLoads

	var samples []usecase.Sample
	var err error

	switch mode {
	case "pg-insert":
		samples, err = params.Stress.RelationalInsert(ctx, insertLoads)
	case "pg-read":
		samples, err = params.Stress.RelationalRead(ctx, readLoads)
	case "fs-insert":
		samples, err = params.Stress.DocumentInsert(ctx, insertLoads)
	case "fs-read":
		samples, err = params.Stress.DocumentRead(ctx, readLoads)
	default:
		return errors.Errorf("unknown mode: %s", mode)
	}
	if err != nil {
		return err
	}

	// One "load elapsed_ms" line per sample, ready for external plotting.
	for _, sample := range samples {
		fmt.Printf("%d %d\n", sample.Load, sample.Elapsed.Milliseconds())
	}

	return nil
}
