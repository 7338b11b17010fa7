// Package docstore provides the Firestore-backed implementation of the
// domain's DocumentStore interface.
package docstore

import (
	"context"
	"log/slog"

	"clipcast/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the Firestore client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Firestore client through the Firebase app and ties
// its shutdown to the fx lifecycle.
func NewClient(lc fx.Lifecycle, params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil {
		return nil, errors.New("firestore config is required")
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
