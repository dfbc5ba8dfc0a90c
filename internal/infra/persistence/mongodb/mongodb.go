// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver. One repository per collection;
// single-document updates are the only atomicity relied upon.
package mongodb

import (
	"context"
	"log/slog"

	"medistore/config"
	"medistore/internal/domain/lifecycle"
	"medistore/internal/errors"
	"medistore/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and wires connect/disconnect into
// the application lifecycle.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	opts := options.Client().ApplyURI(params.Config.Mongo.URI)
	if params.Config.Mongo.ConnectTimeout > 0 {
		opts.SetConnectTimeout(params.Config.Mongo.ConnectTimeout)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, client.Database(params.Config.Mongo.Database)); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}

// ensureIndexes creates the indexes the repositories depend on. CreateOne is
// idempotent when the index already exists with the same definition.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(model.UserModel{}.CollectionName()).
		Indexes().CreateOne(ctx, userEmailIndex())

	return errors.Wrap(err, "failed to create user email index")
}

// userEmailIndex enforces the email identity key at the collection level, so
// inserting a second user with the same email fails with a duplicate-key
// error even under concurrent registrations.
func userEmailIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}
