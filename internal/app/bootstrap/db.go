// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	vieweventstore "github.com/dalemusser/thirtydays/internal/app/store/viewevents"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection when view logging needs it.
// With view_log set to "log" or "off" the app runs without any database,
// so this returns empty deps and skips the connection entirely.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if !appCfg.ViewLogWantsDB() {
		logger.Info("view logging does not use a database; skipping MongoDB connection",
			zap.String("view_log", appCfg.ViewLog))
		return DBDeps{}, nil
	}

	opts := options.Client().ApplyURI(appCfg.MongoURI)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("MongoDB ping failed", zap.Error(err))
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the view-event store relies on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	store := vieweventstore.New(deps.MongoDatabase)
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Error("view-event index creation failed", zap.Error(err))
		return err
	}
	return nil
}
