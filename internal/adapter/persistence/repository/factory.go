package repository

import (
	"context"

	"gestao_plataformas/internal/config"
	"gestao_plataformas/internal/infrastructure/database"
	"gestao_plataformas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Backend is what the application needs from a storage variant: the generic
// persistence surface plus native account creation.
type Backend interface {
	interfaces.IStorageBackend
	interfaces.IAccountStore
}

// NewStorageBackend returns the variant selected by USE_REMOTE_STORAGE. It
// does not call Initialize.
func NewStorageBackend(ctx context.Context, cfg config.Config, ids interfaces.IIDGenerator, log *zap.Logger) (Backend, error) {
	if !cfg.UseRemoteStorage {
		log.Info("using local storage", zap.String("path", cfg.Local.Path))
		return NewLocalStorageBackend(cfg.Local.Path, cfg.SeedDefaultData, ids, log), nil
	}

	client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	log.Info("using dynamodb storage",
		zap.String("region", cfg.DynamoDB.Region),
		zap.String("endpoint", cfg.DynamoDB.Endpoint),
		zap.String("table_prefix", cfg.DynamoDB.TablePrefix),
	)
	return NewDynamoStorageBackend(client, DynamoOptions{
		TablePrefix:      cfg.DynamoDB.TablePrefix,
		Seed:             cfg.SeedDefaultData,
		TableWaitTimeout: cfg.DynamoDB.TableWaitTimeout,
	}, log), nil
}
