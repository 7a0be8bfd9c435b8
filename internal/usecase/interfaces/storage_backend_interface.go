package interfaces

import (
	"context"
	"gestao_plataformas/internal/domain/entities"
)

// IStorageBackend is the uniform persistence surface shared by the local (JSON
// file) and remote (DynamoDB) variants. Exactly one variant is active per
// process.
//
//   - Initialize must succeed before any other call; calling it twice is safe.
//   - Add returns the stored record. The remote variant may assign the id, and
//     callers must adopt the returned one.
//   - Update on an unknown id is a silent no-op.
//   - RegisterMaintenance and DeleteMaintenance are all-or-nothing.

type IStorageBackend interface {
	Initialize(ctx context.Context) error
	FetchAll(ctx context.Context) (entities.Database, error)
	Add(ctx context.Context, collection entities.Collection, record entities.Record) (entities.Record, error)
	Update(ctx context.Context, collection entities.Collection, id string, record entities.Record) error
	Delete(ctx context.Context, collection entities.Collection, id string) error
	RegisterMaintenance(ctx context.Context, maintenance entities.Maintenance, exchanges []entities.PartExchanged, currentParts []entities.Part) error
	DeleteMaintenance(ctx context.Context, id string) error
}
