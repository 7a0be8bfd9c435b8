package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/infrastructure/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLocal(t *testing.T, seed bool) (*LocalStorageBackend, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "db.json")
	b := NewLocalStorageBackend(path, seed, idgen.New(), zap.NewNop())
	require.NoError(t, b.Initialize(context.Background()))
	return b, path
}

func readBlob(t *testing.T, path string) entities.Database {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var db entities.Database
	require.NoError(t, json.Unmarshal(raw, &db))
	return db
}

func TestLocalStorageBackend_Initialize(t *testing.T) {
	t.Run("seeds a missing file", func(t *testing.T) {
		b, path := newLocal(t, true)

		db, err := b.FetchAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultDatabase(), db)
		assert.Equal(t, entities.DefaultDatabase(), readBlob(t, path))
	})

	t.Run("empty without seed", func(t *testing.T) {
		b, _ := newLocal(t, false)

		db, err := b.FetchAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, db.Platforms)
		assert.NotNil(t, db.Platforms)
	})

	t.Run("loads an existing file and fills missing collections", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"platforms":[{"id":"P1","name":"X","status":"Ativa"}]}`), 0o644))

		b := NewLocalStorageBackend(path, true, idgen.New(), zap.NewNop())
		require.NoError(t, b.Initialize(context.Background()))
		require.NoError(t, b.Initialize(context.Background()))

		db, err := b.FetchAll(context.Background())
		require.NoError(t, err)
		require.Len(t, db.Platforms, 1)
		assert.Equal(t, "P1", db.Platforms[0].ID)
		assert.NotNil(t, db.Parts)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

		b := NewLocalStorageBackend(path, true, idgen.New(), zap.NewNop())
		assert.Error(t, b.Initialize(context.Background()))
	})

	t.Run("calls before initialize fail", func(t *testing.T) {
		b := NewLocalStorageBackend(filepath.Join(t.TempDir(), "db.json"), true, idgen.New(), zap.NewNop())
		_, err := b.FetchAll(context.Background())
		assert.ErrorIs(t, err, ErrNotInitialized)
		assert.ErrorIs(t, b.Delete(context.Background(), entities.CollectionParts, "PT001"), ErrNotInitialized)
	})
}

func TestLocalStorageBackend_CRUD(t *testing.T) {
	ctx := context.Background()
	b, path := newLocal(t, false)

	p := entities.Platform{ID: "P1", Name: "Alpha", Status: entities.PlatformStatusOperational}
	stored, err := b.Add(ctx, entities.CollectionPlatforms, p)
	require.NoError(t, err)
	assert.Equal(t, p, stored)

	p.Status = entities.PlatformStatusNonOperational
	require.NoError(t, b.Update(ctx, entities.CollectionPlatforms, "P1", p))
	require.NoError(t, b.Update(ctx, entities.CollectionPlatforms, "P404", entities.Platform{Name: "ghost"}))

	onDisk := readBlob(t, path)
	assert.Equal(t, []entities.Platform{p}, onDisk.Platforms)

	require.NoError(t, b.Delete(ctx, entities.CollectionPlatforms, "P1"))
	assert.Empty(t, readBlob(t, path).Platforms)

	_, err = b.Add(ctx, entities.CollectionParts, p)
	assert.ErrorIs(t, err, ErrCollectionMismatch)
}

func TestLocalStorageBackend_RegisterAndDeleteMaintenance(t *testing.T) {
	ctx := context.Background()
	b, path := newLocal(t, true)

	parts := entities.DefaultDatabase().Parts
	m := entities.Maintenance{ID: "M100", PlatformID: "P001", ExecutionDate: "2025-01-01", Cost: 10}
	exchanges := []entities.PartExchanged{
		{ID: "PE100", MaintenanceID: "M100", PartID: "PT001", Quantity: 5},
		{ID: "PE101", MaintenanceID: "M100", PartID: "PT003", Quantity: 9},
	}

	require.NoError(t, b.RegisterMaintenance(ctx, m, exchanges, parts))

	db := readBlob(t, path)
	got, ok := entities.FindByID(db.Parts, "PT001")
	require.True(t, ok)
	assert.Equal(t, 45, got.Stock)
	got, _ = entities.FindByID(db.Parts, "PT003")
	assert.Equal(t, 0, got.Stock)
	got, _ = entities.FindByID(db.Parts, "PT005")
	assert.Equal(t, 100, got.Stock)
	assert.Len(t, db.Maintenances, 6)
	assert.Len(t, db.PartsExchanged, 6)

	require.NoError(t, b.DeleteMaintenance(ctx, "M002"))
	db = readBlob(t, path)
	_, ok = entities.FindByID(db.Maintenances, "M002")
	assert.False(t, ok)
	for _, pe := range db.PartsExchanged {
		assert.NotEqual(t, "M002", pe.MaintenanceID)
	}
	assert.Len(t, db.PartsExchanged, 4)
}

func TestLocalStorageBackend_FailedWriteKeepsPreviousContent(t *testing.T) {
	ctx := context.Background()
	b, path := newLocal(t, true)

	// a directory squatting on the temp file name makes the write fail
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	err := b.Delete(ctx, entities.CollectionPlatforms, "P001")
	require.Error(t, err)

	db, err := b.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultDatabase().Platforms, db.Platforms)
	assert.Equal(t, entities.DefaultDatabase().Platforms, readBlob(t, path).Platforms)
}

func TestLocalStorageBackend_CreateAccount(t *testing.T) {
	ctx := context.Background()
	b, _ := newLocal(t, true)

	u, err := b.CreateAccount(ctx, entities.User{Name: "Nova", Email: "nova@tec.com", Password: "pw", Role: entities.UserRoleTechnician})
	require.NoError(t, err)
	assert.Regexp(t, `^user-[0-9a-f-]{36}$`, u.ID)

	_, err = b.CreateAccount(ctx, entities.User{Email: "ADMIN@admin.com"})
	assert.ErrorIs(t, err, entities.ErrEmailAlreadyRegistered)

	db, err := b.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, db.Users, 3)
}

func TestLocalStorageBackend_RejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("add", func(t *testing.T) {
		b, path := newLocal(t, true)

		_, err := b.Add(ctx, entities.CollectionPlatforms, entities.Platform{ID: "P001", Name: "Copy"})
		require.ErrorIs(t, err, ErrDuplicateID)
		assert.Equal(t, entities.DefaultDatabase().Platforms, readBlob(t, path).Platforms)
	})

	t.Run("register maintenance with a taken maintenance id", func(t *testing.T) {
		b, path := newLocal(t, true)

		err := b.RegisterMaintenance(ctx,
			entities.Maintenance{ID: "M001"},
			[]entities.PartExchanged{{ID: "PE900", MaintenanceID: "M001", PartID: "PT001", Quantity: 1}},
			entities.DefaultDatabase().Parts)
		require.ErrorIs(t, err, ErrDuplicateID)
		assert.Equal(t, entities.DefaultDatabase(), readBlob(t, path))
	})

	t.Run("register maintenance with a taken exchange id", func(t *testing.T) {
		b, path := newLocal(t, true)

		err := b.RegisterMaintenance(ctx,
			entities.Maintenance{ID: "M900"},
			[]entities.PartExchanged{{ID: "PE001", MaintenanceID: "M900", PartID: "PT001", Quantity: 1}},
			entities.DefaultDatabase().Parts)
		require.ErrorIs(t, err, ErrDuplicateID)
		assert.Equal(t, entities.DefaultDatabase(), readBlob(t, path))
	})
}
