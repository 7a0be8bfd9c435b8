package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LocalStorageBackend keeps the whole database as one JSON document on disk.
//
// Every write serializes the full blob and swaps it in with a rename, so the
// file is either the previous or the next version, never a partial one.
type LocalStorageBackend struct {
	mu          sync.Mutex
	path        string
	seed        bool
	ids         interfaces.IIDGenerator
	log         *zap.Logger
	db          entities.Database
	initialized bool
}

var (
	_ interfaces.IStorageBackend = (*LocalStorageBackend)(nil)
	_ interfaces.IAccountStore   = (*LocalStorageBackend)(nil)
)

func NewLocalStorageBackend(path string, seed bool, ids interfaces.IIDGenerator, log *zap.Logger) *LocalStorageBackend {
	return &LocalStorageBackend{path: path, seed: seed, ids: ids, log: log}
}

// Initialize loads the blob, writing the default dataset (or an empty one)
// the first time the file is missing.
func (b *LocalStorageBackend) Initialize(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	raw, err := os.ReadFile(b.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		db := entities.Database{}
		if b.seed {
			db = entities.DefaultDatabase()
		}
		db.Normalize()
		if err := b.save(db); err != nil {
			return err
		}
		b.db = db
		b.log.Info("local storage created", zap.String("path", b.path), zap.Bool("seeded", b.seed))
	case err != nil:
		return fmt.Errorf("read %s: %w", b.path, err)
	default:
		var db entities.Database
		if err := json.Unmarshal(raw, &db); err != nil {
			return fmt.Errorf("decode %s: %w", b.path, err)
		}
		db.Normalize()
		b.db = db
		b.log.Info("local storage loaded", zap.String("path", b.path))
	}

	b.initialized = true
	return nil
}

func (b *LocalStorageBackend) FetchAll(_ context.Context) (entities.Database, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return entities.Database{}, ErrNotInitialized
	}
	return b.db.Clone(), nil
}

func (b *LocalStorageBackend) Add(_ context.Context, collection entities.Collection, record entities.Record) (entities.Record, error) {
	if err := checkCollection(collection, record); err != nil {
		return nil, err
	}
	err := b.mutate(func(db *entities.Database) error {
		return appendRecord(db, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Update replaces the record with the given id. A missing id is a no-op.
func (b *LocalStorageBackend) Update(_ context.Context, collection entities.Collection, id string, record entities.Record) error {
	if err := checkCollection(collection, record); err != nil {
		return err
	}
	return b.mutate(func(db *entities.Database) error {
		return replaceRecord(db, record.WithID(id))
	})
}

func (b *LocalStorageBackend) Delete(_ context.Context, collection entities.Collection, id string) error {
	return b.mutate(func(db *entities.Database) error {
		return removeRecord(db, collection, id)
	})
}

// RegisterMaintenance writes the maintenance, its exchanges and the deducted
// stock of the affected parts in a single file swap.
func (b *LocalStorageBackend) RegisterMaintenance(_ context.Context, m entities.Maintenance, exchanges []entities.PartExchanged, currentParts []entities.Part) error {
	usages := entities.UsagesOf(exchanges)
	affected := entities.AffectedParts(entities.DeductStock(currentParts, usages), usages)

	return b.mutate(func(db *entities.Database) error {
		if err := appendRecord(db, m); err != nil {
			return err
		}
		for _, pe := range exchanges {
			if err := appendRecord(db, pe); err != nil {
				return err
			}
		}
		for _, p := range affected {
			db.Parts = entities.ReplaceByID(db.Parts, p)
		}
		return nil
	})
}

func (b *LocalStorageBackend) DeleteMaintenance(_ context.Context, id string) error {
	return b.mutate(func(db *entities.Database) error {
		db.Maintenances = entities.RemoveByID(db.Maintenances, id)
		kept := db.PartsExchanged[:0]
		for _, pe := range db.PartsExchanged {
			if pe.MaintenanceID != id {
				kept = append(kept, pe)
			}
		}
		db.PartsExchanged = kept
		return nil
	})
}

// CreateAccount stores a new user, rejecting emails already present
// (case-insensitive).
func (b *LocalStorageBackend) CreateAccount(_ context.Context, user entities.User) (entities.User, error) {
	if user.ID == "" {
		user.ID = b.ids.NewID("user")
	}

	err := b.mutate(func(db *entities.Database) error {
		for _, u := range db.Users {
			if strings.EqualFold(u.Email, user.Email) {
				return entities.ErrEmailAlreadyRegistered
			}
		}
		db.Users = append(db.Users, user)
		return nil
	})
	if err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// mutate applies fn to a copy and only adopts it once the file write
// succeeded.
func (b *LocalStorageBackend) mutate(fn func(db *entities.Database) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return ErrNotInitialized
	}

	next := b.db.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := b.save(next); err != nil {
		b.log.Error("local storage write failed", zap.String("path", b.path), zap.Error(err))
		return err
	}
	b.db = next
	return nil
}

func (b *LocalStorageBackend) save(db entities.Database) error {
	if dir := filepath.Dir(b.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encode database: %w", err)
	}

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", b.path, err)
	}
	return nil
}
