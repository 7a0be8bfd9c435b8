package usecase

import (
	"context"

	"gestao_plataformas/internal/domain/entities"
)

// mutation is one optimistic change: apply runs against the in-memory state
// before persist is attempted; touches lists what must be restored when
// persist fails.
type mutation struct {
	touches []entities.Collection
	apply   func(db *entities.Database)
	persist func(ctx context.Context) error
}

// commit applies m, persists it, and on failure restores the touched
// collections to their pre-mutation content before returning the error.
//
// Callers must hold opMu.
func (s *State) commit(ctx context.Context, m mutation) error {
	saved := s.Snapshot()

	s.write(m.apply)

	if err := m.persist(ctx); err != nil {
		s.write(func(db *entities.Database) {
			db.CopyCollections(saved, m.touches...)
		})
		return err
	}
	return nil
}

// adoptStoredID re-keys rec in memory when the backend handed back a
// different identifier than the one it was given.
func adoptStoredID[T entities.Record](s *State, rec T, stored entities.Record, slice func(db *entities.Database) *[]T) T {
	if stored == nil || stored.GetID() == "" || stored.GetID() == rec.GetID() {
		return rec
	}
	oldID, newID := rec.GetID(), stored.GetID()
	s.write(func(db *entities.Database) {
		items := slice(db)
		*items = entities.RenameID(*items, oldID, newID)
	})
	return rec.WithID(newID).(T)
}
