package usecase

import (
	"context"
	"strings"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IPartUseCase manages the spare parts inventory.
//
// Stock is only deducted by RegisterMaintenance; UpdatePart is the manual
// correction path.

type IPartUseCase interface {
	AddPart(ctx context.Context, p entities.Part) (entities.Part, error)
	UpdatePart(ctx context.Context, p entities.Part) (entities.Part, error)
	ListParts(ctx context.Context, lowStockOnly bool) []entities.Part
}

type PartUseCase struct {
	state   *State
	backend interfaces.IStorageBackend
	ids     interfaces.IIDGenerator
	log     *zap.Logger
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(state *State, backend interfaces.IStorageBackend, ids interfaces.IIDGenerator, log *zap.Logger) *PartUseCase {
	return &PartUseCase{state: state, backend: backend, ids: ids, log: log}
}

func (u *PartUseCase) AddPart(ctx context.Context, p entities.Part) (entities.Part, error) {
	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		p.ID = u.ids.NewID("PT")
	}

	var stored entities.Record
	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionParts},
		apply: func(db *entities.Database) {
			db.Parts = append(db.Parts, p)
		},
		persist: func(ctx context.Context) (err error) {
			stored, err = u.backend.Add(ctx, entities.CollectionParts, p)
			return err
		},
	})
	if err != nil {
		u.log.Error("add part failed", zap.String("part_id", p.ID), zap.Error(err))
		return entities.Part{}, err
	}

	p = adoptStoredID(u.state, p, stored, partsOf)
	u.log.Info("part added", zap.String("part_id", p.ID), zap.Int("stock", p.Stock))
	return p, nil
}

func (u *PartUseCase) UpdatePart(ctx context.Context, p entities.Part) (entities.Part, error) {
	if strings.TrimSpace(p.ID) == "" {
		return entities.Part{}, ErrInvalidID
	}

	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionParts},
		apply: func(db *entities.Database) {
			db.Parts = entities.ReplaceByID(db.Parts, p)
		},
		persist: func(ctx context.Context) error {
			return u.backend.Update(ctx, entities.CollectionParts, p.ID, p)
		},
	})
	if err != nil {
		u.log.Error("update part failed", zap.String("part_id", p.ID), zap.Error(err))
		return entities.Part{}, err
	}

	u.log.Info("part updated", zap.String("part_id", p.ID), zap.Int("stock", p.Stock))
	return p, nil
}

// ListParts returns the inventory; lowStockOnly keeps parts at or below
// their reorder threshold.
func (u *PartUseCase) ListParts(_ context.Context, lowStockOnly bool) []entities.Part {
	all := u.state.parts()
	if !lowStockOnly {
		return all
	}

	out := make([]entities.Part, 0, len(all))
	for _, p := range all {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

func partsOf(db *entities.Database) *[]entities.Part { return &db.Parts }
