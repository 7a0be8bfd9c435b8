package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MaintenanceDetail is a maintenance together with the parts it consumed.
type MaintenanceDetail struct {
	entities.Maintenance
	PartsExchanged []entities.PartExchanged
}

// IMaintenanceUseCase registers executed maintenances.
//
//   - RegisterMaintenance records the maintenance, one exchange per used part
//     and the decremented stock as a single unit.
//   - UpdateMaintenance only replaces maintenance fields; stock is not
//     reconciled against a different part usage.
//   - DeleteMaintenance cascades to the maintenance's exchanges.

type IMaintenanceUseCase interface {
	RegisterMaintenance(ctx context.Context, maintenance entities.Maintenance, used []entities.PartUsage) (MaintenanceDetail, error)
	UpdateMaintenance(ctx context.Context, maintenance entities.Maintenance) (entities.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id string) error
	ListMaintenances(ctx context.Context, platformID string) []MaintenanceDetail
}

type MaintenanceUseCase struct {
	state   *State
	backend interfaces.IStorageBackend
	ids     interfaces.IIDGenerator
	log     *zap.Logger
}

var _ IMaintenanceUseCase = (*MaintenanceUseCase)(nil)

func NewMaintenanceUseCase(state *State, backend interfaces.IStorageBackend, ids interfaces.IIDGenerator, log *zap.Logger) *MaintenanceUseCase {
	return &MaintenanceUseCase{state: state, backend: backend, ids: ids, log: log}
}

func (u *MaintenanceUseCase) RegisterMaintenance(ctx context.Context, m entities.Maintenance, used []entities.PartUsage) (MaintenanceDetail, error) {
	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		m.ID = u.ids.NewID("M")
	}

	exchanges := make([]entities.PartExchanged, 0, len(used))
	for _, p := range used {
		exchanges = append(exchanges, entities.PartExchanged{
			ID:            u.ids.NewID("PE"),
			MaintenanceID: m.ID,
			PartID:        p.PartID,
			Quantity:      p.Quantity,
			Observation:   entities.DefaultExchangeObservation,
		})
	}

	currentParts := u.state.parts()

	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{
			entities.CollectionMaintenances,
			entities.CollectionPartsExchanged,
			entities.CollectionParts,
		},
		apply: func(db *entities.Database) {
			db.Maintenances = append(db.Maintenances, m)
			db.PartsExchanged = append(db.PartsExchanged, exchanges...)
			db.Parts = entities.DeductStock(db.Parts, used)
		},
		persist: func(ctx context.Context) error {
			return u.backend.RegisterMaintenance(ctx, m, exchanges, currentParts)
		},
	})
	if err != nil {
		u.log.Error("register maintenance failed, state rolled back",
			zap.String("maintenance_id", m.ID), zap.Int("parts_used", len(used)), zap.Error(err))
		return MaintenanceDetail{}, err
	}

	u.log.Info("maintenance registered",
		zap.String("maintenance_id", m.ID), zap.String("platform_id", m.PlatformID), zap.Int("parts_used", len(exchanges)))
	return MaintenanceDetail{Maintenance: m, PartsExchanged: exchanges}, nil
}

// TODO: reconcile part stock when the part usage of an existing maintenance
// changes, once the expected semantics (delta vs manual correction) are agreed.
func (u *MaintenanceUseCase) UpdateMaintenance(ctx context.Context, m entities.Maintenance) (entities.Maintenance, error) {
	if strings.TrimSpace(m.ID) == "" {
		return entities.Maintenance{}, ErrInvalidID
	}

	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionMaintenances},
		apply: func(db *entities.Database) {
			db.Maintenances = entities.ReplaceByID(db.Maintenances, m)
		},
		persist: func(ctx context.Context) error {
			return u.backend.Update(ctx, entities.CollectionMaintenances, m.ID, m)
		},
	})
	if err != nil {
		u.log.Error("update maintenance failed", zap.String("maintenance_id", m.ID), zap.Error(err))
		return entities.Maintenance{}, err
	}

	u.log.Info("maintenance updated", zap.String("maintenance_id", m.ID))
	return m, nil
}

func (u *MaintenanceUseCase) DeleteMaintenance(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionMaintenances, entities.CollectionPartsExchanged},
		apply: func(db *entities.Database) {
			db.Maintenances = entities.RemoveByID(db.Maintenances, id)
			db.PartsExchanged = withoutMaintenance(db.PartsExchanged, id)
		},
		persist: func(ctx context.Context) error {
			return u.backend.DeleteMaintenance(ctx, id)
		},
	})
	if err != nil {
		u.log.Error("delete maintenance failed, state rolled back", zap.String("maintenance_id", id), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrMaintenanceDeleteFailed, err)
	}

	u.log.Info("maintenance deleted", zap.String("maintenance_id", id))
	return nil
}

// ListMaintenances returns maintenances with their exchanges. With a
// platformID it becomes the platform history, newest execution first.
func (u *MaintenanceUseCase) ListMaintenances(_ context.Context, platformID string) []MaintenanceDetail {
	db := u.state.Snapshot()

	byMaintenance := make(map[string][]entities.PartExchanged)
	for _, pe := range db.PartsExchanged {
		byMaintenance[pe.MaintenanceID] = append(byMaintenance[pe.MaintenanceID], pe)
	}

	out := make([]MaintenanceDetail, 0, len(db.Maintenances))
	for _, m := range db.Maintenances {
		if platformID != "" && m.PlatformID != platformID {
			continue
		}
		exchanges := byMaintenance[m.ID]
		if exchanges == nil {
			exchanges = []entities.PartExchanged{}
		}
		out = append(out, MaintenanceDetail{Maintenance: m, PartsExchanged: exchanges})
	}

	if platformID != "" {
		slices.SortStableFunc(out, func(a, b MaintenanceDetail) int {
			return strings.Compare(b.ExecutionDate, a.ExecutionDate)
		})
	}
	return out
}

func withoutMaintenance(items []entities.PartExchanged, maintenanceID string) []entities.PartExchanged {
	out := make([]entities.PartExchanged, 0, len(items))
	for _, pe := range items {
		if pe.MaintenanceID != maintenanceID {
			out = append(out, pe)
		}
	}
	return out
}
