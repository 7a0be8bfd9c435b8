package usecase

import (
	"context"
	"fmt"
	"strings"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IPlatformUseCase exposes platform registration and the status projection
// fed by schedules.

type IPlatformUseCase interface {
	AddPlatform(ctx context.Context, p entities.Platform) (entities.Platform, error)
	UpdatePlatform(ctx context.Context, p entities.Platform) (entities.Platform, error)
	DeletePlatform(ctx context.Context, id string) error
	ListPlatforms(ctx context.Context, status entities.PlatformStatus) []entities.Platform
}

type PlatformUseCase struct {
	state   *State
	backend interfaces.IStorageBackend
	ids     interfaces.IIDGenerator
	log     *zap.Logger
}

var _ IPlatformUseCase = (*PlatformUseCase)(nil)

func NewPlatformUseCase(state *State, backend interfaces.IStorageBackend, ids interfaces.IIDGenerator, log *zap.Logger) *PlatformUseCase {
	return &PlatformUseCase{state: state, backend: backend, ids: ids, log: log}
}

func (u *PlatformUseCase) AddPlatform(ctx context.Context, p entities.Platform) (entities.Platform, error) {
	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		p.ID = u.ids.NewID("P")
	}
	if p.Status == "" {
		p.Status = entities.PlatformStatusOperational
	}

	var stored entities.Record
	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionPlatforms},
		apply: func(db *entities.Database) {
			db.Platforms = append(db.Platforms, p)
		},
		persist: func(ctx context.Context) (err error) {
			stored, err = u.backend.Add(ctx, entities.CollectionPlatforms, p)
			return err
		},
	})
	if err != nil {
		u.log.Error("add platform failed", zap.String("platform_id", p.ID), zap.Error(err))
		return entities.Platform{}, err
	}

	p = adoptStoredID(u.state, p, stored, platformsOf)
	u.log.Info("platform added", zap.String("platform_id", p.ID))
	return p, nil
}

func (u *PlatformUseCase) UpdatePlatform(ctx context.Context, p entities.Platform) (entities.Platform, error) {
	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()
	return u.updatePlatform(ctx, p)
}

// updatePlatform replaces the platform record. Callers must hold opMu.
func (u *PlatformUseCase) updatePlatform(ctx context.Context, p entities.Platform) (entities.Platform, error) {
	if strings.TrimSpace(p.ID) == "" {
		return entities.Platform{}, ErrInvalidID
	}

	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionPlatforms},
		apply: func(db *entities.Database) {
			db.Platforms = entities.ReplaceByID(db.Platforms, p)
		},
		persist: func(ctx context.Context) error {
			return u.backend.Update(ctx, entities.CollectionPlatforms, p.ID, p)
		},
	})
	if err != nil {
		u.log.Error("update platform failed", zap.String("platform_id", p.ID), zap.Error(err))
		return entities.Platform{}, err
	}

	u.log.Info("platform updated", zap.String("platform_id", p.ID), zap.String("status", string(p.Status)))
	return p, nil
}

func (u *PlatformUseCase) DeletePlatform(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionPlatforms},
		apply: func(db *entities.Database) {
			db.Platforms = entities.RemoveByID(db.Platforms, id)
		},
		persist: func(ctx context.Context) error {
			return u.backend.Delete(ctx, entities.CollectionPlatforms, id)
		},
	})
	if err != nil {
		u.log.Error("delete platform failed, state rolled back", zap.String("platform_id", id), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPlatformDeleteFailed, err)
	}

	u.log.Info("platform deleted", zap.String("platform_id", id))
	return nil
}

// ListPlatforms returns every platform, or only those in status when given.
func (u *PlatformUseCase) ListPlatforms(_ context.Context, status entities.PlatformStatus) []entities.Platform {
	all := u.state.platforms()
	if status == "" {
		return all
	}

	out := make([]entities.Platform, 0, len(all))
	for _, p := range all {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// syncStatus projects a schedule's operational state onto its platform.
// Unknown platforms and unchanged statuses are a no-op. Callers must hold opMu.
func (u *PlatformUseCase) syncStatus(ctx context.Context, platformID string, state entities.OperationalState) error {
	if state == "" {
		return nil
	}

	platform, ok := entities.FindByID(u.state.platforms(), platformID)
	if !ok {
		u.log.Warn("status sync skipped, platform not found", zap.String("platform_id", platformID))
		return nil
	}

	target := state.PlatformStatus()
	if platform.Status == target {
		return nil
	}

	platform.Status = target
	_, err := u.updatePlatform(ctx, platform)
	return err
}

func platformsOf(db *entities.Database) *[]entities.Platform { return &db.Platforms }
