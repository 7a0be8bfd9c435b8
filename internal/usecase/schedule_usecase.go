package usecase

import (
	"context"
	"fmt"
	"strings"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IScheduleUseCase manages planned visits.
//
// Adding or updating a schedule that carries an operational state pushes the
// derived status onto its platform once the schedule itself is persisted.

type IScheduleUseCase interface {
	AddSchedule(ctx context.Context, s entities.Schedule) (entities.Schedule, error)
	UpdateSchedule(ctx context.Context, s entities.Schedule) (entities.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
	ListSchedules(ctx context.Context, status entities.ScheduleStatus) []entities.Schedule
}

type ScheduleUseCase struct {
	state     *State
	backend   interfaces.IStorageBackend
	ids       interfaces.IIDGenerator
	platforms *PlatformUseCase
	log       *zap.Logger
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(state *State, backend interfaces.IStorageBackend, ids interfaces.IIDGenerator, platforms *PlatformUseCase, log *zap.Logger) *ScheduleUseCase {
	return &ScheduleUseCase{state: state, backend: backend, ids: ids, platforms: platforms, log: log}
}

func (u *ScheduleUseCase) AddSchedule(ctx context.Context, s entities.Schedule) (entities.Schedule, error) {
	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		s.ID = u.ids.NewID("S")
	}
	if s.Status == "" {
		s.Status = entities.ScheduleStatusPending
	}

	var stored entities.Record
	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionSchedules},
		apply: func(db *entities.Database) {
			db.Schedules = append(db.Schedules, s)
		},
		persist: func(ctx context.Context) (err error) {
			stored, err = u.backend.Add(ctx, entities.CollectionSchedules, s)
			return err
		},
	})
	if err != nil {
		u.log.Error("add schedule failed", zap.String("schedule_id", s.ID), zap.Error(err))
		return entities.Schedule{}, err
	}
	s = adoptStoredID(u.state, s, stored, schedulesOf)
	u.log.Info("schedule added", zap.String("schedule_id", s.ID), zap.String("platform_id", s.PlatformID))

	if err := u.platforms.syncStatus(ctx, s.PlatformID, s.OperationalState); err != nil {
		return s, fmt.Errorf("%w: %w", ErrPlatformSyncFailed, err)
	}
	return s, nil
}

func (u *ScheduleUseCase) UpdateSchedule(ctx context.Context, s entities.Schedule) (entities.Schedule, error) {
	if strings.TrimSpace(s.ID) == "" {
		return entities.Schedule{}, ErrInvalidID
	}

	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionSchedules},
		apply: func(db *entities.Database) {
			db.Schedules = entities.ReplaceByID(db.Schedules, s)
		},
		persist: func(ctx context.Context) error {
			return u.backend.Update(ctx, entities.CollectionSchedules, s.ID, s)
		},
	})
	if err != nil {
		u.log.Error("update schedule failed", zap.String("schedule_id", s.ID), zap.Error(err))
		return entities.Schedule{}, err
	}
	u.log.Info("schedule updated", zap.String("schedule_id", s.ID), zap.String("status", string(s.Status)))

	if err := u.platforms.syncStatus(ctx, s.PlatformID, s.OperationalState); err != nil {
		return s, fmt.Errorf("%w: %w", ErrPlatformSyncFailed, err)
	}
	return s, nil
}

func (u *ScheduleUseCase) DeleteSchedule(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionSchedules},
		apply: func(db *entities.Database) {
			db.Schedules = entities.RemoveByID(db.Schedules, id)
		},
		persist: func(ctx context.Context) error {
			return u.backend.Delete(ctx, entities.CollectionSchedules, id)
		},
	})
	if err != nil {
		u.log.Error("delete schedule failed, state rolled back", zap.String("schedule_id", id), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrScheduleDeleteFailed, err)
	}

	u.log.Info("schedule deleted", zap.String("schedule_id", id))
	return nil
}

// ListSchedules returns every schedule, or only those in status when given.
func (u *ScheduleUseCase) ListSchedules(_ context.Context, status entities.ScheduleStatus) []entities.Schedule {
	all := u.state.Snapshot().Schedules
	if status == "" {
		return all
	}

	out := make([]entities.Schedule, 0, len(all))
	for _, s := range all {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}

func schedulesOf(db *entities.Database) *[]entities.Schedule { return &db.Schedules }
