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

const recentMaintenancesLimit = 5

// DashboardSummary is the overview rendered on the home screen.
type DashboardSummary struct {
	TotalPlatforms          int
	OperationalPlatforms    int
	NonOperationalPlatforms int
	PendingSchedules        int
	DelayedSchedules        int
	LowStockParts           int
	TotalMaintenances       int
	TotalMaintenanceCost    float64
	RecentMaintenances      []entities.Maintenance
}

// IDashboardUseCase loads the state at startup and serves read-only views of
// it.

type IDashboardUseCase interface {
	Bootstrap(ctx context.Context) error
	Snapshot(ctx context.Context) entities.Database
	Summary(ctx context.Context) DashboardSummary
}

type DashboardUseCase struct {
	state   *State
	backend interfaces.IStorageBackend
	log     *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(state *State, backend interfaces.IStorageBackend, log *zap.Logger) *DashboardUseCase {
	return &DashboardUseCase{state: state, backend: backend, log: log}
}

// Bootstrap initializes the backend and hydrates State with its full
// content. The process must not serve requests if it fails.
func (u *DashboardUseCase) Bootstrap(ctx context.Context) error {
	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	if err := u.backend.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}

	db, err := u.backend.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch all: %w", err)
	}
	db.Normalize()
	u.state.Hydrate(db)

	u.log.Info("state loaded",
		zap.Int("users", len(db.Users)),
		zap.Int("platforms", len(db.Platforms)),
		zap.Int("parts", len(db.Parts)),
		zap.Int("maintenances", len(db.Maintenances)),
		zap.Int("schedules", len(db.Schedules)),
		zap.Int("parts_exchanged", len(db.PartsExchanged)),
	)
	return nil
}

func (u *DashboardUseCase) Snapshot(_ context.Context) entities.Database {
	return u.state.Snapshot()
}

func (u *DashboardUseCase) Summary(_ context.Context) DashboardSummary {
	db := u.state.Snapshot()

	s := DashboardSummary{
		TotalPlatforms:    len(db.Platforms),
		TotalMaintenances: len(db.Maintenances),
	}
	for _, p := range db.Platforms {
		if p.Status == entities.PlatformStatusOperational {
			s.OperationalPlatforms++
		} else {
			s.NonOperationalPlatforms++
		}
	}
	for _, sc := range db.Schedules {
		switch sc.Status {
		case entities.ScheduleStatusPending:
			s.PendingSchedules++
		case entities.ScheduleStatusDelayed:
			s.DelayedSchedules++
		}
	}
	for _, p := range db.Parts {
		if p.LowStock() {
			s.LowStockParts++
		}
	}
	for _, m := range db.Maintenances {
		s.TotalMaintenanceCost += m.Cost
	}

	recent := slices.Clone(db.Maintenances)
	slices.SortStableFunc(recent, func(a, b entities.Maintenance) int {
		return strings.Compare(b.ExecutionDate, a.ExecutionDate)
	})
	if len(recent) > recentMaintenancesLimit {
		recent = recent[:recentMaintenancesLimit]
	}
	s.RecentMaintenances = recent

	return s
}
