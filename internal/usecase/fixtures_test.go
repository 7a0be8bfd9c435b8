package usecase

import (
	"fmt"
	"sync"

	"gestao_plataformas/internal/domain/entities"

	"go.uber.org/zap"
)

// seqIDs hands out P-1, P-2, ... so assertions can name generated ids.
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

func newTestState(db entities.Database) *State {
	s := NewState()
	db.Normalize()
	s.Hydrate(db)
	return s
}

var nopLogger = zap.NewNop()

func threePlatforms() []entities.Platform {
	return []entities.Platform{
		{ID: "P1", Name: "Alpha", Code: "A-1", Status: entities.PlatformStatusOperational},
		{ID: "P2", Name: "Bravo", Code: "B-1", Status: entities.PlatformStatusOperational},
		{ID: "P3", Name: "Charlie", Code: "C-1", Status: entities.PlatformStatusNonOperational},
	}
}
