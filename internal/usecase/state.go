package usecase

import (
	"sync"

	"gestao_plataformas/internal/domain/entities"
)

// State is the application-owned in-memory copy of the six collections plus
// the identity of the current session.
//
// opMu serializes mutating operations end to end (including the backend
// call). mu only guards the data, so readers observe optimistic changes while
// a backend call is still in flight.
type State struct {
	opMu sync.Mutex

	mu          sync.RWMutex
	db          entities.Database
	currentUser *entities.User
}

func NewState() *State {
	s := &State{}
	s.db.Normalize()
	return s
}

// Snapshot returns a deep copy of every collection.
func (s *State) Snapshot() entities.Database {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Clone()
}

// Hydrate replaces the whole content, used once after FetchAll.
func (s *State) Hydrate(db entities.Database) {
	cp := db.Clone()
	s.mu.Lock()
	s.db = cp
	s.mu.Unlock()
}

// CurrentUser returns the session identity, if any.
func (s *State) CurrentUser() (entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return entities.User{}, false
	}
	return *s.currentUser, true
}

func (s *State) setCurrentUser(u *entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.currentUser = nil
		return
	}
	cp := *u
	s.currentUser = &cp
}

func (s *State) write(fn func(db *entities.Database)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.db)
}

func (s *State) platforms() []entities.Platform {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Clone().Platforms
}

func (s *State) parts() []entities.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Clone().Parts
}

func (s *State) users() []entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Clone().Users
}
