package httpapi

import (
	"sync"

	"github.com/google/uuid"

	"github.com/gridrace/gridrace/grid"
	"github.com/gridrace/gridrace/race"
)

// MazeStore keeps generated mazes in memory, keyed by UUID.
type MazeStore struct {
	mu    sync.RWMutex
	mazes map[uuid.UUID]*grid.Grid
}

// NewMazeStore returns an empty maze store.
func NewMazeStore() *MazeStore {
	return &MazeStore{mazes: make(map[uuid.UUID]*grid.Grid)}
}

// Put stores a maze under a fresh id.
func (s *MazeStore) Put(g *grid.Grid) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.mazes[id] = g
	s.mu.Unlock()

	return id
}

// Get returns the maze stored under id, if any.
func (s *MazeStore) Get(id uuid.UUID) (*grid.Grid, bool) {
	s.mu.RLock()
	g, ok := s.mazes[id]
	s.mu.RUnlock()

	return g, ok
}

// Session is one live race. A Race is single-owner, so every session
// serializes access behind its own mutex.
type Session struct {
	mu     sync.Mutex
	id     uuid.UUID
	mazeID uuid.UUID
	race   *race.Race
}

// Advance ticks the race. Negative steps run it to completion; the batch
// is otherwise capped so one request cannot hold the lock indefinitely.
func (s *Session) Advance(steps int) {
	const maxBatch = 10_000

	s.mu.Lock()
	defer s.mu.Unlock()

	if steps < 0 {
		s.race.RunToCompletion()

		return
	}
	if steps == 0 {
		steps = 1
	}
	if steps > maxBatch {
		steps = maxBatch
	}
	for i := 0; i < steps && !s.race.Done(); i++ {
		s.race.Tick()
	}
}

// Snapshot reads the current race state without advancing it.
func (s *Session) Snapshot() RaceResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	left, right := s.race.Status()
	resp := RaceResponse{
		ID:     s.id.String(),
		MazeID: s.mazeID.String(),
		Left:   toSideDTO(left),
		Right:  toSideDTO(right),
		Done:   s.race.Done(),
	}
	if winner, ok := s.race.Winner(); ok {
		resp.Winner = winner
	}

	return resp
}

// RaceStore keeps live race sessions in memory, keyed by UUID.
type RaceStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRaceStore returns an empty race store.
func NewRaceStore() *RaceStore {
	return &RaceStore{sessions: make(map[uuid.UUID]*Session)}
}

// Put stores a new session for the given maze and race.
func (s *RaceStore) Put(mazeID uuid.UUID, r *race.Race) *Session {
	session := &Session{id: uuid.New(), mazeID: mazeID, race: r}
	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	return session
}

// Get returns the session stored under id, if any.
func (s *RaceStore) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	return session, ok
}
