package room

import (
	"errors"
	"fmt"
	"time"

	"snakes-ladders/internal/config"
	"snakes-ladders/internal/game"
	"snakes-ladders/internal/random"
)

// Store keeps rooms by code. DeleteRoomIf evaluates pred while holding the
// store's write lock, so a room it removes cannot be handed out concurrently.
type Store interface {
	GetRoom(code string) (*Room, bool)
	LoadOrStore(code string, create func() *Room) (*Room, bool)
	DeleteRoomIf(code string, pred func(*Room) bool) bool
	Rooms() []*Room
}

const (
	codeLength   = 6
	codeAttempts = 16
	joinAttempts = 3
)

// Manager is the room registry.
type Manager struct {
	store Store
	rules config.Rules
	seeds *random.Seeder
}

func NewManager(s Store, rules config.Rules, seeds *random.Seeder) *Manager {
	return &Manager{store: s, rules: rules, seeds: seeds}
}

func (m *Manager) Rules() config.Rules { return m.rules }

func (m *Manager) newRoom(code string) func() *Room {
	return func() *Room {
		return New(code, m.rules, m.seeds.NewRand())
	}
}

// GetOrCreate returns the room for code, creating it if needed. Concurrent
// callers with the same code all receive the same room.
func (m *Manager) GetOrCreate(code string) *Room {
	r, _ := m.store.LoadOrStore(code, m.newRoom(code))
	return r
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// CreateRoom registers an empty room under a fresh random code.
func (m *Manager) CreateRoom() (*Room, error) {
	rng := m.seeds.NewRand()
	for range codeAttempts {
		code := randCode(rng, codeLength)
		if r, loaded := m.store.LoadOrStore(code, m.newRoom(code)); !loaded {
			return r, nil
		}
	}
	return nil, fmt.Errorf("no free room code after %d attempts", codeAttempts)
}

// Join puts connID into the room for code. A room that got closed between
// lookup and join has already left the store, so the next lookup yields a
// fresh one.
func (m *Manager) Join(code, connID, name string) (*Room, JoinResult, error) {
	var err error
	for range joinAttempts {
		r := m.GetOrCreate(code)
		var res JoinResult
		res, err = r.Join(connID, name)
		if errors.Is(err, ErrRoomClosed) {
			continue
		}
		return r, res, err
	}
	return nil, JoinResult{}, err
}

// FindByConnection returns the room holding connID, if any.
func (m *Manager) FindByConnection(connID string) (*Room, bool) {
	for _, r := range m.store.Rooms() {
		if r.HasPlayer(connID) {
			return r, true
		}
	}
	return nil, false
}

// DeleteIfEmpty drops the room when nobody is left in it. A removed room is
// closed and refuses further joins.
func (m *Manager) DeleteIfEmpty(code string) bool {
	return m.store.DeleteRoomIf(code, (*Room).closeIfEmpty)
}

// PruneEmpty removes empty rooms older than maxAge and reports how many went.
func (m *Manager) PruneEmpty(maxAge time.Duration) int {
	n := 0
	for _, r := range m.store.Rooms() {
		if time.Since(r.CreatedAt) < maxAge {
			continue
		}
		if m.DeleteIfEmpty(r.Code) {
			n++
		}
	}
	return n
}

func (m *Manager) List() []Summary {
	rooms := m.store.Rooms()
	out := make([]Summary, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Summary())
	}
	return out
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(rng game.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}
