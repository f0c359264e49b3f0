package store

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"snakes-ladders/internal/room"
)

// MemoryStore keeps rooms in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*room.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*room.Room{},
	}
}

func (m *MemoryStore) GetRoom(code string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

// LoadOrStore returns the room stored under code, or stores and returns the
// one built by create. loaded reports whether the room already existed.
func (m *MemoryStore) LoadOrStore(code string, create func() *room.Room) (r *room.Room, loaded bool) {
	if r, ok := m.GetRoom(code); ok {
		return r, true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r, true
	}
	r = create()
	m.rooms[code] = r
	return r, false
}

func (m *MemoryStore) DeleteRoomIf(code string, pred func(*room.Room) bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[code]
	if !ok || !pred(r) {
		return false
	}
	delete(m.rooms, code)
	return true
}

// Rooms returns every room ordered by code.
func (m *MemoryStore) Rooms() []*room.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.SortedFunc(maps.Values(m.rooms), func(a, b *room.Room) int {
		return strings.Compare(a.Code, b.Code)
	})
}
