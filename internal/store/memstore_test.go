package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"snakes-ladders/internal/config"
	"snakes-ladders/internal/room"
)

func newRoom(code string) func() *room.Room {
	return func() *room.Room {
		return room.New(code, config.DefaultRules(), rand.New(rand.NewSource(1)))
	}
}

func TestLoadOrStore(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.GetRoom("A")
	require.False(t, ok)

	first, loaded := s.LoadOrStore("A", newRoom("A"))
	require.False(t, loaded)

	calls := 0
	second, loaded := s.LoadOrStore("A", func() *room.Room {
		calls++
		return newRoom("A")()
	})
	require.True(t, loaded)
	require.Same(t, first, second)
	require.Zero(t, calls)

	got, ok := s.GetRoom("A")
	require.True(t, ok)
	require.Same(t, first, got)
}

func TestDeleteRoomIf(t *testing.T) {
	s := NewMemoryStore()
	s.LoadOrStore("A", newRoom("A"))

	require.False(t, s.DeleteRoomIf("missing", func(*room.Room) bool { return true }))
	require.False(t, s.DeleteRoomIf("A", func(*room.Room) bool { return false }))
	_, ok := s.GetRoom("A")
	require.True(t, ok)

	require.True(t, s.DeleteRoomIf("A", func(*room.Room) bool { return true }))
	_, ok = s.GetRoom("A")
	require.False(t, ok)
}

func TestRoomsSorted(t *testing.T) {
	s := NewMemoryStore()
	for _, code := range []string{"C", "A", "B"} {
		s.LoadOrStore(code, newRoom(code))
	}

	var codes []string
	for _, r := range s.Rooms() {
		codes = append(codes, r.Code)
	}
	require.Equal(t, []string{"A", "B", "C"}, codes)
}
