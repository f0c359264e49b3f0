package ws

import "snakes-ladders/internal/room"

// RoomManager is the part of the room registry the hub drives.
type RoomManager interface {
	Join(code, connID, name string) (*room.Room, room.JoinResult, error)
	FindByConnection(connID string) (*room.Room, bool)
	DeleteIfEmpty(code string) bool
}
