package http

import (
	"snakes-ladders/internal/config"
	"snakes-ladders/internal/room"
)

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Rooms  int    `json:"rooms"`
}

// RoomListResponse lists every live room.
type RoomListResponse struct {
	Rooms []room.Summary `json:"rooms"`
}

// CreateRoomResponse carries the code of a freshly reserved room.
type CreateRoomResponse struct {
	RoomID string `json:"roomId"`
}

// RulesResponse exposes the rules new rooms are created with.
type RulesResponse struct {
	Rules  config.Rules `json:"rules"`
	Colors []string     `json:"colors"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
