package ws

import (
	"encoding/json"

	"snakes-ladders/internal/room"
)

// Client actions.
const (
	ActionJoinRoom  = "join-room"
	ActionStartGame = "start-game"
	ActionRollDice  = "roll-dice"
	ActionResetGame = "reset-game"
	ActionSyncState = "sync-state"
)

// Server events.
const (
	EventConnected          = "connected"
	EventRoomUpdate         = "room-update"
	EventRoomFull           = "room-full"
	EventGameAlreadyStarted = "game-already-started"
	EventError              = "error"
	EventGameStarted        = "game-started"
	EventDiceRolled         = "dice-rolled"
	EventGameFinished       = "game-finished"
	EventTurnChanged        = "turn-changed"
	EventGameReset          = "game-reset"
	EventPlayerLeft         = "player-left"
	EventState              = "state"
)

// Codes for failures detected by the transport itself.
const (
	CodeBadRequest    = "BadRequest"
	CodeInvalidName   = "InvalidName"
	CodeUnknownAction = "UnknownAction"
	CodeAlreadyJoined = "AlreadyJoined"
)

type inbound struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type outbound struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

type joinRoomRequest struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type rollDiceRequest struct {
	UseSkill bool `json:"useSkill"`
}

type connectedPayload struct {
	ConnectionID string `json:"connectionId"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type roomUpdatePayload struct {
	RoomID             string        `json:"roomId"`
	Players            []room.Player `json:"players"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	GameStarted        bool          `json:"gameStarted"`
	MaxPlayers         int           `json:"maxPlayers"`
}

type turnChangedPayload struct {
	CurrentPlayerIndex int    `json:"currentPlayerIndex"`
	CurrentPlayerID    string `json:"currentPlayerId"`
	CurrentPlayerName  string `json:"currentPlayerName"`
}

type gameFinishedPayload struct {
	Winner  *room.Player  `json:"winner"`
	Players []room.Player `json:"players"`
}

type playerLeftPayload struct {
	PlayerName         string        `json:"playerName"`
	Players            []room.Player `json:"players"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
}

func roomUpdate(s room.Snapshot) roomUpdatePayload {
	return roomUpdatePayload{
		RoomID:             s.Code,
		Players:            s.Players,
		CurrentPlayerIndex: s.TurnIdx,
		GameStarted:        s.Started,
		MaxPlayers:         s.MaxPlayers,
	}
}
