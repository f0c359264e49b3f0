package ws

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"snakes-ladders/internal/room"
)

func (h *Hub) handleJoin(cl *client, raw json.RawMessage) {
	var req joinRoomRequest
	if err := decode(raw, &req); err != nil {
		h.fail(cl, CodeBadRequest, "invalid join-room payload")
		return
	}
	code := strings.TrimSpace(req.RoomID)
	if code == "" {
		h.fail(cl, CodeBadRequest, "roomId is required")
		return
	}
	name, err := h.validateName(req.PlayerName)
	if err != nil {
		h.fail(cl, CodeInvalidName, err.Error())
		return
	}
	if current, ok := h.roomOf(cl); ok {
		h.fail(cl, CodeAlreadyJoined, "already in room "+current)
		return
	}

	r, res, err := h.roomManager.Join(code, cl.id, name)
	if err != nil {
		h.reject(cl, err)
		return
	}
	h.subscribe(cl, code)
	h.Broadcast(code, EventRoomUpdate, roomUpdate(r.State()))

	log.Info().
		Str("room", code).
		Str("conn", cl.id).
		Str("player", res.Player.Name).
		Int("index", res.Index).
		Msg("player joined")
}

func (h *Hub) handleStart(cl *client) {
	r, ok := h.roomFor(cl)
	if !ok {
		return
	}
	s, err := r.Start()
	if err != nil {
		h.reject(cl, err)
		return
	}
	h.Broadcast(r.Code, EventGameStarted, s)
	log.Info().Str("room", r.Code).Int("players", len(s.Players)).Msg("game started")
}

func (h *Hub) handleRoll(cl *client, raw json.RawMessage) {
	var req rollDiceRequest
	if err := decode(raw, &req); err != nil {
		h.fail(cl, CodeBadRequest, "invalid roll-dice payload")
		return
	}
	r, ok := h.roomFor(cl)
	if !ok {
		return
	}
	res, err := r.TakeTurn(cl.id, req.UseSkill)
	if err != nil {
		h.reject(cl, err)
		return
	}

	h.Broadcast(r.Code, EventDiceRolled, res)
	if res.Finished {
		h.Broadcast(r.Code, EventGameFinished, gameFinishedPayload{Winner: res.Winner, Players: res.Players})
		log.Info().Str("room", r.Code).Str("player", res.PlayerName).Msg("game finished")
		return
	}
	h.Broadcast(r.Code, EventTurnChanged, turnChangedPayload{
		CurrentPlayerIndex: res.NextTurnIdx,
		CurrentPlayerID:    res.NextPlayerID,
		CurrentPlayerName:  res.NextPlayerName,
	})
}

func (h *Hub) handleReset(cl *client) {
	r, ok := h.roomFor(cl)
	if !ok {
		return
	}
	s, err := r.Reset()
	if err != nil {
		h.reject(cl, err)
		return
	}
	h.Broadcast(r.Code, EventGameReset, s)
	log.Info().Str("room", r.Code).Msg("game reset")
}

func (h *Hub) handleSync(cl *client) {
	r, ok := h.roomFor(cl)
	if !ok {
		return
	}
	h.send(cl, EventState, r.State())
}

// disconnect removes the connection's player and drops the room once it is
// empty.
func (h *Hub) disconnect(cl *client) {
	h.unsubscribe(cl)

	r, ok := h.roomManager.FindByConnection(cl.id)
	if !ok {
		return
	}
	res, err := r.Leave(cl.id)
	if err != nil {
		return
	}
	logger := log.With().Str("room", r.Code).Str("conn", cl.id).Logger()
	logger.Info().Str("player", res.Player.Name).Msg("player left")

	if h.roomManager.DeleteIfEmpty(r.Code) {
		logger.Info().Msg("room deleted")
		return
	}
	s := r.State()
	h.Broadcast(r.Code, EventPlayerLeft, playerLeftPayload{
		PlayerName:         res.Player.Name,
		Players:            s.Players,
		CurrentPlayerIndex: s.TurnIdx,
	})
}

// roomFor finds the room the connection plays in and reports a failure to
// the connection when there is none.
func (h *Hub) roomFor(cl *client) (*room.Room, bool) {
	r, ok := h.roomManager.FindByConnection(cl.id)
	if !ok {
		h.reject(cl, room.ErrPlayerNotFound)
	}
	return r, ok
}

func (h *Hub) validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("playerName is required")
	}
	if n := utf8.RuneCountInString(name); n > h.maxName {
		return "", fmt.Errorf("playerName is %d characters, at most %d allowed", n, h.maxName)
	}
	return name, nil
}

// reject reports a failed room operation. Capacity and started-game
// rejections have their own events; everything else is a generic error.
func (h *Hub) reject(cl *client, err error) {
	code, ok := room.CodeOf(err)
	if !ok {
		log.Error().Err(err).Str("conn", cl.id).Msg("room operation failed")
		h.fail(cl, "Internal", "internal error")
		return
	}
	event := EventError
	switch code {
	case room.CodeRoomFull:
		event = EventRoomFull
	case room.CodeGameAlreadyStarted:
		event = EventGameAlreadyStarted
	}
	h.send(cl, event, errorPayload{Code: string(code), Message: err.Error()})
}

func (h *Hub) fail(cl *client, code, message string) {
	h.send(cl, EventError, errorPayload{Code: code, Message: message})
}

// decode unmarshals an optional payload. A missing or null payload leaves v
// untouched.
func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, v)
}
