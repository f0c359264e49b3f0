package room

import "errors"

// Code is the machine-readable tag carried by every room failure.
type Code string

const (
	CodeRoomFull           Code = "RoomFull"
	CodeGameAlreadyStarted Code = "GameAlreadyStarted"
	CodeNotEnoughPlayers   Code = "NotEnoughPlayers"
	CodePlayerNotFound     Code = "PlayerNotFound"
	CodeGameNotActive      Code = "GameNotActive"
	CodeNotYourTurn        Code = "NotYourTurn"
	CodeRoomClosed         Code = "RoomClosed"
)

// Error is an expected, recoverable rule violation. Two errors match under
// errors.Is when their codes are equal.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrRoomFull           = &Error{Code: CodeRoomFull, Message: "room is full"}
	ErrGameAlreadyStarted = &Error{Code: CodeGameAlreadyStarted, Message: "game already started"}
	ErrNotEnoughPlayers   = &Error{Code: CodeNotEnoughPlayers, Message: "not enough players to start"}
	ErrPlayerNotFound     = &Error{Code: CodePlayerNotFound, Message: "player not found"}
	ErrGameNotActive      = &Error{Code: CodeGameNotActive, Message: "game is not active"}
	ErrNotYourTurn        = &Error{Code: CodeNotYourTurn, Message: "not your turn"}
	ErrRoomClosed         = &Error{Code: CodeRoomClosed, Message: "room was closed"}
)

// CodeOf extracts the tag from a room error.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
