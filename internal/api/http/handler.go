package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"snakes-ladders/internal/room"
)

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Rooms: len(rm.List())})
	}
}

// @Summary List rooms
// @Description Short summary of every live room, ordered by code
// @Tags Room
// @Produce json
// @Success 200 {object} RoomListResponse
// @Router /rooms [get]
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, RoomListResponse{Rooms: rm.List()})
	}
}

// @Summary Create room
// @Description Reserve an empty room under a random code. Players join it over the websocket.
// @Tags Room
// @Produce json
// @Success 201 {object} CreateRoomResponse
// @Failure 503 {object} ErrorResponse
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.CreateRoom()
		if err != nil {
			log.Error().Err(err).Msg("create room")
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
			return
		}
		log.Info().Str("room", r.Code).Msg("room created")
		c.JSON(http.StatusCreated, CreateRoomResponse{RoomID: r.Code})
	}
}

// @Summary Room state
// @Description Full snapshot of one room: roster, turn, board and card spawns
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} room.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{code} [get]
func RoomStateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
			return
		}
		c.JSON(http.StatusOK, r.State())
	}
}
