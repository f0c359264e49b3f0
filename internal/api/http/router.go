package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"snakes-ladders/internal/api/ws"
	"snakes-ladders/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/healthz", HealthHandler(rm))

	// WebSocket for game play
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.GET("/rooms", ListRoomsHandler(rm))
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms/:code", RoomStateHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/rules", RulesHandler(rm.Rules()))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}
