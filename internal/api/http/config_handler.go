package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"snakes-ladders/internal/config"
)

// RulesHandler returns the rules every new room starts with
// @Summary Get game rules
// @Description Track length, link and card spawn counts, player limits and jump range
// @Tags Config
// @Produce json
// @Success 200 {object} RulesResponse
// @Router /config/rules [get]
func RulesHandler(rules config.Rules) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, RulesResponse{
			Rules:  rules,
			Colors: config.DefaultPlayerColors[:rules.MaxPlayers],
		})
	}
}
