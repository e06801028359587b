package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary API banner
// @Tags misc
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /api [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Dumb Charades Hindi Movie Game API"})
}

// @Summary Liveness check
// @Tags misc
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
