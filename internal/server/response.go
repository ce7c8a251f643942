package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func respondValidationError(c *gin.Context, status int, msg string, fields map[string][]string) {
	c.JSON(status, gin.H{"success": false, "error": msg, "details": fields})
}

func healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
