package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Errors go out as {"detail": "..."} to keep the wire contract the admin
// dashboard already consumes.
func RespondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
