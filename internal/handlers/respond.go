package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// logAndRespondError logs the underlying error and returns only the generic
// message to the client.
func logAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg(message)
	respondError(c, status, message)
}
