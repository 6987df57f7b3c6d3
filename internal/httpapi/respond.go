package httpapi

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/apperr"
)

func respondErr(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("[http] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
