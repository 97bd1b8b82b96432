package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillhub-api/repositories"
)

// respondError writes the error with the status matching its kind
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repositories.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, repositories.ErrReferentialFailure):
		status = http.StatusBadRequest
	case errors.Is(err, repositories.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	message := "Internal server error"
	var classified *repositories.Error
	if errors.As(err, &classified) {
		message = classified.Message
	}

	if status >= http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

// respondBindError reports a malformed or invalid request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// respondInvalidID reports a path id that is not a positive integer
func respondInvalidID(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid " + name,
	})
}
