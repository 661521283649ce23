package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// intParam parses a numeric path parameter, aborting with 400 on failure.
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" parameter: must be a number.")
		return 0, false
	}
	return v, true
}
