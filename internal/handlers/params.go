package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pagination reads the skip/limit query parameters with the usual defaults.
func pagination(c *gin.Context) (skip int, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return skip, limit
}
