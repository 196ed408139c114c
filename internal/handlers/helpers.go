package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pagination reads the skip/limit query parameters with their contract
// defaults (0, 100). Negative values fall back to the defaults.
func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 100
	}
	return
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
