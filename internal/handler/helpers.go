package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func intQuery(c *gin.Context, key string, def int) int {
	if val := c.Query(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func strQuery(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}

func intParam(c *gin.Context, key string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(c.Param(key)))
	if err != nil {
		return 0, false
	}
	return i, true
}
