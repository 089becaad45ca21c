package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
)

const msgInvalidBody = "Invalid request body"

func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, domainErrors.Wrap(domainErrors.KindValidationFailed, msgInvalidBody, err))
		return false
	}
	return true
}

// queryInt returns 0 for a missing or unparsable parameter.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
