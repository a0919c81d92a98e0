package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func getInt(c *gin.Context, key string, def int) int {
	v, _ := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if v <= 0 {
		return def
	}
	return v
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
