package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Second Lit Server Running Successfully")
	}
}
