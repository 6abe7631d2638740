package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cctGameBot/services/userService"
)

// NewAuthRouter builds the status/auth service: a static (method, path)
// table plus the CORS preflight contract.
func NewAuthRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware("GET,POST,OPTIONS,DELETE,PUT,PATCH", "Origin, Content-Type, X-Auth-Token"))

	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, "Service is operational")
	})
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, "Test endpoint")
	})
	router.POST("/telegram-auth", telegramAuth(db))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, "Not Found")
	})
	return router
}

func telegramAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			UserID json.RawMessage `json:"userid"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, "Error processing request")
			return
		}
		if body.UserID == nil {
			c.JSON(http.StatusBadRequest, "userid is required in the request body")
			return
		}

		var userID json.Number
		if err := json.Unmarshal(body.UserID, &userID); err != nil {
			c.JSON(http.StatusBadRequest, "userid must be a number")
			return
		}
		id, err := userID.Float64()
		if err != nil {
			c.JSON(http.StatusBadRequest, "userid must be a number")
			return
		}

		user, err := userService.GetUser(db, int64(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, "User not found")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
