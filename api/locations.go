package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cctGameBot/models"
)

// NewLocationsRouter builds the locations service: a bulk scan of the
// locations table returned as-is.
func NewLocationsRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware("GET,POST,OPTIONS", "Content-Type"))

	router.GET("/locations", func(c *gin.Context) {
		locations := make([]models.Location, 0)
		if err := db.Find(&locations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, locations)
	})
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "OK"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
	return router
}
