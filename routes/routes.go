package routes

import (
	"github.com/gin-gonic/gin"

	"go-riskmonitor/controller"
	"go-riskmonitor/handlers"
)

// SetupRouter wires the dashboard page and the interaction API. The app
// context is injected into each handler; handlers only read it.
func SetupRouter(appCtx *controller.Context) *gin.Engine {
	r := gin.Default()

	r.GET("/", handlers.GetIndex)

	r.GET("/health", func(c *gin.Context) {
		handlers.GetHealth(c, appCtx)
	})

	// api routes
	api := r.Group("/api/riskmonitor")
	{
		api.GET("/dashboard", func(c *gin.Context) {
			handlers.GetDashboard(c, appCtx)
		})
		api.POST("/select", func(c *gin.Context) {
			handlers.PostSelect(c, appCtx)
		})
		api.POST("/reset", func(c *gin.Context) {
			handlers.PostReset(c, appCtx)
		})
	}

	return r
}
