package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-riskmonitor/controller"
)

// selectRequest is the map-click event payload. Location is the clicked
// choropleth location (a country name).
type selectRequest struct {
	Location string `json:"location"`
}

// GetDashboard returns the global ViewModel. The page calls this once on
// load; it is identical to what a reset produces.
func GetDashboard(c *gin.Context, appCtx *controller.Context) {
	vm := controller.Update(appCtx, controller.Event{Trigger: controller.TriggerReset})
	c.JSON(http.StatusOK, vm)
}

// PostSelect handles a map click. A malformed or empty body is not an error:
// it behaves like a click that carried no location, which renders the global
// view. Nothing escapes the controller as a 5xx.
func PostSelect(c *gin.Context, appCtx *controller.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.S().Debugw("select with unreadable body, serving global view", "error", err)
	}
	vm := controller.Update(appCtx, controller.Event{
		Trigger:  controller.TriggerMapClick,
		Location: req.Location,
	})
	c.JSON(http.StatusOK, vm)
}

// PostReset handles the reset button. No payload.
func PostReset(c *gin.Context, appCtx *controller.Context) {
	vm := controller.Update(appCtx, controller.Event{Trigger: controller.TriggerReset})
	c.JSON(http.StatusOK, vm)
}

// GetHealth is a liveness check that also reports how many rows are loaded,
// which makes a failed dataset load easy to spot from the outside.
func GetHealth(c *gin.Context, appCtx *controller.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"rows":   len(appCtx.Data),
	})
}
