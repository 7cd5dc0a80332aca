package handlers

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var pageFS embed.FS

// GetIndex serves the dashboard page. The page is self-contained: styling is
// inlined and the charts are rendered client-side by Plotly from the JSON
// the API returns.
func GetIndex(c *gin.Context) {
	page, err := pageFS.ReadFile("templates/index.html")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load page"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
