package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ub-address-parser/internal/parser"
)

// SetupWebRoutes mounts the informational pages.
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message":       "UB Address Parser Service",
				"rules_version": parser.RulesVersion,
				"docs":          "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "UB Address Parser API v1",
				"endpoints": map[string]string{
					"parse":       "POST /v1/addresses/parse",
					"batch":       "POST /v1/addresses/jobs",
					"job_status":  "GET /v1/addresses/jobs/:jobID/status",
					"job_results": "GET /v1/addresses/jobs/:jobID/results",
					"health":      "GET /v1/health",
				},
			})
		})
	}
}
