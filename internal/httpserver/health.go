package httpserver

import (
	"github.com/gin-gonic/gin"

	"household-calendar/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "household-calendar"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports which optional components are wired.
// @Summary Readiness Check
// @Description Reports the extraction mode and whether the event store is mounted
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	extraction := "deterministic"
	if srv.remoteExtraction {
		extraction = "remote+deterministic"
	}
	response.OK(c, gin.H{
		"status":      "ready",
		"service":     ServiceName,
		"extraction":  extraction,
		"event_store": srv.eventUC != nil,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive"})
}
