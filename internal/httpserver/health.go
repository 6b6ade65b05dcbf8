package httpserver

import (
	"github.com/gin-gonic/gin"

	"customer-support/pkg/response"
)

// Service identity reported by the probe endpoints.
const (
	HealthMessage = "Customer support routing API"
	HealthVersion = "1.0.0"
	ServiceName   = "customer-support"
)

// Probe states.
const (
	statusHealthy = "healthy"
	statusReady   = "ready"
	statusAlive   = "alive"
)

type probeResp struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Version     string `json:"version"`
	Service     string `json:"service"`
	Environment string `json:"environment,omitempty"`
}

func (srv HTTPServer) probe(status string) gin.HandlerFunc {
	body := probeResp{
		Status:      status,
		Message:     HealthMessage,
		Version:     HealthVersion,
		Service:     ServiceName,
		Environment: srv.environment,
	}
	return func(c *gin.Context) {
		response.OK(c, body)
	}
}

// healthCheck
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck() gin.HandlerFunc { return srv.probe(statusHealthy) }

// readyCheck reports ready once routes are mounted; the conversation stack has no warm-up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck() gin.HandlerFunc { return srv.probe(statusReady) }

// liveCheck
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck() gin.HandlerFunc { return srv.probe(statusAlive) }
