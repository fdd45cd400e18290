package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"production-board/internal/view"
	"production-board/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "production-board"
)

// routeStatus maps each system path to the status it reports.
var routeStatus = map[string]string{
	"/health": "healthy",
	"/ready":  "ready",
	"/live":   "alive",
}

type statusResp struct {
	Status  string      `json:"status"`
	Service string      `json:"service"`
	Version string      `json:"version"`
	Uptime  string      `json:"uptime"`
	Kinds   []view.Kind `json:"kinds"`
}

// systemStatus serves the health, readiness and liveness routes.
// @Summary     Service status
// @Description Reports service identity, uptime and the collection kinds served.
// @Tags        Health
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /health [get]
// @Router      /ready [get]
// @Router      /live [get]
func (srv HTTPServer) systemStatus(c *gin.Context) {
	response.OK(c, statusResp{
		Status:  routeStatus[c.FullPath()],
		Service: ServiceName,
		Version: HealthVersion,
		Uptime:  time.Since(srv.startedAt).Round(time.Second).String(),
		Kinds:   view.Kinds,
	})
}
