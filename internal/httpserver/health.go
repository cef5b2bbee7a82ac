package httpserver

import (
	"sort"

	"github.com/gin-gonic/gin"

	"billing-automation/pkg/response"
)

const DefaultVersion = "1.0.0"

type infoResp struct {
	Status      string         `json:"status"`
	Message     string         `json:"message,omitempty"`
	Service     string         `json:"service"`
	Version     string         `json:"version"`
	Environment string         `json:"environment,omitempty"`
	Features    map[string]any `json:"features"`
	Endpoints   []string       `json:"endpoints"`
}

// info describes the service, its enabled integrations and its routes.
// @Summary Service information
// @Tags Health
// @Produce json
// @Success 200 {object} infoResp
// @Router / [get]
func (srv *HTTPServer) info(c *gin.Context) {
	features := map[string]any{}
	if srv.features != nil {
		features = srv.features()
	}

	var endpoints []string
	for _, r := range srv.gin.Routes() {
		endpoints = append(endpoints, r.Method+" "+r.Path)
	}
	sort.Strings(endpoints)

	response.OK(c, infoResp{
		Status:      "healthy",
		Message:     srv.message,
		Service:     srv.service,
		Version:     srv.version,
		Environment: srv.environment,
		Features:    features,
		Endpoints:   endpoints,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	srv.probe(c, "healthy")
}

// readyCheck handles readiness check, ready as soon as the server is up.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	srv.probe(c, "ready")
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	srv.probe(c, "alive")
}

func (srv *HTTPServer) probe(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":  status,
		"version": srv.version,
		"service": srv.service,
	})
}
