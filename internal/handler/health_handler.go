package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	modelsLoaded func() bool
	browserReady func() bool
}

// NewHealthHandler wires the probes. modelsLoaded reports whether at least
// one extraction vendor is configured; browserReady whether the headless
// browser can render.
func NewHealthHandler(modelsLoaded, browserReady func() bool) *HealthHandler {
	return &HealthHandler{modelsLoaded: modelsLoaded, browserReady: browserReady}
}

// Liveness handles GET /healthz
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
// @Summary      Readiness probe
// @Description  Reports whether at least one extraction vendor is configured and the browser can render
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	models := h.modelsLoaded()
	browser := h.browserReady()

	status := "ready"
	code := http.StatusOK
	if !models && !browser {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":       status,
		"modelsLoaded": models,
		"browserReady": browser,
	})
}
