package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description Liveness probe. Does not touch the database.
// @Tags root
// @Accept */*
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}

// registerRootRoutes registers the health check and the Prometheus scrape endpoint.
func registerRootRoutes(r *gin.Engine, metricsHandler http.Handler) {
	r.GET("/health", getHealth)
	r.GET("/metrics", gin.WrapH(metricsHandler))
}
