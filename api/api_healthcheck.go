package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maildiscovery/go-parser-server/global"
)

type HealthCheckAPI struct {
}

func NewHealthCheckAPI() *HealthCheckAPI {
	return &HealthCheckAPI{}
}

// Check the health of the service
// @Summary Check the health of the service
// @Tags Health Check
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (ha *HealthCheckAPI) HealthCheck(c *gin.Context) {
	version := global.Conf.Version
	mode := global.Conf.Mode
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version, "mode": mode})
}
