package apiroutes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/maildiscovery/go-parser-server/api"
	"github.com/maildiscovery/go-parser-server/global"
	"github.com/maildiscovery/go-parser-server/metrics"
	"github.com/maildiscovery/go-parser-server/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// REST API routes
func ConfigRoutes(router *gin.Engine) *gin.Engine {
	corsConfig := cors.DefaultConfig()
	if len(global.Conf.Cors.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = global.Conf.Cors.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	// init metrics
	if global.Conf.Prometheus.Enabled {

		metrics.InitMetrics()

		authorized := router.Group("/metrics", gin.BasicAuth(gin.Accounts{
			global.Conf.Prometheus.Username: global.Conf.Prometheus.Password,
		}))

		authorized.GET("", gin.WrapH(promhttp.Handler()))
	}

	// SERVICE definitions
	parseService := services.NewParseService()

	// API definitions
	parserApi := api.NewParserApi(parseService)
	healthCheckApi := api.NewHealthCheckAPI()

	// PUBLIC ROOT API (unversioned paths kept for the original contract)
	rootPublicApi := router.Group("/", metrics.MetricsMiddleware())
	{
		rootPublicApi.GET("health", healthCheckApi.HealthCheck)
		rootPublicApi.POST("parse", parserApi.Parse)
	}

	// PUBLIC API
	publicApi := router.Group("/api", metrics.MetricsMiddleware())
	{
		publicApi.POST("/v1/parse", parserApi.Parse)
	}

	return router
}
