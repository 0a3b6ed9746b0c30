package web

import (
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/flight-hub/internal/booking"
	"bitbucket.org/crgw/flight-hub/internal/catalog"
	"bitbucket.org/crgw/flight-hub/internal/routes"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter(
	log *zerolog.Logger,
	airports *catalog.Catalog,
	generator *routes.Generator,
	bookings *booking.Service,
) *gin.Engine {
	var (
		startTime       = time.Now()
		openApiLocation = os.Getenv("OPENAPI_LOCATION")
	)

	if openApiLocation == "" {
		openApiLocation = "./api/openapi.json"
	}

	openApiContent, _ := os.ReadFile(openApiLocation)

	router := gin.New()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(Cors).
		Use(OpenapiValidator())

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, string(openApiContent))
	})

	pprof.Register(router)

	RegisterRoutes(router, airports, generator, bookings)

	return router
}
