// @title           OTA Link Resolver API
// @version         1.0
// @description     Resolves device-gated, redirecting OTA download links to their final directly-fetchable form, with link expiry and device header utilities.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vit0-9/otalink_api/docs" // Your Swagger docs
	"github.com/vit0-9/otalink_api/handlers"
	"github.com/vit0-9/otalink_api/pkg/resolver"
	"github.com/vit0-9/otalink_api/pkg/resolver/device"
)

// App encapsulates all the components of the application
type App struct {
	Router         *gin.Engine
	LinkHandlers   *handlers.LinkHandlers
	DeviceHandlers *handlers.DeviceHandlers
	HealthHandler  *handlers.HealthHandler
}

// NewApp creates and initializes a new application instance
func NewApp() (*App, error) {
	props := propertyProvider()
	builder := resolver.NewHeaderBuilder(props)
	res := resolver.New(builder)

	linkHandlers := handlers.NewLinkHandlers(res, builder)
	deviceHandlers := handlers.NewDeviceHandlers(builder)
	healthHandler := handlers.NewHealthHandler()

	router := gin.Default()
	// Consider your proxy setup for SetTrustedProxies if deploying

	app := &App{
		Router:         router,
		LinkHandlers:   linkHandlers,
		DeviceHandlers: deviceHandlers,
		HealthHandler:  healthHandler,
	}

	app.setupRoutes()
	return app, nil
}

// propertyProvider picks the device property source. GETPROP_BIN points at
// an explicit accessor binary; otherwise "getprop" from PATH is used and,
// since most deployments are not Android hosts, lookups simply fall back to
// the header defaults when it is absent.
func propertyProvider() device.Provider {
	bin := os.Getenv("GETPROP_BIN")
	if bin == "" {
		bin = "getprop"
	}
	return device.ExecProvider{Bin: bin}
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	app.Router.GET("/api/v1/health", app.HealthHandler.HealthCheckHandler)
	app.Router.GET("/api/v1/status", app.HealthHandler.StatusHandler)

	// Group for download link utilities
	// These will be prefixed by @BasePath /api/v1
	linkV1 := app.Router.Group("/api/v1/link")
	{
		linkV1.GET("/resolve", app.LinkHandlers.ResolveLinkHandler)
		linkV1.GET("/expiry", app.LinkHandlers.LinkExpiryHandler)
		linkV1.GET("/inspect", app.LinkHandlers.InspectLinkHandler)
	}

	// Group for device identity utilities
	deviceV1 := app.Router.Group("/api/v1/device")
	{
		deviceV1.GET("/headers", app.DeviceHandlers.DeviceHeadersHandler)
		deviceV1.GET("/info", app.DeviceHandlers.DeviceInfoHandler)
	}

	// Add Swagger route
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start runs the Gin HTTP server
func (app *App) Start(addr string) error {
	log.Printf("🚀 API server starting on %s", addr)
	return app.Router.Run(addr)
}
