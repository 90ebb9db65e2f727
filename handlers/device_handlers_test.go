package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vit0-9/otalink_api/models"
	"github.com/vit0-9/otalink_api/pkg/resolver"
	"github.com/vit0-9/otalink_api/pkg/resolver/device"
)

func deviceRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	builder := resolver.NewHeaderBuilder(device.MapProvider{
		"ro.build.version.release":  "14",
		"ro.product.model":          "CPH2581",
		"ro.product.brand":          "OnePlus",
		"ro.build.version.oplusrom": "V14.0",
	})
	builder.Now = func() time.Time { return time.UnixMilli(1700000000000) }

	h := NewDeviceHandlers(builder)
	router := gin.New()
	router.GET("/api/v1/device/headers", h.DeviceHeadersHandler)
	router.GET("/api/v1/device/info", h.DeviceInfoHandler)
	return router
}

func TestDeviceHeadersHandler(t *testing.T) {
	t.Run("Previews the header set for a URL", func(t *testing.T) {
		rec := doGet(t, deviceRouter(t), "/api/v1/device/headers?url=https%3A%2F%2Fh%2Fp%3Fg%3DABC123")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.DeviceHeadersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "ABC123", resp.Headers["id"])
		require.Equal(t, "ColorOS14.0", resp.Headers["colorOSVersion"])
		require.Equal(t, "1700000000000", resp.Headers["ts"])
	})

	t.Run("Works without a URL", func(t *testing.T) {
		rec := doGet(t, deviceRouter(t), "/api/v1/device/headers")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.DeviceHeadersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotContains(t, resp.Headers, "id")
		require.Equal(t, "Android 14", resp.Headers["androidVersion"])
	})
}

func TestDeviceInfoHandler(t *testing.T) {
	rec := doGet(t, deviceRouter(t), "/api/v1/device/info")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DeviceInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, models.DeviceInfoResponse{
		Release: "14",
		Model:   "CPH2581",
		Brand:   "OnePlus",
		Locale:  "en-US",
	}, resp)
}

func TestHealthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHealthHandler()
	router := gin.New()
	router.GET("/api/v1/health", h.HealthCheckHandler)
	router.GET("/api/v1/status", h.StatusHandler)

	t.Run("Health check", func(t *testing.T) {
		rec := doGet(t, router, "/api/v1/health")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
	})

	t.Run("Status reports runtime stats", func(t *testing.T) {
		rec := doGet(t, router, "/api/v1/status")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "UP", resp.Status)
		require.Positive(t, resp.Goroutines)
	})
}
