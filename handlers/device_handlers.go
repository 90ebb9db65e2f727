package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/otalink_api/models"
	"github.com/vit0-9/otalink_api/pkg/resolver"
)

// DeviceHandlers groups device identity utilities
type DeviceHandlers struct {
	builder *resolver.HeaderBuilder
}

func NewDeviceHandlers(builder *resolver.HeaderBuilder) *DeviceHandlers {
	return &DeviceHandlers{builder: builder}
}

// DeviceHeadersHandler godoc
// @Summary      Preview device request headers
// @Description  Shows the header set that would be attached to a request for the given URL (the id header follows the URL's g parameter; ts moves with the clock).
// @Tags         Device
// @Produce      json
// @Param        url query string false "URL the headers would be built for (may be omitted)"
// @Success      200 {object} models.DeviceHeadersResponse
// @Router       /device/headers [get]
func (h *DeviceHandlers) DeviceHeadersHandler(c *gin.Context) {
	urlQuery := c.Query("url")
	c.JSON(http.StatusOK, models.DeviceHeadersResponse{
		URL:     models.SafeURLString(urlQuery),
		Headers: h.builder.Build(urlQuery),
	})
}

// DeviceInfoHandler godoc
// @Summary      Detected device identity
// @Description  Returns the platform identity snapshot backing the header fallbacks.
// @Tags         Device
// @Produce      json
// @Success      200 {object} models.DeviceInfoResponse
// @Router       /device/info [get]
func (h *DeviceHandlers) DeviceInfoHandler(c *gin.Context) {
	info := h.builder.Info
	c.JSON(http.StatusOK, models.DeviceInfoResponse{
		Release: info.Release,
		Model:   info.Model,
		Brand:   info.Brand,
		Locale:  info.Locale,
	})
}
