package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/otalink_api/models"
	"github.com/vit0-9/otalink_api/pkg/i18n"
	"github.com/vit0-9/otalink_api/pkg/resolver"
)

// LinkHandlers groups download-link specific utilities
type LinkHandlers struct {
	resolver *resolver.Resolver
	builder  *resolver.HeaderBuilder
	now      func() time.Time
}

func NewLinkHandlers(res *resolver.Resolver, builder *resolver.HeaderBuilder) *LinkHandlers {
	return &LinkHandlers{
		resolver: res,
		builder:  builder,
		now:      time.Now,
	}
}

// ResolveLinkHandler godoc
// @Summary      Resolve a download link
// @Description  Walks the redirect chain of a download URL with device headers attached and returns the final directly-fetchable URL.
// @Tags         Link Resolution
// @Produce      json
// @Param        url query string true "Download URL to resolve"
// @Success      200 {object} models.ResolveLinkResponse "Successfully resolved URL or error during resolution"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing URL)"
// @Router       /link/resolve [get]
func (h *LinkHandlers) ResolveLinkHandler(c *gin.Context) {
	urlQuery := c.Query("url")
	if urlQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	finalURL, err := h.resolver.Resolve(c.Request.Context(), urlQuery)
	if err != nil {
		c.JSON(http.StatusOK, models.ResolveLinkResponse{ // Still 200 but with error in body
			OriginalURL: models.SafeURLString(urlQuery),
			ErrorKind:   resolver.ErrorKind(err),
			Error:       err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, models.ResolveLinkResponse{
		OriginalURL: models.SafeURLString(urlQuery),
		FinalURL:    models.SafeURLString(finalURL),
	})
}

// LinkExpiryHandler godoc
// @Summary      Check download link expiry
// @Description  Extracts the Expires signature parameter from a download URL and reports the remaining validity as a localized countdown.
// @Tags         Link Resolution
// @Produce      json
// @Param        url query string true "Signed download URL"
// @Param        lang query string false "BCP-47 language tag for the expired label (falls back to Accept-Language, then English)"
// @Success      200 {object} models.LinkExpiryResponse "Expiry info or error detail"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing URL)"
// @Router       /link/expiry [get]
func (h *LinkHandlers) LinkExpiryHandler(c *gin.Context) {
	urlQuery := c.Query("url")
	if urlQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}

	expiresAt, ok := resolver.ExtractExpires(urlQuery)
	if !ok {
		c.JSON(http.StatusOK, models.LinkExpiryResponse{
			URL:   models.SafeURLString(urlQuery),
			Error: "url has no parseable Expires parameter",
		})
		return
	}

	now := h.now().Unix()
	remaining := expiresAt - now
	if remaining < 0 {
		remaining = 0
	}
	c.JSON(http.StatusOK, models.LinkExpiryResponse{
		URL:              models.SafeURLString(urlQuery),
		ExpiresAt:        expiresAt,
		RemainingSeconds: remaining,
		Display:          resolver.FormatRemaining(expiresAt, now, i18n.ExpiredLabel(lang)),
		Expired:          remaining == 0,
	})
}

// InspectLinkHandler godoc
// @Summary      Inspect a resolved download link
// @Description  Resolves the link, then fetches the final URL with the device header set and reports the response status and headers.
// @Tags         Link Resolution
// @Produce      json
// @Param        url query string true "Download URL to inspect"
// @Success      200 {object} models.InspectLinkResponse "Inspection result or error during fetch"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing URL)"
// @Router       /link/inspect [get]
func (h *LinkHandlers) InspectLinkHandler(c *gin.Context) {
	urlQuery := c.Query("url")
	if urlQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	resolved, err := h.resolver.Resolve(c.Request.Context(), urlQuery)
	if err != nil {
		c.JSON(http.StatusOK, models.InspectLinkResponse{ // Still 200 but with error in body
			RequestURL: models.SafeURLString(urlQuery),
			Error:      err.Error(),
		})
		return
	}

	fetchResult, err := resolver.Fetch(c.Request.Context(), resolved, h.builder.Build(resolved))
	if err != nil {
		c.JSON(http.StatusOK, models.InspectLinkResponse{
			RequestURL:  models.SafeURLString(urlQuery),
			ResolvedURL: models.SafeURLString(resolved),
			Error:       err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.InspectLinkResponse{
		RequestURL:  models.SafeURLString(urlQuery),
		ResolvedURL: models.SafeURLString(resolved),
		FinalURL:    models.SafeURLString(fetchResult.FinalURL),
		StatusCode:  fetchResult.StatusCode,
		Status:      fetchResult.Status,
		Headers:     fetchResult.Headers,
	})
}
