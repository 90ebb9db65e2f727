package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/vit0-9/otalink_api/models"
)

type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// HealthCheckHandler godoc
// @Summary      Health Check
// @Description  Checks the health of the API.
// @Tags         Monitoring
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
	})
}

// StatusHandler godoc
// @Summary      Runtime status
// @Description  Reports process uptime, goroutine count, heap usage and host memory pressure.
// @Tags         Monitoring
// @Produce      json
// @Success      200  {object}  models.StatusResponse
// @Router       /status [get]
func (h *HealthHandler) StatusHandler(c *gin.Context) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	var hostUsed float64
	if vm, err := mem.VirtualMemory(); err == nil {
		hostUsed = vm.UsedPercent
	}

	c.JSON(http.StatusOK, models.StatusResponse{
		Status:        "UP",
		UptimeSeconds: uint64(time.Since(h.startedAt).Seconds()),
		Goroutines:    runtime.NumGoroutine(),
		HeapAllocMB:   float64(ms.HeapAlloc) / 1024 / 1024,
		HostMemUsedPc: hostUsed,
	})
}
