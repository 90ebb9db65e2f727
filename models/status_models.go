package models

// StatusResponse reports process and host runtime stats.
type StatusResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds uint64  `json:"uptime_seconds"`
	Goroutines    int     `json:"goroutines"`
	HeapAllocMB   float64 `json:"heap_alloc_mb"`
	HostMemUsedPc float64 `json:"host_mem_used_percent"`
}
