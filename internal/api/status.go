package api

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

var startedAt = time.Now()

// RuntimeInfo is the process-level section of the /status payload. CPU and
// memory come from the OS; zero values mean the probe failed, which is not
// an error condition for a status endpoint.
type RuntimeInfo struct {
	UptimeSeconds float64 `json:"uptime_seconds"`
	Goroutines    int     `json:"goroutines"`
	MemoryRSS     uint64  `json:"memory_rss_bytes"`
	CPUPercent    float64 `json:"cpu_percent"`
}

func collectRuntimeInfo() RuntimeInfo {
	info := RuntimeInfo{
		UptimeSeconds: time.Since(startedAt).Seconds(),
		Goroutines:    runtime.NumGoroutine(),
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return info
	}
	if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
		info.MemoryRSS = mem.RSS
	}
	if cpu, err := proc.CPUPercent(); err == nil {
		info.CPUPercent = cpu
	}
	return info
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusOK, withData(map[string]any{
		"service":  ServiceName,
		"version":  APIVersion,
		"sessions": s.registry.Len(),
		"runtime":  collectRuntimeInfo(),
	}))
}
