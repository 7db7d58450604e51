package health

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

var startTime = time.Now()

type status struct {
	Status     string  `json:"status"`
	Uptime     string  `json:"uptime"`
	Goroutines int     `json:"goroutines"`
	OS         string  `json:"os"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
}

func handleStatus(w http.ResponseWriter, r *http.Request) {
	st := status{
		Status:     "ok",
		Uptime:     time.Since(startTime).Round(time.Second).String(),
		Goroutines: runtime.NumGoroutine(),
	}

	if hostInfo, err := host.Info(); err == nil {
		st.OS = hostInfo.Platform + " " + hostInfo.PlatformVersion
	}
	if cpuPercent, err := cpu.Percent(0, false); err == nil && len(cpuPercent) > 0 {
		st.CPUPercent = cpuPercent[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		st.MemPercent = vm.UsedPercent
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st)
}

// Start serves the health endpoint on its own goroutine.
func Start(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleStatus)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("health: server stopped: %v", err)
		}
	}()
}
