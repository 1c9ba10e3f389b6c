// Package monitoring exposes a read-only view of a running simulation
// over HTTP and a stderr progress indicator, using a gorilla/mux router
// and shirou/gopsutil process stats. Unlike an event-driven engine's
// monitor, this one never reaches back into the engine to pause or tick
// it: a lock-step cycle engine has no mid-cycle pause point to offer, so
// the surface here is intentionally read-only.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
)

// Snapshot is the point-in-time counters a Monitor reports.
type Snapshot struct {
	Cycle                   uint64 `json:"cycle"`
	Iterations              uint64 `json:"iterations"`
	TotalUserInsnsCommitted uint64 `json:"total_user_insns_committed"`
	Threaded                bool   `json:"threaded"`
	WorkerCount             int    `json:"worker_count"`
}

// Monitor serves a Snapshot and process resource usage over HTTP, and
// prints a one-line progress update to stderr every time UpdateProgress
// is called.
type Monitor struct {
	mu       sync.RWMutex
	snapshot Snapshot

	portNumber int
}

// NewMonitor creates a Monitor that will listen on port when Start is
// called.
func NewMonitor(port int) *Monitor {
	return &Monitor{portNumber: port}
}

// Update records the latest snapshot for the next /api/status request.
func (m *Monitor) Update(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = s
}

// UpdateProgress prints a one-line, self-overwriting progress indicator
// to stderr. Called at the engine's 1000-cycle stride.
func (m *Monitor) UpdateProgress(cycle uint64) {
	fmt.Fprintf(os.Stderr, "\rsimulating... cycle %d", cycle)
}

// Start begins serving the monitoring endpoints in the background. It
// returns the port actually bound, which may differ from the requested
// one if 0 was given.
func (m *Monitor) Start() (int, error) {
	r := mux.NewRouter()
	r.HandleFunc("/api/status", m.handleStatus)
	r.HandleFunc("/api/resource", m.handleResource)

	addr := ":0"
	if m.portNumber > 0 {
		addr = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("monitoring: binding %s: %w", addr, err)
	}

	actualPort := listener.Addr().(*net.TCPAddr).Port

	go func() {
		_ = http.Serve(listener, r)
	}()

	return actualPort, nil
}

func (m *Monitor) handleStatus(w http.ResponseWriter, _ *http.Request) {
	m.mu.RLock()
	s := m.snapshot
	m.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

type resourceUsage struct {
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
}

func (m *Monitor) handleResource(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	memInfo, err := proc.MemoryInfo()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(resourceUsage{
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPercent,
	})
}
