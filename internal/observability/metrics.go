package observability

import (
	"sync"
	"time"
)

type routeKey struct {
	Path   string
	Method string
}

type routeStats struct {
	Requests     int64
	TotalLatency time.Duration
	StatusCounts map[int]int64
	ErrorCodes   map[string]int64
}

// Metrics keeps in-memory per-route request and error counters.
type Metrics struct {
	mu     sync.Mutex
	routes map[routeKey]*routeStats
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{routes: make(map[routeKey]*routeStats)}
}

// RecordRequest accounts one completed request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.route(path, method)
	stats.Requests++
	stats.TotalLatency += duration
	stats.StatusCounts[status]++
}

// RecordError accounts one request that resolved to a domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.route(path, method).ErrorCodes[code]++
}

func (m *Metrics) route(path, method string) *routeStats {
	key := routeKey{Path: path, Method: method}
	stats, ok := m.routes[key]
	if !ok {
		stats = &routeStats{
			StatusCounts: make(map[int]int64),
			ErrorCodes:   make(map[string]int64),
		}
		m.routes[key] = stats
	}
	return stats
}
