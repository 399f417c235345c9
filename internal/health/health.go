// Package health provides the gateway's liveness endpoint, including the
// connectivity state of the upstream gRPC services.
package health

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

// Status represents the health status.
type Status string

const (
	// StatusHealthy indicates the service is healthy.
	StatusHealthy Status = "healthy"
	// StatusUnhealthy indicates the service is unhealthy.
	StatusUnhealthy Status = "unhealthy"
	// StatusDegraded indicates the service is degraded but operational.
	StatusDegraded Status = "degraded"
)

// Check represents an individual upstream check result.
type Check struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Response represents the health check response.
type Response struct {
	Status    Status           `json:"status"`
	Service   string           `json:"service"`
	Version   string           `json:"version,omitempty"`
	Uptime    string           `json:"uptime,omitempty"`
	Upstreams map[string]Check `json:"upstreams,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// CheckFunc is a function that performs an upstream check.
type CheckFunc func() Check

// Checker aggregates upstream checks into a health report.
type Checker struct {
	service   string
	version   string
	startTime time.Time
	checks    map[string]CheckFunc
	mu        sync.RWMutex
}

// NewChecker creates a new health checker.
func NewChecker(service, version string) *Checker {
	return &Checker{
		service:   service,
		version:   version,
		startTime: time.Now(),
		checks:    make(map[string]CheckFunc),
	}
}

// RegisterCheck registers an upstream check function.
func (c *Checker) RegisterCheck(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// ConnCheck returns a CheckFunc reporting the connectivity state of a
// gRPC client connection.
func ConnCheck(conn *grpc.ClientConn) CheckFunc {
	return func() Check {
		state := conn.GetState()
		check := Check{Message: state.String()}
		switch state {
		case connectivity.Ready, connectivity.Idle:
			check.Status = StatusHealthy
		case connectivity.Connecting:
			check.Status = StatusDegraded
		default:
			check.Status = StatusUnhealthy
		}
		return check
	}
}

// Snapshot returns the current health report. The overall status is the
// worst status among upstream checks.
func (c *Checker) Snapshot() Response {
	c.mu.RLock()
	defer c.mu.RUnlock()

	response := Response{
		Status:    StatusHealthy,
		Service:   c.service,
		Version:   c.version,
		Uptime:    time.Since(c.startTime).Round(time.Second).String(),
		Timestamp: time.Now(),
	}

	if len(c.checks) > 0 {
		response.Upstreams = make(map[string]Check, len(c.checks))
	}

	for name, checkFunc := range c.checks {
		check := checkFunc()
		response.Upstreams[name] = check

		if check.Status == StatusUnhealthy {
			response.Status = StatusUnhealthy
		} else if check.Status == StatusDegraded && response.Status != StatusUnhealthy {
			response.Status = StatusDegraded
		}
	}

	return response
}

// Handler returns a gin handler for the health endpoint. An unhealthy
// report is served with 503 so load balancers can act on it.
func (c *Checker) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response := c.Snapshot()

		status := http.StatusOK
		if response.Status == StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, response)
	}
}
