package interfaces

import (
	"time"
)

// ServiceStatus represents the current status of a service
type ServiceStatus = string

const (
	// ServiceStatusRunning indicates the service is currently running
	ServiceStatusRunning ServiceStatus = "RUNNING"
	// ServiceStatusStopped indicates the service is currently stopped
	ServiceStatusStopped ServiceStatus = "STOPPED"
	// ServiceStatusError indicates the service has encountered an error
	ServiceStatusError ServiceStatus = "ERROR"
	// ServiceStatusUnknown indicates the service status cannot be determined
	ServiceStatusUnknown ServiceStatus = "UNKNOWN"
)

// ServiceInfo contains metadata about a service
type ServiceInfo struct {
	Name        string        `json:"name"`
	Status      ServiceStatus `json:"status"`
	LastError   error         `json:"last_error,omitempty"`
	StartTime   time.Time     `json:"start_time,omitempty"`
	ErrorCount  int           `json:"error_count,omitempty"`
	CustomStats interface{}   `json:"custom_stats,omitempty"`
}
