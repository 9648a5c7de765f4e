package models

import "fmt"

// Service is one monitored service as reported by a status repository.
type Service struct {
	// ID is derived from the owning source and the service name, so it is
	// stable across polls and unique within a single poll result.
	ID     string `json:"id"`
	Label  string `json:"label"`
	Name   string `json:"name"`
	Status Status `json:"status"`
	// ResponseTime is the last reported response time in milliseconds.
	// Nil when the source did not report one.
	ResponseTime *float64 `json:"response_time,omitempty"`
	// Uptime is the reported uptime percentage (0-100). Nil when absent.
	Uptime *float64 `json:"uptime,omitempty"`
}

// ServiceID builds the stable identifier for a service within a source.
func ServiceID(sourceKey, name string) string {
	return fmt.Sprintf("%s#%s", sourceKey, name)
}
