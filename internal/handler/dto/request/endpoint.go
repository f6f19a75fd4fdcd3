package request

import (
	"strings"
	"time"
)

type CreateEndpointRequest struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	MaxRequests   int        `json:"max_requests"`
	RetentionDays int        `json:"retention_days"`
	IsPublic      bool       `json:"is_public"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

func (r CreateEndpointRequest) GetName() string {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return "Unnamed endpoint"
	}
	return name
}

type StartExportRequest struct {
	Format string `json:"format" binding:"required"`
}
