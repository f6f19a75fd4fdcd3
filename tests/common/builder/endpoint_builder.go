//go:build unit || e2e

package builder

import (
	"time"

	domendpoint "hooklens/internal/domain/endpoint"
	reqdto "hooklens/internal/handler/dto/request"
	"hooklens/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	DefaultMaxQuota         = 10000
	DefaultMaxRetentionDays = 365
	DefaultExpiryWindow     = 60 * time.Minute
)

type EndpointBuilder struct {
	Name          string
	Description   string
	MaxRequests   int
	RetentionDays int
	IsPublic      bool
	OwnerID       *uuid.UUID
	ExpiresAt     *time.Time
	Now           time.Time
}

func NewEndpointBuilder() *EndpointBuilder {
	return &EndpointBuilder{
		Name:          "Test endpoint",
		Description:   "Endpoint used in tests",
		MaxRequests:   500,
		RetentionDays: 7,
		IsPublic:      false,
		Now:           time.Now(),
	}
}

func (b *EndpointBuilder) With(mutate func(*EndpointBuilder)) *EndpointBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EndpointBuilder) BuildDomain() (*domendpoint.Endpoint, error) {
	quota, err := domendpoint.NewQuota(b.MaxRequests, DefaultMaxQuota)
	if err != nil {
		return nil, err
	}
	retention, err := domendpoint.NewRetentionDays(b.RetentionDays, DefaultMaxRetentionDays)
	if err != nil {
		return nil, err
	}
	return domendpoint.NewEndpoint(
		b.Name, b.Description,
		quota, retention,
		b.IsPublic, b.OwnerID,
		b.ExpiresAt,
		b.Now, DefaultExpiryWindow,
	), nil
}

func (b *EndpointBuilder) BuildCreateRequestDTO() reqdto.CreateEndpointRequest {
	return reqdto.CreateEndpointRequest{
		Name:          b.Name,
		Description:   b.Description,
		MaxRequests:   b.MaxRequests,
		RetentionDays: b.RetentionDays,
		IsPublic:      b.IsPublic,
		ExpiresAt:     b.ExpiresAt,
	}
}

func (b *EndpointBuilder) BuildView() *queries.EndpointView {
	expiresAt := b.ExpiresAt
	if expiresAt == nil {
		t := b.Now.Add(DefaultExpiryWindow)
		expiresAt = &t
	}
	return &queries.EndpointView{
		ID:                  uuid.New(),
		Name:                b.Name,
		Description:         b.Description,
		OwnerID:             b.OwnerID,
		Status:              "active",
		MaxRequests:         int32(b.MaxRequests),
		CurrentRequestCount: 0,
		IsPublic:            b.IsPublic,
		AutoDeleteAfterDays: int32(b.RetentionDays),
		ExpiresAt:           expiresAt,
		CreatedAt:           b.Now,
		UpdatedAt:           b.Now,
	}
}
