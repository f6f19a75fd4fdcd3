package endpoint

import (
	"time"

	"github.com/google/uuid"
)

// Endpoint is a single capture target identified by an opaque token.
// The token doubles as the primary key; it is the only identifier ever
// exposed outside the store.
type Endpoint struct {
	id            uuid.UUID
	name          string
	description   string
	ownerID       *uuid.UUID
	status        Status
	maxRequests   Quota
	requestCount  int32
	isPublic      bool
	retentionDays RetentionDays
	expiresAt     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewEndpoint creates an active endpoint. A nil expiresAt falls back to
// now + defaultWindow; an explicit expiry must already be validated by
// the caller.
func NewEndpoint(
	name, description string,
	quota Quota,
	retention RetentionDays,
	isPublic bool,
	ownerID *uuid.UUID,
	expiresAt *time.Time,
	now time.Time,
	defaultWindow time.Duration,
) *Endpoint {
	if expiresAt == nil {
		t := now.Add(defaultWindow)
		expiresAt = &t
	}

	return &Endpoint{
		id:            uuid.New(),
		name:          name,
		description:   description,
		ownerID:       ownerID,
		status:        StatusActive,
		maxRequests:   quota,
		requestCount:  0,
		isPublic:      isPublic,
		retentionDays: retention,
		expiresAt:     expiresAt,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstructEndpoint(
	id uuid.UUID,
	name, description string,
	ownerID *uuid.UUID,
	status Status,
	maxRequests, requestCount int32,
	isPublic bool,
	retentionDays int32,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Endpoint {
	return &Endpoint{
		id:            id,
		name:          name,
		description:   description,
		ownerID:       ownerID,
		status:        status,
		maxRequests:   Quota(maxRequests),
		requestCount:  requestCount,
		isPublic:      isPublic,
		retentionDays: RetentionDays(retentionDays),
		expiresAt:     expiresAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// IsUsable reports whether a capture against this endpoint may proceed:
// active, inside the expiry window, and under quota.
func (e *Endpoint) IsUsable(now time.Time) bool {
	if !e.status.IsActive() {
		return false
	}
	if e.expiresAt != nil && !now.Before(*e.expiresAt) {
		return false
	}
	return e.requestCount < int32(e.maxRequests)
}

// IsExpiredByTime reports whether the expiry window has elapsed,
// regardless of the stored status.
func (e *Endpoint) IsExpiredByTime(now time.Time) bool {
	return e.expiresAt != nil && !now.Before(*e.expiresAt)
}

// Expire transitions active -> expired. Any other state is left alone,
// which makes the transition idempotent.
func (e *Endpoint) Expire(now time.Time) {
	if e.status.IsActive() {
		e.status = StatusExpired
		e.updatedAt = now
	}
}

// Disable transitions active -> disabled.
func (e *Endpoint) Disable(now time.Time) {
	if e.status.IsActive() {
		e.status = StatusDisabled
		e.updatedAt = now
	}
}

func (e *Endpoint) RequestsRemaining() int32 {
	remaining := int32(e.maxRequests) - e.requestCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DeletableAt is the moment the retention sweep may permanently drop the
// endpoint, counted from creation.
func (e *Endpoint) DeletableAt() time.Time {
	return e.createdAt.AddDate(0, 0, int(e.retentionDays))
}

// ShouldAutoDelete is true for terminal endpoints past their auto-delete
// horizon. Active endpoints are never deleted directly.
func (e *Endpoint) ShouldAutoDelete(now time.Time) bool {
	return !e.status.IsActive() && now.After(e.DeletableAt())
}

func (e *Endpoint) ID() uuid.UUID                { return e.id }
func (e *Endpoint) Name() string                 { return e.name }
func (e *Endpoint) Description() string          { return e.description }
func (e *Endpoint) OwnerID() *uuid.UUID          { return e.ownerID }
func (e *Endpoint) Status() Status               { return e.status }
func (e *Endpoint) MaxRequests() int32           { return int32(e.maxRequests) }
func (e *Endpoint) RequestCount() int32          { return e.requestCount }
func (e *Endpoint) IsPublic() bool               { return e.isPublic }
func (e *Endpoint) RetentionDays() int32         { return int32(e.retentionDays) }
func (e *Endpoint) ExpiresAt() *time.Time        { return e.expiresAt }
func (e *Endpoint) CreatedAt() time.Time         { return e.createdAt }
func (e *Endpoint) UpdatedAt() time.Time         { return e.updatedAt }
