package endpoint

import (
	"fmt"

	"hooklens/internal/pkg/errs"
)

// Status is the endpoint lifecycle state. Transitions only ever move away
// from StatusActive, never back.
type Status string

const (
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusDisabled Status = "disabled"
)

func (s Status) IsActive() bool {
	return s == StatusActive
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusActive, StatusExpired, StatusDisabled:
		return Status(raw), nil
	}
	return "", errs.New(fmt.Sprintf("unknown endpoint status %q", raw))
}

// Quota is the maximum number of requests an endpoint accepts before it
// expires. The upper bound is deployment configuration, so it is an
// argument rather than a package constant.
type Quota int32

func NewQuota(value, max int) (Quota, error) {
	if value < 1 || value > max {
		return 0, errs.Mark(
			errs.New(fmt.Sprintf("max requests must be between 1 and %d, got %d", max, value)),
			errs.ErrInvalidQuota,
		)
	}
	return Quota(value), nil
}

func (q Quota) Int32() int32 { return int32(q) }

// RetentionDays is the auto-delete horizon counted from endpoint creation.
type RetentionDays int32

func NewRetentionDays(value, max int) (RetentionDays, error) {
	if value < 1 || value > max {
		return 0, errs.Mark(
			errs.New(fmt.Sprintf("retention days must be between 1 and %d, got %d", max, value)),
			errs.ErrInvalidRetention,
		)
	}
	return RetentionDays(value), nil
}

func (r RetentionDays) Int32() int32 { return int32(r) }
