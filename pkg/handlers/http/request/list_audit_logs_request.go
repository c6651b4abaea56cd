package request

import (
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
)

const (
	DefaultAuditWindow = 24 * time.Hour
	DefaultAuditLimit  = 100
	MaxAuditLimit      = 1000
)

type ListAuditLogsRequest struct {
	From     string `query:"from"`
	To       string `query:"to"`
	Action   string `query:"action"`
	TargetID string `query:"target_id"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

// Filter parses the RFC3339 range. A missing bound defaults to the last
// DefaultAuditWindow ending now.
func (r *ListAuditLogsRequest) Filter(now time.Time) (audit.Filter, error) {
	to := now.UTC()
	if r.To != "" {
		t, err := time.Parse(time.RFC3339, r.To)
		if err != nil {
			return audit.Filter{}, moderation.NewValidationError("to", "must be RFC3339")
		}
		to = t
	}
	from := to.Add(-DefaultAuditWindow)
	if r.From != "" {
		t, err := time.Parse(time.RFC3339, r.From)
		if err != nil {
			return audit.Filter{}, moderation.NewValidationError("from", "must be RFC3339")
		}
		from = t
	}
	if !from.Before(to) {
		return audit.Filter{}, moderation.NewValidationError("from", "must be before to")
	}
	if r.Limit < 0 || r.Offset < 0 {
		return audit.Filter{}, moderation.NewValidationError("limit", "limit and offset must not be negative")
	}
	limit := r.Limit
	if limit == 0 {
		limit = DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		limit = MaxAuditLimit
	}
	return audit.Filter{
		From:     from,
		To:       to,
		Action:   audit.Action(r.Action),
		TargetID: r.TargetID,
		Limit:    limit,
		Offset:   r.Offset,
	}, nil
}
