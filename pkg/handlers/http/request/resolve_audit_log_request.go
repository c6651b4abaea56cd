package request

import (
	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
)

type ResolveAuditLogRequest struct {
	Decision string `json:"decision"` // @required approved or rejected
	Reason   string `json:"reason"`
}

func (r *ResolveAuditLogRequest) Validate() error {
	switch audit.Action(r.Decision) {
	case audit.ActionApproved, audit.ActionRejected:
		return nil
	}
	return moderation.NewValidationError("decision", "must be approved or rejected")
}
