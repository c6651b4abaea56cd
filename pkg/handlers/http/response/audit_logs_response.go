package response

import (
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
)

type ListAuditLogsResponse struct {
	From    time.Time     `json:"from"`
	To      time.Time     `json:"to"`
	Count   int           `json:"count"`
	Entries []audit.Entry `json:"entries"`
}

type ModerateTextResponse struct {
	Decision   string             `json:"decision"`
	Categories []string           `json:"categories"`
	Scores     map[string]float64 `json:"scores,omitempty"`
	Confidence float64            `json:"confidence"`
	Reasoning  string             `json:"reasoning,omitempty"`
	Source     string             `json:"source"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
