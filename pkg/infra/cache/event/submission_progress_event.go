package event

import "time"

type SubmissionProgressEvent struct {
	SubmissionID string    `json:"submission_id"`
	UserID       string    `json:"user_id"`
	State        string    `json:"state"`
	Reason       string    `json:"reason,omitempty"`
	Message      string    `json:"message,omitempty"`
	At           time.Time `json:"at"`
}

func (e SubmissionProgressEvent) Type() string {
	return SubmissionProgressEventType
}
