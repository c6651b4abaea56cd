package websocket

import "time"

type FrameType string

const (
	FrameProgress FrameType = "progress"
	FrameError    FrameType = "error"
	FrameClosed   FrameType = "closed"
)

// Frame is the JSON envelope written to progress stream clients.
type Frame struct {
	Type         FrameType `json:"type"`
	SubmissionID string    `json:"submission_id,omitempty"`
	State        string    `json:"state,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	Message      string    `json:"message,omitempty"`
	Terminal     bool      `json:"terminal,omitempty"`
	At           time.Time `json:"at"`
}

func ErrorFrame(submissionID, message string) Frame {
	return Frame{
		Type:         FrameError,
		SubmissionID: submissionID,
		Message:      message,
		At:           time.Now().UTC(),
	}
}
