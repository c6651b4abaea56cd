package common

import "time"

const (
	SubmissionIDHeader = "X-Submission-Id"
	RetryAfterHeader   = "Retry-After"

	ProgressSweepInterval = time.Minute
)
