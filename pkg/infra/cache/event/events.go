package event

import "reflect"

type Event interface {
	Type() string
}

var SubmissionProgressEventType = "SubmissionProgressEvent"

var Registry = map[string]reflect.Type{
	SubmissionProgressEventType: reflect.TypeOf(SubmissionProgressEvent{}),
}
