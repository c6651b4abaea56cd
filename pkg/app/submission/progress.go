package submission

import (
	"context"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/infra/cache"
	"github.com/NeuralTrust/TrustPost/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustPost/pkg/infra/cache/event"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const subscriberBuffer = 16

//go:generate mockery --name=ProgressPublisher --dir=. --output=./mocks --filename=progress_publisher_mock.go --case=underscore --with-expecter
type ProgressPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

// ProgressHub fans out events to local observers of a submission and keeps
// the last event so late observers see the current state.
type ProgressHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[uuid.UUID]map[int]chan Event
	last   *cache.TTLMap[Event]
}

func NewProgressHub(retention time.Duration) *ProgressHub {
	return &ProgressHub{
		subs: make(map[uuid.UUID]map[int]chan Event),
		last: cache.NewTTLMap[Event](retention),
	}
}

// Publish never blocks; an observer that does not keep up misses events.
func (h *ProgressHub) Publish(_ context.Context, ev Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last.Set(ev.SubmissionID.String(), ev)
	for _, ch := range h.subs[ev.SubmissionID] {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

// Subscribe returns the event stream for a submission and a cancel func that
// must be called once the observer is gone.
func (h *ProgressHub) Subscribe(submissionID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	// The replayed event and the registration share the lock with Publish,
	// so an event is either in last or delivered live.
	h.mu.Lock()
	if ev, ok := h.last.Get(submissionID.String()); ok {
		ch <- ev
	}
	id := h.nextID
	h.nextID++
	if h.subs[submissionID] == nil {
		h.subs[submissionID] = make(map[int]chan Event)
	}
	h.subs[submissionID][id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[submissionID], id)
			if len(h.subs[submissionID]) == 0 {
				delete(h.subs, submissionID)
			}
			h.mu.Unlock()
		})
	}
}

// Sweep drops expired last-event entries.
func (h *ProgressHub) Sweep() int {
	return h.last.Sweep()
}

// redisProgressPublisher sends events over redis pub/sub so observers
// connected to any instance receive them.
type redisProgressPublisher struct {
	publisher cache.EventPublisher
}

func NewRedisProgressPublisher(publisher cache.EventPublisher) ProgressPublisher {
	return &redisProgressPublisher{publisher: publisher}
}

func (p *redisProgressPublisher) Publish(ctx context.Context, ev Event) error {
	return p.publisher.Publish(ctx, channel.SubmissionProgressChannel, ToProgressEvent(ev))
}

func ToProgressEvent(ev Event) event.SubmissionProgressEvent {
	return event.SubmissionProgressEvent{
		SubmissionID: ev.SubmissionID.String(),
		UserID:       ev.UserID,
		State:        string(ev.State),
		Reason:       string(ev.Reason),
		Message:      ev.Message,
		At:           ev.At,
	}
}

func FromProgressEvent(ev event.SubmissionProgressEvent) (Event, error) {
	id, err := uuid.Parse(ev.SubmissionID)
	if err != nil {
		return Event{}, err
	}
	return Event{
		SubmissionID: id,
		UserID:       ev.UserID,
		State:        State(ev.State),
		Reason:       Reason(ev.Reason),
		Message:      ev.Message,
		At:           ev.At,
	}, nil
}

type progressSubscriber struct {
	hub    *ProgressHub
	logger *logrus.Logger
}

// NewProgressSubscriber feeds progress events received over redis into the
// local hub.
func NewProgressSubscriber(hub *ProgressHub, logger *logrus.Logger) cache.EventSubscriber[event.SubmissionProgressEvent] {
	return &progressSubscriber{hub: hub, logger: logger}
}

func (s *progressSubscriber) OnEvent(ctx context.Context, ev event.SubmissionProgressEvent) error {
	local, err := FromProgressEvent(ev)
	if err != nil {
		s.logger.WithError(err).WithField("submission_id", ev.SubmissionID).Warn("dropping malformed progress event")
		return nil
	}
	return s.hub.Publish(ctx, local)
}
