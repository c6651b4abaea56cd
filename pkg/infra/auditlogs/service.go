package auditlogs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustPost/pkg/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultExportQueueSize = 1024
	exportTimeout          = 10 * time.Second
)

var (
	ErrAlreadyResolved = errors.New("audit entry already resolved")
	ErrNotReviewable   = errors.New("audit entry is not pending review")
)

// Exporter ships audit entries to an external sink after they are persisted.
type Exporter interface {
	Name() string
	Export(ctx context.Context, entry *audit.Entry) error
	Close()
}

// ContentResolver applies a review_resolved entry to the reviewed content.
type ContentResolver interface {
	ApplyResolution(ctx context.Context, entry *audit.Entry) error
}

type Resolution struct {
	ReviewerID string
	Decision   audit.Action
	Reason     string
}

//go:generate mockery --name=Service --dir=. --output=mocks/ --filename=service_mock.go --case=underscore --with-expecter
type Service interface {
	Record(ctx context.Context, entry *audit.Entry) error
	Get(ctx context.Context, id uuid.UUID) (*audit.Entry, error)
	List(ctx context.Context, filter audit.Filter) ([]audit.Entry, error)
	Resolve(ctx context.Context, id uuid.UUID, res Resolution) (*audit.Entry, error)
	Close() error
}

type service struct {
	repo     audit.Repository
	exporter Exporter
	resolver ContentResolver
	logger   *logrus.Logger
	now      func() time.Time

	queue     chan *audit.Entry
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type Option func(*service)

func WithExporter(exporter Exporter, queueSize int) Option {
	return func(s *service) {
		if exporter == nil {
			return
		}
		if queueSize <= 0 {
			queueSize = defaultExportQueueSize
		}
		s.exporter = exporter
		s.queue = make(chan *audit.Entry, queueSize)
	}
}

func WithContentResolver(resolver ContentResolver) Option {
	return func(s *service) {
		s.resolver = resolver
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func NewService(repo audit.Repository, logger *logrus.Logger, opts ...Option) Service {
	s := &service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.exporter != nil {
		s.wg.Add(1)
		go s.exportLoop()
	}
	return s
}

// Record persists the entry and queues it for export. Client details are
// taken from the context when present.
func (s *service) Record(ctx context.Context, entry *audit.Entry) error {
	if entry.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate audit entry id: %w", err)
		}
		entry.ID = id
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now().UTC()
	}
	if info, ok := utils.ClientInfoFromContext(ctx); ok {
		if entry.ClientIP == "" {
			entry.ClientIP = info.IP
		}
		if entry.UserAgent == "" {
			entry.UserAgent = info.UserAgent
		}
	}
	if entry.DeviceFamily == "" {
		entry.DeviceFamily = utils.DeviceFamily(entry.UserAgent)
	}
	if entry.Categories == nil {
		entry.Categories = []string{}
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"action":    entry.Action,
			"target_id": entry.TargetID,
		}).Error("failed to append audit entry")
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"audit_id":    entry.ID.String(),
		"action":      entry.Action,
		"target_type": entry.TargetType,
		"target_id":   entry.TargetID,
		"actor_id":    entry.ActorID,
		"reason":      entry.Reason,
		"confidence":  entry.Confidence,
		"source":      entry.Source,
	}).Info("audit entry recorded")

	s.enqueue(entry)
	return nil
}

func (s *service) enqueue(entry *audit.Entry) {
	if s.queue == nil {
		return
	}
	cp := *entry
	select {
	case s.queue <- &cp:
	default:
		prometheus.AuditExportErrors.Inc()
		s.logger.WithField("audit_id", entry.ID.String()).Warn("audit export queue full, entry not exported")
	}
}

func (s *service) exportLoop() {
	defer s.wg.Done()
	for entry := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		if err := s.exporter.Export(ctx, entry); err != nil {
			prometheus.AuditExportErrors.Inc()
			s.logger.WithError(err).WithFields(logrus.Fields{
				"audit_id": entry.ID.String(),
				"exporter": s.exporter.Name(),
			}).Error("failed to export audit entry")
		}
		cancel()
	}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*audit.Entry, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, filter audit.Filter) ([]audit.Entry, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && !filter.From.Before(filter.To) {
		return nil, fmt.Errorf("invalid range: from %s is not before to %s",
			filter.From.Format(time.RFC3339), filter.To.Format(time.RFC3339))
	}
	return s.repo.ListByDateRange(ctx, filter)
}

// Resolve appends a review_resolved entry pointing at a needs_review entry
// and hands it to the content resolver. The original entry is left
// untouched. A unique index on resolves_id lets only one resolution win.
func (s *service) Resolve(ctx context.Context, id uuid.UUID, res Resolution) (*audit.Entry, error) {
	if res.Decision != audit.ActionApproved && res.Decision != audit.ActionRejected {
		return nil, fmt.Errorf("invalid resolution decision %q", res.Decision)
	}
	original, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if original.Action != audit.ActionNeedsReview {
		return nil, fmt.Errorf("audit entry %s has action %s: %w", id, original.Action, ErrNotReviewable)
	}
	prior, err := s.repo.ListByDateRange(ctx, audit.Filter{
		Action:     audit.ActionReviewResolved,
		ResolvesID: &original.ID,
		Limit:      1,
	})
	if err != nil {
		return nil, err
	}
	if len(prior) > 0 {
		// A previous attempt may have stopped between append and apply.
		if err := s.apply(ctx, &prior[0]); err != nil {
			s.logger.WithError(err).WithField("audit_id", id.String()).Warn("failed to reapply stored resolution")
		}
		return nil, ErrAlreadyResolved
	}

	resolvesID := original.ID
	entry := &audit.Entry{
		Action:     audit.ActionReviewResolved,
		TargetType: original.TargetType,
		TargetID:   original.TargetID,
		ActorID:    res.ReviewerID,
		Reason:     res.Reason,
		Categories: original.Categories,
		Confidence: original.Confidence,
		Source:     string(res.Decision),
		Resolved:   true,
		ResolvesID: &resolvesID,
	}
	if err := s.Record(ctx, entry); err != nil {
		if errors.Is(err, audit.ErrDuplicateResolution) {
			return nil, ErrAlreadyResolved
		}
		return nil, err
	}
	if err := s.apply(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) apply(ctx context.Context, entry *audit.Entry) error {
	if s.resolver == nil {
		return nil
	}
	if err := s.resolver.ApplyResolution(ctx, entry); err != nil {
		return fmt.Errorf("failed to apply resolution to %s %s: %w", entry.TargetType, entry.TargetID, err)
	}
	return nil
}

func (s *service) Close() error {
	s.closeOnce.Do(func() {
		if s.queue != nil {
			close(s.queue)
			s.wg.Wait()
		}
		if s.exporter != nil {
			s.exporter.Close()
		}
	})
	return nil
}
