package auditlogs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	"github.com/NeuralTrust/TrustPost/pkg/domain/audit/mocks"
	"github.com/NeuralTrust/TrustPost/pkg/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingExporter struct {
	mu      sync.Mutex
	entries []*audit.Entry
	err     error
	closed  bool
}

func (e *recordingExporter) Name() string { return "recording" }

func (e *recordingExporter) Export(_ context.Context, entry *audit.Entry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = append(e.entries, entry)
	return e.err
}

func (e *recordingExporter) Close() { e.closed = true }

type recordingResolver struct {
	mu      sync.Mutex
	entries []*audit.Entry
	err     error
}

func (r *recordingResolver) ApplyResolution(_ context.Context, entry *audit.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return r.err
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestService_Record_FillsDefaultsAndClientInfo(t *testing.T) {
	repo := mocks.NewRepository(t)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(repo, testLogger(), WithClock(func() time.Time { return fixed }))

	var stored *audit.Entry
	repo.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry *audit.Entry) { stored = entry }).
		Return(nil)

	ctx := utils.WithClientInfo(context.Background(), utils.ClientInfo{
		IP:        "192.0.2.10",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	})
	err := svc.Record(ctx, &audit.Entry{
		Action:     audit.ActionRejected,
		TargetType: audit.TargetPost,
		TargetID:   "sub-1",
		ActorID:    "user-1",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, fixed, stored.CreatedAt)
	assert.Equal(t, "192.0.2.10", stored.ClientIP)
	assert.NotEmpty(t, stored.DeviceFamily)
	assert.NotNil(t, stored.Categories)
}

func TestService_Record_RepositoryError(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := NewService(repo, testLogger())
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := svc.Record(context.Background(), &audit.Entry{Action: audit.ActionApproved})
	assert.ErrorContains(t, err, "db down")
}

func TestService_Record_ExportsAfterPersisting(t *testing.T) {
	repo := mocks.NewRepository(t)
	exporter := &recordingExporter{}
	svc := NewService(repo, testLogger(), WithExporter(exporter, 4))
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.Record(context.Background(), &audit.Entry{Action: audit.ActionApproved, TargetID: "a"}))
	require.NoError(t, svc.Close())

	assert.True(t, exporter.closed)
	require.Len(t, exporter.entries, 1)
	assert.Equal(t, "a", exporter.entries[0].TargetID)
}

func TestService_Record_ExportFailureDoesNotFailRecord(t *testing.T) {
	repo := mocks.NewRepository(t)
	exporter := &recordingExporter{err: errors.New("broker down")}
	svc := NewService(repo, testLogger(), WithExporter(exporter, 4))
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, svc.Record(context.Background(), &audit.Entry{Action: audit.ActionApproved}))
	assert.NoError(t, svc.Close())
}

func TestService_List_RejectsInvertedRange(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := NewService(repo, testLogger())

	now := time.Now()
	_, err := svc.List(context.Background(), audit.Filter{From: now, To: now.Add(-time.Hour)})
	assert.Error(t, err)
}

func TestService_List_DelegatesToRepository(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := NewService(repo, testLogger())

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	filter := audit.Filter{From: from, To: to}
	repo.EXPECT().ListByDateRange(mock.Anything, filter).Return([]audit.Entry{{Action: audit.ActionApproved}}, nil)

	entries, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService_Resolve_AppendsResolutionEntry(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := NewService(repo, testLogger())

	originalID := uuid.New()
	original := &audit.Entry{
		ID:         originalID,
		Action:     audit.ActionNeedsReview,
		TargetType: audit.TargetPost,
		TargetID:   "sub-9",
		Categories: []string{"harassment"},
		Confidence: 0.45,
	}
	repo.EXPECT().Get(mock.Anything, originalID).Return(original, nil)
	repo.EXPECT().ListByDateRange(mock.Anything, mock.MatchedBy(func(f audit.Filter) bool {
		return f.ResolvesID != nil && *f.ResolvesID == originalID
	})).Return(nil, nil)

	var appended *audit.Entry
	repo.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *audit.Entry) { appended = e }).
		Return(nil)

	entry, err := svc.Resolve(context.Background(), originalID, Resolution{
		ReviewerID: "mod-1",
		Decision:   audit.ActionApproved,
		Reason:     "satire",
	})
	require.NoError(t, err)
	assert.Same(t, appended, entry)
	assert.Equal(t, audit.ActionReviewResolved, entry.Action)
	assert.True(t, entry.Resolved)
	require.NotNil(t, entry.ResolvesID)
	assert.Equal(t, originalID, *entry.ResolvesID)
	assert.Equal(t, "sub-9", entry.TargetID)
	assert.Equal(t, audit.ActionNeedsReview, original.Action)
}

func TestService_Resolve_OnlyPendingEntries(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := NewService(repo, testLogger())

	id := uuid.New()
	repo.EXPECT().Get(mock.Anything, id).Return(&audit.Entry{ID: id, Action: audit.ActionRejected}, nil)

	_, err := svc.Resolve(context.Background(), id, Resolution{Decision: audit.ActionApproved})
	assert.ErrorIs(t, err, ErrNotReviewable)
}

func TestService_Resolve_AlreadyResolved(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := NewService(repo, testLogger())

	id := uuid.New()
	repo.EXPECT().Get(mock.Anything, id).Return(&audit.Entry{ID: id, Action: audit.ActionNeedsReview}, nil)
	repo.EXPECT().ListByDateRange(mock.Anything, mock.Anything).Return([]audit.Entry{{Action: audit.ActionReviewResolved}}, nil)

	_, err := svc.Resolve(context.Background(), id, Resolution{Decision: audit.ActionRejected})
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestService_Resolve_InvalidDecision(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := NewService(repo, testLogger())

	_, err := svc.Resolve(context.Background(), uuid.New(), Resolution{Decision: audit.ActionRateLimited})
	assert.Error(t, err)
}

func pendingEntry(id uuid.UUID) *audit.Entry {
	return &audit.Entry{
		ID:         id,
		Action:     audit.ActionNeedsReview,
		TargetType: audit.TargetPost,
		TargetID:   uuid.New().String(),
	}
}

func TestService_Resolve_AppliesDecisionToContent(t *testing.T) {
	repo := mocks.NewRepository(t)
	resolver := &recordingResolver{}
	svc := NewService(repo, testLogger(), WithContentResolver(resolver))

	id := uuid.New()
	original := pendingEntry(id)
	repo.EXPECT().Get(mock.Anything, id).Return(original, nil)
	repo.EXPECT().ListByDateRange(mock.Anything, mock.Anything).Return(nil, nil)
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	entry, err := svc.Resolve(context.Background(), id, Resolution{ReviewerID: "mod-1", Decision: audit.ActionRejected})
	require.NoError(t, err)
	require.Len(t, resolver.entries, 1)
	assert.Same(t, entry, resolver.entries[0])
	assert.Equal(t, string(audit.ActionRejected), resolver.entries[0].Source)
	assert.Equal(t, original.TargetID, resolver.entries[0].TargetID)
}

func TestService_Resolve_LosingConcurrentResolutionIsRejected(t *testing.T) {
	repo := mocks.NewRepository(t)
	resolver := &recordingResolver{}
	svc := NewService(repo, testLogger(), WithContentResolver(resolver))

	id := uuid.New()
	repo.EXPECT().Get(mock.Anything, id).Return(pendingEntry(id), nil)
	repo.EXPECT().ListByDateRange(mock.Anything, mock.Anything).Return(nil, nil)
	repo.EXPECT().Append(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: %s", audit.ErrDuplicateResolution, id))

	_, err := svc.Resolve(context.Background(), id, Resolution{ReviewerID: "mod-2", Decision: audit.ActionApproved})
	assert.ErrorIs(t, err, ErrAlreadyResolved)
	assert.Empty(t, resolver.entries)
}

func TestService_Resolve_ReappliesStoredResolution(t *testing.T) {
	repo := mocks.NewRepository(t)
	resolver := &recordingResolver{}
	svc := NewService(repo, testLogger(), WithContentResolver(resolver))

	id := uuid.New()
	stored := audit.Entry{ID: uuid.New(), Action: audit.ActionReviewResolved, Source: string(audit.ActionApproved), ResolvesID: &id}
	repo.EXPECT().Get(mock.Anything, id).Return(pendingEntry(id), nil)
	repo.EXPECT().ListByDateRange(mock.Anything, mock.Anything).Return([]audit.Entry{stored}, nil)

	_, err := svc.Resolve(context.Background(), id, Resolution{Decision: audit.ActionRejected})
	assert.ErrorIs(t, err, ErrAlreadyResolved)
	require.Len(t, resolver.entries, 1)
	assert.Equal(t, stored.ID, resolver.entries[0].ID)
	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestService_Resolve_ResolverErrorIsReturned(t *testing.T) {
	repo := mocks.NewRepository(t)
	svc := NewService(repo, testLogger(), WithContentResolver(&recordingResolver{err: errors.New("db down")}))

	id := uuid.New()
	repo.EXPECT().Get(mock.Anything, id).Return(pendingEntry(id), nil)
	repo.EXPECT().ListByDateRange(mock.Anything, mock.Anything).Return(nil, nil)
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Resolve(context.Background(), id, Resolution{Decision: audit.ActionApproved})
	assert.ErrorContains(t, err, "db down")
}
