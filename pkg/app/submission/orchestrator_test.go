package submission_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/app/mediasafety"
	mediaMocks "github.com/NeuralTrust/TrustPost/pkg/app/mediasafety/mocks"
	"github.com/NeuralTrust/TrustPost/pkg/app/submission"
	"github.com/NeuralTrust/TrustPost/pkg/app/submission/mocks"
	textmodMocks "github.com/NeuralTrust/TrustPost/pkg/app/textmod/mocks"
	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	domain "github.com/NeuralTrust/TrustPost/pkg/domain/errors"
	"github.com/NeuralTrust/TrustPost/pkg/domain/media"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustPost/pkg/domain/post"
	postMocks "github.com/NeuralTrust/TrustPost/pkg/domain/post/mocks"
	auditMocks "github.com/NeuralTrust/TrustPost/pkg/infra/auditlogs/mocks"
	"github.com/NeuralTrust/TrustPost/pkg/infra/ratelimit"
	limiterMocks "github.com/NeuralTrust/TrustPost/pkg/infra/ratelimit/mocks"
	"github.com/NeuralTrust/TrustPost/pkg/infra/storage"
	storageMocks "github.com/NeuralTrust/TrustPost/pkg/infra/storage/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	limiter   *limiterMocks.Limiter
	prefilter *mediaMocks.Prefilter
	storage   *storageMocks.Storage
	engine    *textmodMocks.Engine
	posts     *postMocks.Repository
	audit     *auditMocks.Service
	progress  *mocks.ProgressPublisher

	mu       sync.Mutex
	states   []submission.State
	calls    []string
	stored   map[uuid.UUID]*post.Post
	comments map[uuid.UUID]*post.Comment

	orchestrator submission.Orchestrator
}

func newFixture(t *testing.T) *fixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	f := &fixture{
		limiter:   limiterMocks.NewLimiter(t),
		prefilter: mediaMocks.NewPrefilter(t),
		storage:   storageMocks.NewStorage(t),
		engine:    textmodMocks.NewEngine(t),
		posts:     postMocks.NewRepository(t),
		audit:     auditMocks.NewService(t),
		progress:  mocks.NewProgressPublisher(t),
		stored:    map[uuid.UUID]*post.Post{},
		comments:  map[uuid.UUID]*post.Comment{},
	}
	f.posts.EXPECT().FindPostBySubmission(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*post.Post, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if p, ok := f.stored[id]; ok {
				return p, nil
			}
			return nil, domain.NewNotFoundError("post submission", id)
		}).Maybe()
	f.posts.EXPECT().FindCommentBySubmission(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*post.Comment, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if c, ok := f.comments[id]; ok {
				return c, nil
			}
			return nil, domain.NewNotFoundError("comment submission", id)
		}).Maybe()
	f.progress.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ev submission.Event) error {
			f.mu.Lock()
			f.states = append(f.states, ev.State)
			f.mu.Unlock()
			return nil
		}).Maybe()

	f.orchestrator = submission.NewOrchestrator(
		submission.Config{RateLimitEnabled: true, MaxFilesPerPost: 4},
		f.limiter,
		f.prefilter,
		f.storage,
		f.engine,
		f.posts,
		f.audit,
		f.progress,
		submission.NewGuard(nil),
		logger,
	)
	return f
}

func (f *fixture) track(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fixture) store(p *post.Post) {
	f.mu.Lock()
	f.stored[p.SubmissionID] = p
	f.mu.Unlock()
}

func (f *fixture) allowRate() {
	f.limiter.EXPECT().Check(mock.Anything, "post", "u1").Return(ratelimit.Status{Limit: 5}, nil).Maybe()
	f.limiter.EXPECT().Record(mock.Anything, "post", "u1").Return(nil).Maybe()
}

func (f *fixture) expectAudit(action audit.Action) {
	f.audit.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *audit.Entry) bool {
		return e.Action == action
	})).Return(nil).Once()
}

func approved() *moderation.Result {
	return &moderation.Result{
		Decision:   moderation.DecisionApproved,
		Confidence: 0.95,
		Source:     moderation.SourceAI,
		Usage:      &moderation.Usage{Model: "gpt-4o-mini", PromptTokens: 120, CompletionTokens: 30, CostUSD: 0.0001},
	}
}

func candidate(t *testing.T, name, contentType string) *media.Candidate {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("media-bytes"), 0600))
	return media.NewCandidate(name, path, contentType, 11)
}

func TestSubmitPost_TextOnlyApproved(t *testing.T) {
	f := newFixture(t)
	f.allowRate()
	f.engine.EXPECT().Moderate(mock.Anything, moderation.Request{
		Text:        "Hello\n\nA friendly post",
		ContentType: moderation.ContentTypePost,
		AuthorID:    "u1",
	}).Return(approved(), nil).Once()
	f.posts.EXPECT().PublishPost(mock.Anything, mock.MatchedBy(func(p *post.Post) bool {
		return p.Status == post.StatusPublished && p.AuthorID == "u1" && len(p.MediaKeys) == 0
	})).Return(true, nil).Once()
	f.audit.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *audit.Entry) bool {
		return e.Action == audit.ActionApproved && e.Model == "gpt-4o-mini" && e.TotalTokens == 150 && e.ActorID == "u1"
	})).Return(nil).Once()

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		AuthorID: "u1",
		Title:    " Hello ",
		Content:  "A friendly post",
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Empty(t, out.Reason)
	assert.NotNil(t, out.ID)
	assert.NotEqual(t, uuid.Nil, out.SubmissionID)
	assert.Equal(t, []submission.State{
		submission.StateModeratingText,
		submission.StatePublishing,
		submission.StateDone,
	}, f.states)
}

func TestSubmitPost_MediaPipelineOrder(t *testing.T) {
	f := newFixture(t)
	f.limiter.EXPECT().Check(mock.Anything, "post", "u1").Return(ratelimit.Status{Limit: 5}, nil).Once()
	f.limiter.EXPECT().Record(mock.Anything, "post", "u1").
		RunAndReturn(func(context.Context, string, string) error { f.track("record"); return nil }).Once()

	img := candidate(t, "photo.png", "image/png")
	clip := candidate(t, "clip.mp4", "video/mp4")
	files := []*media.Candidate{img, clip}

	f.prefilter.EXPECT().Validate(mock.Anything, files).
		RunAndReturn(func(context.Context, []*media.Candidate) error { f.track("validate"); return nil }).Once()
	f.prefilter.EXPECT().NeedsCompression(files).Return(true).Once()
	f.prefilter.EXPECT().Compress(mock.Anything, files).
		RunAndReturn(func(context.Context, []*media.Candidate) error { f.track("compress"); return nil }).Once()
	f.prefilter.EXPECT().Scan(mock.Anything, files).
		RunAndReturn(func(context.Context, []*media.Candidate) (*mediasafety.ScanResult, error) {
			f.track("scan")
			return &mediasafety.ScanResult{Scanned: 2}, nil
		}).Once()

	for _, c := range files {
		key := "media/u1/" + c.Filename
		up := &storage.PresignedUpload{Key: key, URL: "https://bucket/" + key, Method: "PUT"}
		f.storage.EXPECT().NewKey("u1", c.Filename).Return(key).Once()
		f.storage.EXPECT().PresignUpload(mock.Anything, key, c.ContentType).Return(up, nil).Once()
		f.storage.EXPECT().Upload(mock.Anything, up, mock.Anything, c.Size).
			RunAndReturn(func(context.Context, *storage.PresignedUpload, io.Reader, int64) error {
				f.track("upload")
				return nil
			}).Once()
	}

	f.engine.EXPECT().Moderate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, moderation.Request) (*moderation.Result, error) {
			f.track("moderate")
			return approved(), nil
		}).Once()
	f.posts.EXPECT().PublishPost(mock.Anything, mock.MatchedBy(func(p *post.Post) bool {
		return len(p.MediaKeys) == 2 && p.MediaKeys[0] == "media/u1/photo.png"
	})).RunAndReturn(func(context.Context, *post.Post) (bool, error) {
		f.track("publish")
		return true, nil
	}).Once()
	f.expectAudit(audit.ActionApproved)

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		AuthorID: "u1",
		Title:    "Trip",
		Content:  "Pictures from the weekend",
		Media:    files,
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, []string{"media/u1/photo.png", "media/u1/clip.mp4"}, out.MediaKeys)
	assert.Equal(t, []string{"validate", "compress", "scan", "upload", "upload", "record", "moderate", "publish"}, f.calls)
	assert.Equal(t, []submission.State{
		submission.StateValidatingMedia,
		submission.StateCompressingMedia,
		submission.StateSafetyScanningMedia,
		submission.StateUploadingMedia,
		submission.StateModeratingText,
		submission.StatePublishing,
		submission.StateDone,
	}, f.states)
	assert.True(t, img.Released())
	assert.True(t, clip.Released())
}

func TestSubmitPost_FlaggedMediaIsNeverUploaded(t *testing.T) {
	f := newFixture(t)
	f.limiter.EXPECT().Check(mock.Anything, "post", "u1").Return(ratelimit.Status{Limit: 5}, nil).Once()

	clip := candidate(t, "clip.mp4", "video/mp4")
	files := []*media.Candidate{clip}
	f.prefilter.EXPECT().Validate(mock.Anything, files).Return(nil).Once()
	f.prefilter.EXPECT().NeedsCompression(files).Return(false).Once()
	f.prefilter.EXPECT().Scan(mock.Anything, files).
		RunAndReturn(func(context.Context, []*media.Candidate) (*mediasafety.ScanResult, error) {
			clip.Flag("skin_ratio")
			return &mediasafety.ScanResult{
				Flagged: clip,
				Verdict: media.VideoVerdict{Flagged: true, MaxScore: 0.4, FlaggedFrameCount: 1},
				Scanned: 1,
			}, nil
		}).Once()
	f.expectAudit(audit.ActionMediaFlagged)

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		AuthorID: "u1",
		Title:    "Clip",
		Content:  "watch this",
		Media:    files,
	})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, submission.ReasonContentRejected, out.Reason)
	assert.Equal(t, submission.StateRejected, out.State)
	f.storage.AssertNotCalled(t, "PresignUpload", mock.Anything, mock.Anything, mock.Anything)
	f.engine.AssertNotCalled(t, "Moderate", mock.Anything, mock.Anything)
	f.limiter.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
	assert.True(t, clip.Released())
}

func TestSubmitPost_ValidationFailureStopsBeforeScan(t *testing.T) {
	f := newFixture(t)
	f.allowRate()

	clip := candidate(t, "long.mp4", "video/mp4")
	files := []*media.Candidate{clip}
	f.prefilter.EXPECT().Validate(mock.Anything, files).
		Return(moderation.NewValidationError("long.mp4", "video is 1m30s long, limit is 1m0s")).Once()
	f.expectAudit(audit.ActionValidationFailed)

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		AuthorID: "u1",
		Title:    "Long",
		Media:    files,
	})
	require.NoError(t, err)
	assert.Equal(t, submission.ReasonValidationFailed, out.Reason)
	assert.Contains(t, out.Message, "limit is 1m0s")
	f.prefilter.AssertNotCalled(t, "Scan", mock.Anything, mock.Anything)
	f.engine.AssertNotCalled(t, "Moderate", mock.Anything, mock.Anything)
}

func TestSubmitPost_TooManyFiles(t *testing.T) {
	f := newFixture(t)
	f.allowRate()
	f.expectAudit(audit.ActionValidationFailed)

	files := make([]*media.Candidate, 5)
	for i := range files {
		files[i] = candidate(t, "p.png", "image/png")
	}
	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{AuthorID: "u1", Media: files})
	require.NoError(t, err)
	assert.Equal(t, submission.ReasonValidationFailed, out.Reason)
	f.prefilter.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestSubmitPost_NeedsReviewIsStoredPending(t *testing.T) {
	f := newFixture(t)
	f.allowRate()
	f.engine.EXPECT().Moderate(mock.Anything, mock.Anything).Return(&moderation.Result{
		Decision:   moderation.DecisionNeedsReview,
		Categories: []moderation.Category{moderation.CategoryHarassment},
		Confidence: 0.5,
		Source:     moderation.SourceAI,
	}, nil).Once()
	f.posts.EXPECT().PublishPost(mock.Anything, mock.MatchedBy(func(p *post.Post) bool {
		return p.Status == post.StatusPendingReview
	})).Return(true, nil).Once()
	f.expectAudit(audit.ActionNeedsReview)

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		AuthorID: "u1",
		Title:    "Borderline",
		Content:  "you people are the worst",
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, submission.ReasonPendingReview, out.Reason)
	assert.Equal(t, submission.StateDone, out.State)
}

func TestSubmitPost_RejectedTextIsNotPublished(t *testing.T) {
	f := newFixture(t)
	f.allowRate()
	f.engine.EXPECT().Moderate(mock.Anything, mock.Anything).Return(&moderation.Result{
		Decision:   moderation.DecisionRejected,
		Categories: []moderation.Category{moderation.CategorySpam, moderation.CategoryHateSpeech},
		Confidence: 0.9,
		Source:     moderation.SourceRules,
	}, nil).Once()
	f.expectAudit(audit.ActionRejected)

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		AuthorID: "u1",
		Title:    "Deal",
		Content:  "buy followers now",
	})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, submission.ReasonContentRejected, out.Reason)
	assert.Contains(t, out.Message, "spam, hate speech")
	f.posts.AssertNotCalled(t, "PublishPost", mock.Anything, mock.Anything)
}

func TestSubmitPost_ReplayPublishesOnce(t *testing.T) {
	f := newFixture(t)
	f.limiter.EXPECT().Check(mock.Anything, "post", "u1").Return(ratelimit.Status{Limit: 5}, nil).Once()
	f.limiter.EXPECT().Record(mock.Anything, "post", "u1").Return(nil).Once()
	f.engine.EXPECT().Moderate(mock.Anything, mock.Anything).Return(approved(), nil).Once()
	f.posts.EXPECT().PublishPost(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p *post.Post) (bool, error) {
			f.store(p)
			return true, nil
		}).Once()
	f.expectAudit(audit.ActionApproved)

	submissionID := uuid.New()
	req := submission.PostRequest{SubmissionID: submissionID, AuthorID: "u1", Title: "Once", Content: "only once please"}
	first, err := f.orchestrator.SubmitPost(context.Background(), req)
	require.NoError(t, err)
	second, err := f.orchestrator.SubmitPost(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	require.NotNil(t, first.ID)
	require.NotNil(t, second.ID)
	assert.Equal(t, *first.ID, *second.ID)
	assert.Equal(t, submissionID, second.SubmissionID)
	assert.Empty(t, second.Reason)
}

func TestSubmitPost_ReplayOfHeldSubmissionStaysPending(t *testing.T) {
	f := newFixture(t)
	submissionID := uuid.New()
	postID := uuid.New()
	f.store(&post.Post{
		ID:           postID,
		SubmissionID: submissionID,
		AuthorID:     "u1",
		Status:       post.StatusPendingReview,
	})

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		SubmissionID: submissionID,
		AuthorID:     "u1",
		Title:        "Borderline",
		Content:      "you people are the worst",
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, submission.ReasonPendingReview, out.Reason)
	assert.Equal(t, submission.StateDone, out.State)
	require.NotNil(t, out.ID)
	assert.Equal(t, postID, *out.ID)
	f.engine.AssertNotCalled(t, "Moderate", mock.Anything, mock.Anything)
	f.limiter.AssertNotCalled(t, "Check", mock.Anything, mock.Anything, mock.Anything)
	f.limiter.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
	f.posts.AssertNotCalled(t, "PublishPost", mock.Anything, mock.Anything)
}

func TestSubmitPost_ReplayOfRejectedSubmission(t *testing.T) {
	f := newFixture(t)
	submissionID := uuid.New()
	f.store(&post.Post{ID: uuid.New(), SubmissionID: submissionID, AuthorID: "u1", Status: post.StatusRejected})

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		SubmissionID: submissionID,
		AuthorID:     "u1",
		Content:      "again",
	})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, submission.StateRejected, out.State)
	assert.Equal(t, submission.ReasonContentRejected, out.Reason)
}

func TestSubmitPost_SubmissionIDOfAnotherUserIsRejected(t *testing.T) {
	f := newFixture(t)
	submissionID := uuid.New()
	f.store(&post.Post{ID: uuid.New(), SubmissionID: submissionID, AuthorID: "u2", Status: post.StatusPublished})

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		SubmissionID: submissionID,
		AuthorID:     "u1",
		Content:      "mine now",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, moderation.ErrSubmissionIDConflict)
	assert.Empty(t, f.states)
	f.engine.AssertNotCalled(t, "Moderate", mock.Anything, mock.Anything)
}

func TestSubmitPost_ConcurrentDuplicateReturnsStoredOutcome(t *testing.T) {
	f := newFixture(t)
	f.allowRate()
	f.engine.EXPECT().Moderate(mock.Anything, mock.Anything).Return(&moderation.Result{
		Decision:   moderation.DecisionNeedsReview,
		Categories: []moderation.Category{moderation.CategoryHarassment},
		Confidence: 0.5,
		Source:     moderation.SourceAI,
	}, nil).Once()
	winner := uuid.New()
	f.posts.EXPECT().PublishPost(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p *post.Post) (bool, error) {
			f.store(&post.Post{ID: winner, SubmissionID: p.SubmissionID, AuthorID: p.AuthorID, Status: post.StatusPendingReview})
			return false, nil
		}).Once()

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
		SubmissionID: uuid.New(),
		AuthorID:     "u1",
		Content:      "raced",
	})
	require.NoError(t, err)
	assert.Equal(t, submission.ReasonPendingReview, out.Reason)
	require.NotNil(t, out.ID)
	assert.Equal(t, winner, *out.ID)
	f.audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestSubmitPost_ThirdSubmissionIsRateLimited(t *testing.T) {
	f := newFixture(t)
	var recorded int
	f.limiter.EXPECT().Check(mock.Anything, "post", "u1").
		RunAndReturn(func(context.Context, string, string) (ratelimit.Status, error) {
			s := ratelimit.Status{Count: int64(recorded), Limit: 2, Window: time.Minute}
			s.Exceeded = recorded >= 2
			if s.Exceeded {
				s.RetryAfter = 40 * time.Second
			}
			return s, nil
		}).Times(3)
	f.limiter.EXPECT().Record(mock.Anything, "post", "u1").
		RunAndReturn(func(context.Context, string, string) error { recorded++; return nil }).Twice()
	f.engine.EXPECT().Moderate(mock.Anything, mock.Anything).Return(approved(), nil).Twice()
	f.posts.EXPECT().PublishPost(mock.Anything, mock.Anything).Return(true, nil).Twice()
	f.expectAudit(audit.ActionApproved)
	f.expectAudit(audit.ActionApproved)
	f.expectAudit(audit.ActionRateLimited)

	var outcomes []*submission.Outcome
	for i := 0; i < 3; i++ {
		out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{
			AuthorID: "u1",
			Title:    "Post",
			Content:  "content body",
		})
		require.NoError(t, err)
		outcomes = append(outcomes, out)
	}

	assert.True(t, outcomes[0].Success)
	assert.True(t, outcomes[1].Success)
	assert.False(t, outcomes[2].Success)
	assert.Equal(t, submission.ReasonRateLimited, outcomes[2].Reason)
	assert.Equal(t, submission.StateRateLimited, outcomes[2].State)
	assert.Equal(t, 40*time.Second, outcomes[2].RetryAfter)
}

func TestSubmitPost_LimiterErrorFailsOpen(t *testing.T) {
	f := newFixture(t)
	f.limiter.EXPECT().Check(mock.Anything, "post", "u1").Return(ratelimit.Status{}, errors.New("redis down")).Once()
	f.limiter.EXPECT().Record(mock.Anything, "post", "u1").Return(errors.New("redis down")).Once()
	f.engine.EXPECT().Moderate(mock.Anything, mock.Anything).Return(approved(), nil).Once()
	f.posts.EXPECT().PublishPost(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.expectAudit(audit.ActionApproved)

	out, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{AuthorID: "u1", Content: "hello world"})
	require.NoError(t, err)
	assert.True(t, out.Success)
}

func TestSubmitPost_ConcurrentSubmissionFromSameUser(t *testing.T) {
	f := newFixture(t)
	f.allowRate()

	entered := make(chan struct{})
	unblock := make(chan struct{})
	f.engine.EXPECT().Moderate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, moderation.Request) (*moderation.Result, error) {
			close(entered)
			<-unblock
			return approved(), nil
		}).Once()
	f.posts.EXPECT().PublishPost(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.expectAudit(audit.ActionApproved)

	done := make(chan error, 1)
	go func() {
		_, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{AuthorID: "u1", Content: "first post"})
		done <- err
	}()
	<-entered

	_, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{AuthorID: "u1", Content: "second post"})
	assert.ErrorIs(t, err, moderation.ErrSubmissionInProgress)

	close(unblock)
	require.NoError(t, <-done)
}

func TestSubmitPost_UploadFailureIsSurfaced(t *testing.T) {
	f := newFixture(t)
	f.limiter.EXPECT().Check(mock.Anything, "post", "u1").Return(ratelimit.Status{Limit: 5}, nil).Once()

	img := candidate(t, "photo.png", "image/png")
	files := []*media.Candidate{img}
	f.prefilter.EXPECT().Validate(mock.Anything, files).Return(nil).Once()
	f.prefilter.EXPECT().NeedsCompression(files).Return(false).Once()
	f.prefilter.EXPECT().Scan(mock.Anything, files).Return(&mediasafety.ScanResult{Scanned: 1}, nil).Once()
	f.storage.EXPECT().NewKey("u1", "photo.png").Return("media/u1/photo.png").Once()
	f.storage.EXPECT().PresignUpload(mock.Anything, "media/u1/photo.png", "image/png").
		Return(nil, errors.New("s3 unavailable")).Once()

	_, err := f.orchestrator.SubmitPost(context.Background(), submission.PostRequest{AuthorID: "u1", Title: "x", Media: files})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3 unavailable")
	assert.Equal(t, submission.StateFailed, f.states[len(f.states)-1])
	f.engine.AssertNotCalled(t, "Moderate", mock.Anything, mock.Anything)
	assert.True(t, img.Released())
}

func TestSubmitComment(t *testing.T) {
	postID := uuid.New()

	t.Run("post not published", func(t *testing.T) {
		f := newFixture(t)
		f.posts.EXPECT().PostExists(mock.Anything, postID).Return(false, nil).Once()

		_, err := f.orchestrator.SubmitComment(context.Background(), submission.CommentRequest{AuthorID: "u1", PostID: postID, Content: "hi there"})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("rejected", func(t *testing.T) {
		f := newFixture(t)
		f.posts.EXPECT().PostExists(mock.Anything, postID).Return(true, nil).Once()
		f.limiter.EXPECT().Check(mock.Anything, "comment", "u1").Return(ratelimit.Status{Limit: 5}, nil).Once()
		f.limiter.EXPECT().Record(mock.Anything, "comment", "u1").Return(nil).Once()
		f.engine.EXPECT().Moderate(mock.Anything, mock.MatchedBy(func(r moderation.Request) bool {
			return r.ContentType == moderation.ContentTypeComment
		})).Return(&moderation.Result{
			Decision:   moderation.DecisionRejected,
			Categories: []moderation.Category{moderation.CategoryHarassment},
			Confidence: 0.9,
			Source:     moderation.SourceRules,
		}, nil).Once()
		f.audit.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e *audit.Entry) bool {
			return e.Action == audit.ActionRejected && e.TargetType == audit.TargetComment
		})).Return(nil).Once()

		out, err := f.orchestrator.SubmitComment(context.Background(), submission.CommentRequest{AuthorID: "u1", PostID: postID, Content: "kill yourself"})
		require.NoError(t, err)
		assert.Equal(t, submission.ReasonCommentRejected, out.Reason)
		f.posts.AssertNotCalled(t, "PublishComment", mock.Anything, mock.Anything)
	})

	t.Run("replay of held comment", func(t *testing.T) {
		f := newFixture(t)
		submissionID := uuid.New()
		commentID := uuid.New()
		f.comments[submissionID] = &post.Comment{
			ID:           commentID,
			SubmissionID: submissionID,
			PostID:       postID,
			AuthorID:     "u1",
			Status:       post.StatusPendingReview,
		}

		out, err := f.orchestrator.SubmitComment(context.Background(), submission.CommentRequest{
			SubmissionID: submissionID,
			AuthorID:     "u1",
			PostID:       postID,
			Content:      "borderline",
		})
		require.NoError(t, err)
		assert.Equal(t, submission.ReasonPendingReview, out.Reason)
		require.NotNil(t, out.ID)
		assert.Equal(t, commentID, *out.ID)
		f.posts.AssertNotCalled(t, "PostExists", mock.Anything, mock.Anything)
		f.engine.AssertNotCalled(t, "Moderate", mock.Anything, mock.Anything)
	})

	t.Run("published", func(t *testing.T) {
		f := newFixture(t)
		f.posts.EXPECT().PostExists(mock.Anything, postID).Return(true, nil).Once()
		f.limiter.EXPECT().Check(mock.Anything, "comment", "u1").Return(ratelimit.Status{Limit: 5}, nil).Once()
		f.limiter.EXPECT().Record(mock.Anything, "comment", "u1").Return(nil).Once()
		f.engine.EXPECT().Moderate(mock.Anything, mock.Anything).Return(approved(), nil).Once()
		f.posts.EXPECT().PublishComment(mock.Anything, mock.MatchedBy(func(c *post.Comment) bool {
			return c.PostID == postID && c.Status == post.StatusPublished
		})).Return(true, nil).Once()
		f.expectAudit(audit.ActionApproved)

		out, err := f.orchestrator.SubmitComment(context.Background(), submission.CommentRequest{AuthorID: "u1", PostID: postID, Content: "nice photos"})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.NotNil(t, out.ID)
	})
}
