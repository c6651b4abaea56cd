package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/app/mediasafety"
	"github.com/NeuralTrust/TrustPost/pkg/app/textmod"
	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	domain "github.com/NeuralTrust/TrustPost/pkg/domain/errors"
	"github.com/NeuralTrust/TrustPost/pkg/domain/media"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustPost/pkg/domain/post"
	"github.com/NeuralTrust/TrustPost/pkg/infra/auditlogs"
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustPost/pkg/infra/ratelimit"
	"github.com/NeuralTrust/TrustPost/pkg/infra/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	rateLimitedMessage   = "You are posting too fast. Please wait before trying again."
	pendingReviewMessage = "Your submission is awaiting review by a moderator."
	mediaFlaggedMessage  = "One of your files was flagged as unsafe and was not uploaded."
)

type Config struct {
	RateLimitEnabled bool
	MaxFilesPerPost  int
}

//go:generate mockery --name=Orchestrator --dir=. --output=./mocks --filename=orchestrator_mock.go --case=underscore --with-expecter
type Orchestrator interface {
	SubmitPost(ctx context.Context, req PostRequest) (*Outcome, error)
	SubmitComment(ctx context.Context, req CommentRequest) (*Outcome, error)
}

type orchestrator struct {
	cfg       Config
	limiter   ratelimit.Limiter
	prefilter mediasafety.Prefilter
	storage   storage.Storage
	engine    textmod.Engine
	posts     post.Repository
	audit     auditlogs.Service
	progress  ProgressPublisher
	guard     *Guard
	logger    *logrus.Logger
	now       func() time.Time
}

func NewOrchestrator(
	cfg Config,
	limiter ratelimit.Limiter,
	prefilter mediasafety.Prefilter,
	store storage.Storage,
	engine textmod.Engine,
	posts post.Repository,
	auditService auditlogs.Service,
	progress ProgressPublisher,
	guard *Guard,
	logger *logrus.Logger,
) Orchestrator {
	if guard == nil {
		guard = NewGuard(nil)
	}
	return &orchestrator{
		cfg:       cfg,
		limiter:   limiter,
		prefilter: prefilter,
		storage:   store,
		engine:    engine,
		posts:     posts,
		audit:     auditService,
		progress:  progress,
		guard:     guard,
		logger:    logger,
		now:       time.Now,
	}
}

// run carries the per-attempt state of one submission.
type run struct {
	o      *orchestrator
	kind   Kind
	id     uuid.UUID
	userID string
	state  State
	start  time.Time
	log    *logrus.Entry
}

func (o *orchestrator) newRun(kind Kind, id uuid.UUID, userID string) *run {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &run{
		o:      o,
		kind:   kind,
		id:     id,
		userID: userID,
		state:  StateIdle,
		start:  o.now(),
		log: o.logger.WithFields(logrus.Fields{
			"submission_id": id.String(),
			"user_id":       userID,
			"kind":          string(kind),
		}),
	}
}

func (r *run) transition(ctx context.Context, s State, reason Reason, message string) {
	r.log.WithFields(logrus.Fields{"from": string(r.state), "to": string(s)}).Debug("submission state transition")
	r.state = s
	if r.o.progress == nil {
		return
	}
	ev := Event{
		SubmissionID: r.id,
		UserID:       r.userID,
		State:        s,
		Reason:       reason,
		Message:      message,
		At:           r.o.now(),
	}
	if err := r.o.progress.Publish(context.WithoutCancel(ctx), ev); err != nil {
		r.log.WithError(err).Warn("failed to publish submission progress")
	}
}

func (r *run) finish(ctx context.Context, out *Outcome) *Outcome {
	out.SubmissionID = r.id
	if out.State == "" {
		out.State = StateDone
	}
	r.transition(ctx, out.State, out.Reason, out.Message)
	prometheus.Submissions.WithLabelValues(string(r.kind), string(out.State)).Inc()
	prometheus.SubmissionLatency.WithLabelValues(string(r.kind)).
		Observe(float64(r.o.now().Sub(r.start).Milliseconds()))
	r.log.WithFields(logrus.Fields{
		"state":       string(out.State),
		"reason":      string(out.Reason),
		"duration_ms": r.o.now().Sub(r.start).Milliseconds(),
	}).Info("submission finished")
	return out
}

func (r *run) fail(ctx context.Context, err error) error {
	r.transition(ctx, StateFailed, "", "")
	prometheus.Submissions.WithLabelValues(string(r.kind), string(StateFailed)).Inc()
	r.log.WithError(err).Error("submission failed")
	return err
}

// record writes the audit entry. The decision stands if the write fails.
func (r *run) record(ctx context.Context, entry *audit.Entry) {
	entry.ActorID = r.userID
	if entry.TargetID == "" {
		entry.TargetID = r.id.String()
	}
	if err := r.o.audit.Record(context.WithoutCancel(ctx), entry); err != nil {
		r.log.WithError(err).WithField("action", string(entry.Action)).Error("failed to record audit entry")
	}
}

// checkRateLimit fails open when the limiter is unavailable.
func (r *run) checkRateLimit(ctx context.Context) (*Outcome, bool) {
	if !r.o.cfg.RateLimitEnabled || r.o.limiter == nil {
		return nil, false
	}
	status, err := r.o.limiter.Check(ctx, string(r.kind), r.userID)
	if err != nil {
		r.log.WithError(err).Warn("rate limiter unavailable, allowing submission")
		return nil, false
	}
	if !status.Exceeded {
		return nil, false
	}

	prometheus.RateLimited.WithLabelValues(string(r.kind)).Inc()
	r.record(ctx, &audit.Entry{
		Action:     audit.ActionRateLimited,
		TargetType: targetType(r.kind),
		Reason:     fmt.Sprintf("%d of %d actions within %s", status.Count, status.Limit, status.Window),
		Confidence: 1,
		Source:     "rate_limiter",
	})
	return &Outcome{
		Success:    false,
		Reason:     ReasonRateLimited,
		Message:    rateLimitedMessage,
		State:      StateRateLimited,
		RetryAfter: status.RetryAfter,
	}, true
}

func (r *run) recordRateLimitHit(ctx context.Context) {
	if !r.o.cfg.RateLimitEnabled || r.o.limiter == nil {
		return
	}
	if err := r.o.limiter.Record(ctx, string(r.kind), r.userID); err != nil {
		r.log.WithError(err).Warn("failed to record rate limit hit")
	}
}

func (o *orchestrator) SubmitPost(ctx context.Context, req PostRequest) (*Outcome, error) {
	defer media.ReleaseAll(req.Media)

	r := o.newRun(KindPost, req.SubmissionID, req.AuthorID)
	release, err := o.guard.Acquire(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	defer release()

	if out, err := r.storedPost(ctx); err != nil || out != nil {
		if err != nil {
			return nil, r.failUnlessConflict(ctx, err)
		}
		return r.finish(ctx, out), nil
	}

	if out, limited := r.checkRateLimit(ctx); limited {
		return r.finish(ctx, out), nil
	}

	if len(req.Media) > 0 {
		out, err := r.handleMedia(ctx, req)
		if err != nil {
			return nil, r.fail(ctx, err)
		}
		if out != nil {
			return r.finish(ctx, out), nil
		}
	}

	r.recordRateLimitHit(ctx)

	r.transition(ctx, StateModeratingText, "", "")
	result, err := o.engine.Moderate(ctx, moderation.Request{
		Text:        joinPostText(req.Title, req.Content),
		ContentType: moderation.ContentTypePost,
		AuthorID:    req.AuthorID,
	})
	if err != nil {
		return nil, r.fail(ctx, fmt.Errorf("text moderation failed: %w", err))
	}

	if result.Decision == moderation.DecisionRejected {
		r.record(ctx, decisionEntry(result, audit.TargetPost, ""))
		return r.finish(ctx, rejectedOutcome(result, ReasonContentRejected)), nil
	}

	r.transition(ctx, StatePublishing, "", "")
	status := post.StatusPublished
	if result.Decision == moderation.DecisionNeedsReview {
		status = post.StatusPendingReview
	}
	p := &post.Post{
		ID:           uuid.New(),
		SubmissionID: r.id,
		AuthorID:     req.AuthorID,
		Title:        req.Title,
		Content:      req.Content,
		MediaKeys:    mediaKeys(req.Media),
		Status:       status,
		CreatedAt:    o.now().UTC(),
	}
	created, err := o.posts.PublishPost(ctx, p)
	if err != nil {
		return nil, r.fail(ctx, fmt.Errorf("failed to publish post: %w", err))
	}
	if !created {
		out, err := r.storedPost(ctx)
		if err == nil && out == nil {
			err = fmt.Errorf("post for submission %s conflicted but was not found", r.id)
		}
		if err != nil {
			return nil, r.failUnlessConflict(ctx, err)
		}
		return r.finish(ctx, out), nil
	}

	r.record(ctx, decisionEntry(result, audit.TargetPost, p.ID.String()))
	return r.finish(ctx, publishedOutcome(result, p.ID, p.MediaKeys)), nil
}

// handleMedia runs validation, compression, safety scan and upload in order.
// A non-nil outcome ends the submission.
func (r *run) handleMedia(ctx context.Context, req PostRequest) (*Outcome, error) {
	r.transition(ctx, StateValidatingMedia, "", "")
	if limit := r.o.cfg.MaxFilesPerPost; limit > 0 && len(req.Media) > limit {
		err := moderation.NewValidationError("media", "at most %d files per post, got %d", limit, len(req.Media))
		return r.validationFailed(ctx, err), nil
	}
	if err := r.o.prefilter.Validate(ctx, req.Media); err != nil {
		if mediasafety.IsValidation(err) {
			return r.validationFailed(ctx, err), nil
		}
		return nil, fmt.Errorf("media validation failed: %w", err)
	}

	if r.o.prefilter.NeedsCompression(req.Media) {
		r.transition(ctx, StateCompressingMedia, "", "")
		if err := r.o.prefilter.Compress(ctx, req.Media); err != nil {
			if mediasafety.IsValidation(err) {
				return r.validationFailed(ctx, err), nil
			}
			return nil, fmt.Errorf("media compression failed: %w", err)
		}
	}

	r.transition(ctx, StateSafetyScanningMedia, "", "")
	scan, err := r.o.prefilter.Scan(ctx, req.Media)
	if err != nil {
		if mediasafety.IsValidation(err) {
			return r.validationFailed(ctx, err), nil
		}
		return nil, fmt.Errorf("media safety scan failed: %w", err)
	}
	if scan.Flagged != nil {
		c := scan.Flagged
		r.record(ctx, &audit.Entry{
			Action:     audit.ActionMediaFlagged,
			TargetType: audit.TargetMedia,
			Reason:     fmt.Sprintf("%s: %s", c.Filename, c.FlagReason),
			Categories: []string{string(moderation.CategorySexualContent)},
			Confidence: scan.Verdict.MaxScore,
			Source:     "media_prefilter",
		})
		return &Outcome{
			Success:    false,
			Reason:     ReasonContentRejected,
			Message:    mediaFlaggedMessage,
			State:      StateRejected,
			Categories: []moderation.Category{moderation.CategorySexualContent},
		}, nil
	}

	r.transition(ctx, StateUploadingMedia, "", "")
	for _, c := range req.Media {
		if err := r.upload(ctx, c); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (r *run) upload(ctx context.Context, c *media.Candidate) error {
	if c.Flagged {
		return fmt.Errorf("refusing to upload flagged candidate %s", c.ID)
	}
	key := r.o.storage.NewKey(r.userID, c.Filename)
	up, err := r.o.storage.PresignUpload(ctx, key, c.ContentType)
	if err != nil {
		return fmt.Errorf("failed to presign upload for %s: %w", c.Filename, err)
	}
	f, err := c.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.Filename, err)
	}
	defer f.Close()
	if err := r.o.storage.Upload(ctx, up, f, c.Size); err != nil {
		return fmt.Errorf("failed to upload %s: %w", c.Filename, err)
	}
	c.StorageKey = key
	r.log.WithFields(logrus.Fields{
		"candidate_id": c.ID.String(),
		"key":          key,
		"size":         c.Size,
		"compression":  string(c.Compression),
	}).Debug("media uploaded")
	return nil
}

func (r *run) validationFailed(ctx context.Context, err error) *Outcome {
	var ve *moderation.ValidationError
	message := err.Error()
	if errors.As(err, &ve) {
		message = ve.Error()
	}
	r.record(ctx, &audit.Entry{
		Action:     audit.ActionValidationFailed,
		TargetType: audit.TargetMedia,
		Reason:     message,
		Confidence: 1,
		Source:     "media_constraints",
	})
	return &Outcome{
		Success: false,
		Reason:  ReasonValidationFailed,
		Message: message,
		State:   StateRejected,
	}
}

func (o *orchestrator) SubmitComment(ctx context.Context, req CommentRequest) (*Outcome, error) {
	r := o.newRun(KindComment, req.SubmissionID, req.AuthorID)
	release, err := o.guard.Acquire(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	defer release()

	if out, err := r.storedComment(ctx); err != nil || out != nil {
		if err != nil {
			return nil, r.failUnlessConflict(ctx, err)
		}
		return r.finish(ctx, out), nil
	}

	exists, err := o.posts.PostExists(ctx, req.PostID)
	if err != nil {
		return nil, r.fail(ctx, fmt.Errorf("failed to look up post: %w", err))
	}
	if !exists {
		return nil, domain.NewNotFoundError("post", req.PostID)
	}

	if out, limited := r.checkRateLimit(ctx); limited {
		return r.finish(ctx, out), nil
	}
	r.recordRateLimitHit(ctx)

	r.transition(ctx, StateModeratingText, "", "")
	result, err := o.engine.Moderate(ctx, moderation.Request{
		Text:        req.Content,
		ContentType: moderation.ContentTypeComment,
		AuthorID:    req.AuthorID,
	})
	if err != nil {
		return nil, r.fail(ctx, fmt.Errorf("text moderation failed: %w", err))
	}
	if result.Decision == moderation.DecisionRejected {
		r.record(ctx, decisionEntry(result, audit.TargetComment, ""))
		return r.finish(ctx, rejectedOutcome(result, ReasonCommentRejected)), nil
	}

	r.transition(ctx, StatePublishing, "", "")
	status := post.StatusPublished
	if result.Decision == moderation.DecisionNeedsReview {
		status = post.StatusPendingReview
	}
	c := &post.Comment{
		ID:           uuid.New(),
		SubmissionID: r.id,
		PostID:       req.PostID,
		AuthorID:     req.AuthorID,
		Content:      req.Content,
		Status:       status,
		CreatedAt:    o.now().UTC(),
	}
	created, err := o.posts.PublishComment(ctx, c)
	if err != nil {
		return nil, r.fail(ctx, fmt.Errorf("failed to publish comment: %w", err))
	}
	if !created {
		out, err := r.storedComment(ctx)
		if err == nil && out == nil {
			err = fmt.Errorf("comment for submission %s conflicted but was not found", r.id)
		}
		if err != nil {
			return nil, r.failUnlessConflict(ctx, err)
		}
		return r.finish(ctx, out), nil
	}

	r.record(ctx, decisionEntry(result, audit.TargetComment, c.ID.String()))
	return r.finish(ctx, publishedOutcome(result, c.ID, nil)), nil
}

// storedPost returns the outcome of an earlier attempt that already
// published this submission, or nil when there is none.
func (r *run) storedPost(ctx context.Context) (*Outcome, error) {
	p, err := r.o.posts.FindPostBySubmission(ctx, r.id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up submission: %w", err)
	}
	return r.replayed(p.AuthorID, p.ID, p.Status, p.MediaKeys)
}

func (r *run) storedComment(ctx context.Context) (*Outcome, error) {
	c, err := r.o.posts.FindCommentBySubmission(ctx, r.id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up submission: %w", err)
	}
	return r.replayed(c.AuthorID, c.ID, c.Status, nil)
}

func (r *run) replayed(authorID string, id uuid.UUID, status post.Status, keys []string) (*Outcome, error) {
	if authorID != r.userID {
		return nil, moderation.ErrSubmissionIDConflict
	}
	r.log.WithField("status", string(status)).Info("submission already published, returning stored outcome")

	out := &Outcome{Success: true, State: StateDone, ID: &id, MediaKeys: keys}
	switch status {
	case post.StatusPendingReview:
		out.Reason = ReasonPendingReview
		out.Message = pendingReviewMessage
	case post.StatusRejected:
		out.Success = false
		out.State = StateRejected
		out.Reason = ReasonContentRejected
		if r.kind == KindComment {
			out.Reason = ReasonCommentRejected
		}
		out.Message = rejectionMessage(nil)
	}
	return out, nil
}

// failUnlessConflict leaves the progress stream alone when the submission id
// belongs to someone else.
func (r *run) failUnlessConflict(ctx context.Context, err error) error {
	if errors.Is(err, moderation.ErrSubmissionIDConflict) {
		r.log.Warn("submission id reused by another user")
		return err
	}
	return r.fail(ctx, err)
}

func joinPostText(title, content string) string {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	switch {
	case title == "":
		return content
	case content == "":
		return title
	default:
		return title + "\n\n" + content
	}
}

func mediaKeys(candidates []*media.Candidate) []string {
	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.StorageKey != "" {
			keys = append(keys, c.StorageKey)
		}
	}
	return keys
}

func targetType(kind Kind) audit.TargetType {
	if kind == KindComment {
		return audit.TargetComment
	}
	return audit.TargetPost
}

func decisionEntry(result *moderation.Result, target audit.TargetType, targetID string) *audit.Entry {
	categories := make([]string, 0, len(result.Categories))
	for _, c := range result.Categories {
		categories = append(categories, string(c))
	}
	entry := &audit.Entry{
		Action:     audit.Action(result.Decision),
		TargetType: target,
		TargetID:   targetID,
		Reason:     result.Reasoning,
		Categories: categories,
		Confidence: result.Confidence,
		Source:     string(result.Source),
	}
	if u := result.Usage; u != nil {
		entry.Model = u.Model
		entry.TotalTokens = u.PromptTokens + u.CompletionTokens
		entry.CostUSD = u.CostUSD
	}
	return entry
}

func rejectedOutcome(result *moderation.Result, reason Reason) *Outcome {
	return &Outcome{
		Success:    false,
		Reason:     reason,
		Message:    rejectionMessage(result.Categories),
		State:      StateRejected,
		Categories: result.Categories,
	}
}

func publishedOutcome(result *moderation.Result, id uuid.UUID, keys []string) *Outcome {
	out := &Outcome{Success: true, State: StateDone, ID: &id, MediaKeys: keys}
	if result.Decision == moderation.DecisionNeedsReview {
		out.Reason = ReasonPendingReview
		out.Message = pendingReviewMessage
		out.Categories = result.Categories
	}
	return out
}

func rejectionMessage(categories []moderation.Category) string {
	if len(categories) == 0 {
		return "Your submission violates the community guidelines."
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, strings.ReplaceAll(string(c), "_", " "))
	}
	return "Your submission violates the community guidelines: " + strings.Join(names, ", ") + "."
}
