package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/NeuralTrust/TrustPost/pkg/domain/errors"
	"github.com/NeuralTrust/TrustPost/pkg/domain/post"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) post.Repository {
	return &postRepository{
		db: db,
	}
}

var onSubmissionConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "submission_id"}},
	DoNothing: true,
}

func (r *postRepository) PublishPost(ctx context.Context, p *post.Post) (bool, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res := r.db.WithContext(ctx).Clauses(onSubmissionConflict).Create(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *postRepository) PublishComment(ctx context.Context, c *post.Comment) (bool, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	res := r.db.WithContext(ctx).Clauses(onSubmissionConflict).Create(c)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *postRepository) FindPostBySubmission(ctx context.Context, submissionID uuid.UUID) (*post.Post, error) {
	var p post.Post
	if err := r.db.WithContext(ctx).First(&p, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("post submission", submissionID)
		}
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) FindCommentBySubmission(ctx context.Context, submissionID uuid.UUID) (*post.Comment, error) {
	var c post.Comment
	if err := r.db.WithContext(ctx).First(&c, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("comment submission", submissionID)
		}
		return nil, err
	}
	return &c, nil
}

// PostExists ignores posts still held for review.
func (r *postRepository) PostExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ? AND status = ?", id, post.StatusPublished).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) ResolvePending(ctx context.Context, kind post.Kind, id uuid.UUID, status post.Status) (bool, error) {
	var model interface{}
	switch kind {
	case post.KindPost:
		model = &post.Post{}
	case post.KindComment:
		model = &post.Comment{}
	default:
		return false, fmt.Errorf("unknown submission kind %q", kind)
	}
	res := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND status = ?", id, post.StatusPendingReview).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
