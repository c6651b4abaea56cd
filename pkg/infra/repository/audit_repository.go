package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	domain "github.com/NeuralTrust/TrustPost/pkg/domain/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultAuditPageSize = 100
	maxAuditPageSize     = 1000
)

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) audit.Repository {
	return &auditRepository{
		db: db,
	}
}

func (r *auditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if entry.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate audit entry id: %w", err)
		}
		entry.ID = id
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if entry.ResolvesID != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", audit.ErrDuplicateResolution, entry.ResolvesID.String())
		}
		return err
	}
	return nil
}

func (r *auditRepository) Get(ctx context.Context, id uuid.UUID) (*audit.Entry, error) {
	var entry audit.Entry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("audit log", id)
		}
		return nil, err
	}
	return &entry, nil
}

// ListByDateRange returns entries with from <= created_at < to, oldest first.
func (r *auditRepository) ListByDateRange(ctx context.Context, filter audit.Filter) ([]audit.Entry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	q := r.db.WithContext(ctx).Model(&audit.Entry{})
	if !filter.From.IsZero() {
		q = q.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("created_at < ?", filter.To)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.TargetID != "" {
		q = q.Where("target_id = ?", filter.TargetID)
	}
	if filter.ResolvesID != nil {
		q = q.Where("resolves_id = ?", *filter.ResolvesID)
	}

	var entries []audit.Entry
	if err := q.Order("created_at ASC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
