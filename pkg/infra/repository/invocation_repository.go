package repository

import (
	"context"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type invocationRepository struct {
	db *gorm.DB
}

func NewInvocationRepository(db *gorm.DB) moderation.InvocationRepository {
	return &invocationRepository{
		db: db,
	}
}

func (r *invocationRepository) Save(ctx context.Context, inv *moderation.Invocation) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(inv).Error
}
