package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

type GeneratedQPRepo interface {
	Create(ctx context.Context, tx *gorm.DB, qp *types.GeneratedQP) (*types.GeneratedQP, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.GeneratedQP, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.GeneratedQP, error)
}

type generatedQPRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGeneratedQPRepo(db *gorm.DB, baseLog *logger.Logger) GeneratedQPRepo {
	repoLog := baseLog.With("repo", "GeneratedQPRepo")
	return &generatedQPRepo{db: db, log: repoLog}
}

func (gr *generatedQPRepo) Create(ctx context.Context, tx *gorm.DB, qp *types.GeneratedQP) (*types.GeneratedQP, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	if err := transaction.WithContext(ctx).Create(qp).Error; err != nil {
		return nil, err
	}
	return qp, nil
}

// GetByID is a direct keyed fetch; the paper list is never scanned.
func (gr *generatedQPRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.GeneratedQP, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	var result types.GeneratedQP
	if err := transaction.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (gr *generatedQPRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.GeneratedQP, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	var results []*types.GeneratedQP
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
