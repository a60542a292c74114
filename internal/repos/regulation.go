package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

type RegulationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, regulation *types.Regulation) (*types.Regulation, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Regulation, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Regulation, error)
	Save(ctx context.Context, tx *gorm.DB, regulation *types.Regulation) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) (*types.Regulation, error)
}

type regulationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRegulationRepo(db *gorm.DB, baseLog *logger.Logger) RegulationRepo {
	repoLog := baseLog.With("repo", "RegulationRepo")
	return &regulationRepo{db: db, log: repoLog}
}

func (rr *regulationRepo) Create(ctx context.Context, tx *gorm.DB, regulation *types.Regulation) (*types.Regulation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(regulation).Error; err != nil {
		return nil, err
	}
	return regulation, nil
}

func (rr *regulationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Regulation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var result types.Regulation
	if err := transaction.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (rr *regulationRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Regulation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Regulation
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *regulationRepo) Save(ctx context.Context, tx *gorm.DB, regulation *types.Regulation) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Save(regulation).Error
}

func (rr *regulationRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) (*types.Regulation, error) {
	removed, err := rr.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Delete(&types.Regulation{}, id).Error; err != nil {
		return nil, err
	}
	return removed, nil
}
