package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

// BranchRepo stores the branch row only. Program linkage is held in
// program_branch_mappings and maintained by the branch service.
type BranchRepo interface {
	Create(ctx context.Context, tx *gorm.DB, branch *types.Branch) (*types.Branch, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Branch, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Branch, error)
	Save(ctx context.Context, tx *gorm.DB, branch *types.Branch) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) (*types.Branch, error)
}

type branchRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBranchRepo(db *gorm.DB, baseLog *logger.Logger) BranchRepo {
	repoLog := baseLog.With("repo", "BranchRepo")
	return &branchRepo{db: db, log: repoLog}
}

func (br *branchRepo) Create(ctx context.Context, tx *gorm.DB, branch *types.Branch) (*types.Branch, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	if err := transaction.WithContext(ctx).Create(branch).Error; err != nil {
		return nil, err
	}
	return branch, nil
}

func (br *branchRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Branch, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var result types.Branch
	if err := transaction.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (br *branchRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Branch, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var results []*types.Branch
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *branchRepo) Save(ctx context.Context, tx *gorm.DB, branch *types.Branch) error {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	return transaction.WithContext(ctx).Save(branch).Error
}

func (br *branchRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) (*types.Branch, error) {
	removed, err := br.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	if err := transaction.WithContext(ctx).Delete(&types.Branch{}, id).Error; err != nil {
		return nil, err
	}
	return removed, nil
}
