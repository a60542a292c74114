package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/types"
)

// ProgramBranchMappingRepo is the association store for branch↔program
// linkage. The store itself enforces no one-mapping-per-branch rule;
// that invariant is maintained by the branch service's upsert.
type ProgramBranchMappingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, mapping *types.ProgramBranchMapping) (*types.ProgramBranchMapping, error)
	List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.ProgramBranchMapping, error)
	ListByBranchID(ctx context.Context, tx *gorm.DB, branchID uint) ([]*types.ProgramBranchMapping, error)
	Save(ctx context.Context, tx *gorm.DB, mapping *types.ProgramBranchMapping) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uint) error
	DeleteByBranchID(ctx context.Context, tx *gorm.DB, branchID uint) error
}

type programBranchMappingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgramBranchMappingRepo(db *gorm.DB, baseLog *logger.Logger) ProgramBranchMappingRepo {
	repoLog := baseLog.With("repo", "ProgramBranchMappingRepo")
	return &programBranchMappingRepo{db: db, log: repoLog}
}

func (mr *programBranchMappingRepo) Create(ctx context.Context, tx *gorm.DB, mapping *types.ProgramBranchMapping) (*types.ProgramBranchMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(mapping).Error; err != nil {
		return nil, err
	}
	return mapping, nil
}

func (mr *programBranchMappingRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.ProgramBranchMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.ProgramBranchMapping
	if err := transaction.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByBranchID returns every mapping for a branch in id order, oldest
// first. Callers treat the first row as the current mapping.
func (mr *programBranchMappingRepo) ListByBranchID(ctx context.Context, tx *gorm.DB, branchID uint) ([]*types.ProgramBranchMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.ProgramBranchMapping
	if err := transaction.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *programBranchMappingRepo) Save(ctx context.Context, tx *gorm.DB, mapping *types.ProgramBranchMapping) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).Save(mapping).Error
}

func (mr *programBranchMappingRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.ProgramBranchMapping{}).Error
}

func (mr *programBranchMappingRepo) DeleteByBranchID(ctx context.Context, tx *gorm.DB, branchID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Delete(&types.ProgramBranchMapping{}).Error
}
