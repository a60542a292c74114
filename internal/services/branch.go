package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

// BranchInput bundles the branch row fields with the program reference.
// The branch row never stores the program id; the service keeps the
// program_branch_mappings bridge in sync with it instead.
type BranchInput struct {
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required"`
	ProgramID uint   `json:"program_id" binding:"required"`
}

type BranchService interface {
	CreateBranch(ctx context.Context, input BranchInput) (*types.Branch, error)
	GetBranch(ctx context.Context, id uint) (*types.Branch, error)
	ListBranches(ctx context.Context, skip, limit int) ([]*types.Branch, error)
	UpdateBranch(ctx context.Context, id uint, input BranchInput) (*types.Branch, error)
	DeleteBranch(ctx context.Context, id uint) (*types.Branch, error)
}

type branchService struct {
	db          *gorm.DB
	log         *logger.Logger
	branchRepo  repos.BranchRepo
	mappingRepo repos.ProgramBranchMappingRepo
	programRepo repos.ProgramRepo
}

func NewBranchService(
	db *gorm.DB,
	log *logger.Logger,
	branchRepo repos.BranchRepo,
	mappingRepo repos.ProgramBranchMappingRepo,
	programRepo repos.ProgramRepo,
) BranchService {
	serviceLog := log.With("service", "BranchService")
	return &branchService{
		db:          db,
		log:         serviceLog,
		branchRepo:  branchRepo,
		mappingRepo: mappingRepo,
		programRepo: programRepo,
	}
}

// CreateBranch inserts the branch row and exactly one mapping row in a
// single transaction, so a mapping-side failure (e.g. a bad program id
// hitting the FK) rolls the branch row back too.
func (bs *branchService) CreateBranch(ctx context.Context, input BranchInput) (*types.Branch, error) {
	branch := &types.Branch{
		Name:   input.Name,
		Code:   input.Code,
		Status: true,
	}
	if err := bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := bs.branchRepo.Create(ctx, tx, branch); err != nil {
			return fmt.Errorf("create branch: %w", err)
		}
		mapping := &types.ProgramBranchMapping{
			ProgramID: input.ProgramID,
			BranchID:  branch.ID,
			Status:    true,
		}
		if _, err := bs.mappingRepo.Create(ctx, tx, mapping); err != nil {
			return fmt.Errorf("create program-branch mapping: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	bs.enrich(ctx, branch)
	return branch, nil
}

func (bs *branchService) GetBranch(ctx context.Context, id uint) (*types.Branch, error) {
	branch, err := bs.branchRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	bs.enrich(ctx, branch)
	return branch, nil
}

func (bs *branchService) ListBranches(ctx context.Context, skip, limit int) ([]*types.Branch, error) {
	branches, err := bs.branchRepo.List(ctx, nil, skip, limit)
	if err != nil {
		return nil, err
	}
	for _, branch := range branches {
		bs.enrich(ctx, branch)
	}
	return branches, nil
}

// UpdateBranch is an upsert-by-branch-id over the mapping table: the
// oldest mapping is repointed at the new program and any stale
// duplicates are removed, so exactly one mapping row remains for the
// branch. Branch row and mapping writes share one transaction.
func (bs *branchService) UpdateBranch(ctx context.Context, id uint, input BranchInput) (*types.Branch, error) {
	var branch *types.Branch
	if err := bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := bs.branchRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		found.Name = input.Name
		found.Code = input.Code
		if err := bs.branchRepo.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("update branch: %w", err)
		}

		mappings, err := bs.mappingRepo.ListByBranchID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load program-branch mappings: %w", err)
		}
		if len(mappings) == 0 {
			mapping := &types.ProgramBranchMapping{
				ProgramID: input.ProgramID,
				BranchID:  id,
				Status:    true,
			}
			if _, err := bs.mappingRepo.Create(ctx, tx, mapping); err != nil {
				return fmt.Errorf("create program-branch mapping: %w", err)
			}
		} else {
			current := mappings[0]
			current.ProgramID = input.ProgramID
			if err := bs.mappingRepo.Save(ctx, tx, current); err != nil {
				return fmt.Errorf("repoint program-branch mapping: %w", err)
			}
			if len(mappings) > 1 {
				staleIDs := make([]uint, 0, len(mappings)-1)
				for _, m := range mappings[1:] {
					staleIDs = append(staleIDs, m.ID)
				}
				bs.log.Warn("Removing duplicate program-branch mappings", "branch_id", id, "count", len(staleIDs))
				if err := bs.mappingRepo.DeleteByIDs(ctx, tx, staleIDs); err != nil {
					return fmt.Errorf("remove stale program-branch mappings: %w", err)
				}
			}
		}
		branch = found
		return nil
	}); err != nil {
		return nil, err
	}
	bs.enrich(ctx, branch)
	return branch, nil
}

// DeleteBranch removes the branch and all of its mapping rows together,
// so deletes cannot strand orphaned mappings.
func (bs *branchService) DeleteBranch(ctx context.Context, id uint) (*types.Branch, error) {
	var removed *types.Branch
	if err := bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		branch, err := bs.branchRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := bs.mappingRepo.DeleteByBranchID(ctx, tx, id); err != nil {
			return fmt.Errorf("remove program-branch mappings: %w", err)
		}
		removed = branch
		return nil
	}); err != nil {
		return nil, err
	}
	return removed, nil
}

// enrich resolves the branch's current program name onto the transient
// ProgramName field. Recomputed on every read, never persisted. A
// missing mapping or a dangling program reference leaves the field nil.
func (bs *branchService) enrich(ctx context.Context, branch *types.Branch) {
	branch.ProgramName = nil
	mappings, err := bs.mappingRepo.ListByBranchID(ctx, nil, branch.ID)
	if err != nil {
		bs.log.Warn("Failed to resolve program-branch mapping", "branch_id", branch.ID, "error", err)
		return
	}
	if len(mappings) == 0 {
		return
	}
	program, err := bs.programRepo.GetByID(ctx, nil, mappings[0].ProgramID)
	if err != nil {
		return
	}
	branch.ProgramName = &program.Name
}
