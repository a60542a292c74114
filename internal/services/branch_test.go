package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

func newBranchService(t *testing.T) (BranchService, *gorm.DB, repos.ProgramRepo, repos.ProgramBranchMappingRepo) {
	t.Helper()
	gdb := testDB(t)
	log := testLogger(t)
	branchRepo := repos.NewBranchRepo(gdb, log)
	mappingRepo := repos.NewProgramBranchMappingRepo(gdb, log)
	programRepo := repos.NewProgramRepo(gdb, log)
	svc := NewBranchService(gdb, log, branchRepo, mappingRepo, programRepo)
	return svc, gdb, programRepo, mappingRepo
}

func seedProgram(t *testing.T, programRepo repos.ProgramRepo, name string) *types.Program {
	t.Helper()
	program, err := programRepo.Create(context.Background(), nil, &types.Program{Name: name, Status: true})
	if err != nil {
		t.Fatalf("seed program %q: %v", name, err)
	}
	return program
}

func mappingsFor(t *testing.T, mappingRepo repos.ProgramBranchMappingRepo, branchID uint) []*types.ProgramBranchMapping {
	t.Helper()
	mappings, err := mappingRepo.ListByBranchID(context.Background(), nil, branchID)
	if err != nil {
		t.Fatalf("list mappings: %v", err)
	}
	return mappings
}

func TestCreateBranchCreatesExactlyOneMapping(t *testing.T) {
	svc, _, programRepo, mappingRepo := newBranchService(t)
	ctx := context.Background()
	program := seedProgram(t, programRepo, "B.Tech")

	branch, err := svc.CreateBranch(ctx, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: program.ID})
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}
	if branch.ID == 0 {
		t.Fatalf("created branch has no id")
	}
	if branch.ProgramName == nil || *branch.ProgramName != "B.Tech" {
		t.Fatalf("program_name: want=%q got=%v", "B.Tech", branch.ProgramName)
	}

	mappings := mappingsFor(t, mappingRepo, branch.ID)
	if len(mappings) != 1 {
		t.Fatalf("mapping count after create: want=1 got=%d", len(mappings))
	}
	if mappings[0].ProgramID != program.ID {
		t.Fatalf("mapping program id: want=%d got=%d", program.ID, mappings[0].ProgramID)
	}
}

func TestGetBranchEnrichesFromCurrentMapping(t *testing.T) {
	svc, _, programRepo, _ := newBranchService(t)
	ctx := context.Background()
	program := seedProgram(t, programRepo, "B.Tech")

	created, err := svc.CreateBranch(ctx, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: program.ID})
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}

	got, err := svc.GetBranch(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBranch: %v", err)
	}
	if got.ProgramName == nil || *got.ProgramName != "B.Tech" {
		t.Fatalf("program_name: want=%q got=%v", "B.Tech", got.ProgramName)
	}
}

func TestUpdateBranchRepointsMappingWithoutDuplicates(t *testing.T) {
	svc, _, programRepo, mappingRepo := newBranchService(t)
	ctx := context.Background()
	p1 := seedProgram(t, programRepo, "B.Tech")
	p2 := seedProgram(t, programRepo, "M.Tech")

	created, err := svc.CreateBranch(ctx, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: p1.ID})
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}

	updated, err := svc.UpdateBranch(ctx, created.ID, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: p2.ID})
	if err != nil {
		t.Fatalf("UpdateBranch: %v", err)
	}
	if updated.ProgramName == nil || *updated.ProgramName != "M.Tech" {
		t.Fatalf("program_name after update: want=%q got=%v", "M.Tech", updated.ProgramName)
	}

	reread, err := svc.GetBranch(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBranch after update: %v", err)
	}
	if reread.ProgramName == nil || *reread.ProgramName != "M.Tech" {
		t.Fatalf("program_name on reread: want=%q got=%v", "M.Tech", reread.ProgramName)
	}

	mappings := mappingsFor(t, mappingRepo, created.ID)
	if len(mappings) != 1 {
		t.Fatalf("mapping count after update: want=1 got=%d", len(mappings))
	}
	if mappings[0].ProgramID != p2.ID {
		t.Fatalf("mapping program id after update: want=%d got=%d", p2.ID, mappings[0].ProgramID)
	}
}

func TestUpdateBranchRemovesPreexistingDuplicateMappings(t *testing.T) {
	svc, _, programRepo, mappingRepo := newBranchService(t)
	ctx := context.Background()
	p1 := seedProgram(t, programRepo, "B.Tech")
	p2 := seedProgram(t, programRepo, "M.Tech")

	created, err := svc.CreateBranch(ctx, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: p1.ID})
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}
	// Simulate dirty data produced before uniqueness was maintained.
	if _, err := mappingRepo.Create(ctx, nil, &types.ProgramBranchMapping{ProgramID: p1.ID, BranchID: created.ID, Status: true}); err != nil {
		t.Fatalf("seed duplicate mapping: %v", err)
	}

	if _, err := svc.UpdateBranch(ctx, created.ID, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: p2.ID}); err != nil {
		t.Fatalf("UpdateBranch: %v", err)
	}

	mappings := mappingsFor(t, mappingRepo, created.ID)
	if len(mappings) != 1 {
		t.Fatalf("mapping count after update over duplicates: want=1 got=%d", len(mappings))
	}
	if mappings[0].ProgramID != p2.ID {
		t.Fatalf("surviving mapping program id: want=%d got=%d", p2.ID, mappings[0].ProgramID)
	}
}

func TestUpdateBranchCreatesMappingWhenMissing(t *testing.T) {
	svc, gdb, programRepo, mappingRepo := newBranchService(t)
	ctx := context.Background()
	program := seedProgram(t, programRepo, "B.Tech")

	// Branch row inserted without any mapping, as legacy data might be.
	branch := &types.Branch{Name: "Mechanical", Code: "MEC", Status: true}
	if err := gdb.Create(branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}

	updated, err := svc.UpdateBranch(ctx, branch.ID, BranchInput{Name: "Mechanical", Code: "MEC", ProgramID: program.ID})
	if err != nil {
		t.Fatalf("UpdateBranch: %v", err)
	}
	if updated.ProgramName == nil || *updated.ProgramName != "B.Tech" {
		t.Fatalf("program_name: want=%q got=%v", "B.Tech", updated.ProgramName)
	}
	if got := len(mappingsFor(t, mappingRepo, branch.ID)); got != 1 {
		t.Fatalf("mapping count: want=1 got=%d", got)
	}
}

func TestCreateBranchRollsBackWhenMappingWriteFails(t *testing.T) {
	svc, gdb, _, mappingRepo := newBranchService(t)
	ctx := context.Background()
	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	// The mapping insert hits the FK on programs; the branch insert in
	// the same transaction must not survive it.
	if _, err := svc.CreateBranch(ctx, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: 999}); err == nil {
		t.Fatalf("CreateBranch with dangling program id succeeded")
	}

	var branches int64
	if err := gdb.Model(&types.Branch{}).Count(&branches).Error; err != nil {
		t.Fatalf("count branches: %v", err)
	}
	if branches != 0 {
		t.Fatalf("branch row survived failed mapping write: count=%d", branches)
	}
	if got := len(mappingsFor(t, mappingRepo, 1)); got != 0 {
		t.Fatalf("mapping count after rollback: want=0 got=%d", got)
	}
}

func TestUpdateBranchRollsBackWhenMappingWriteFails(t *testing.T) {
	svc, gdb, programRepo, mappingRepo := newBranchService(t)
	ctx := context.Background()
	program := seedProgram(t, programRepo, "B.Tech")

	created, err := svc.CreateBranch(ctx, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: program.ID})
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}
	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if _, err := svc.UpdateBranch(ctx, created.ID, BranchInput{Name: "Renamed", Code: "CSE", ProgramID: 999}); err == nil {
		t.Fatalf("UpdateBranch with dangling program id succeeded")
	}

	reread, err := svc.GetBranch(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBranch after failed update: %v", err)
	}
	if reread.Name != "Computer Science" {
		t.Fatalf("branch rename survived rolled-back update: %q", reread.Name)
	}
	mappings := mappingsFor(t, mappingRepo, created.ID)
	if len(mappings) != 1 || mappings[0].ProgramID != program.ID {
		t.Fatalf("mapping changed by rolled-back update: %+v", mappings)
	}
}

func TestUpdateBranchNotFound(t *testing.T) {
	svc, _, programRepo, _ := newBranchService(t)
	program := seedProgram(t, programRepo, "B.Tech")

	_, err := svc.UpdateBranch(context.Background(), 999, BranchInput{Name: "X", Code: "X", ProgramID: program.ID})
	if !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("UpdateBranch on missing branch: want ErrNotFound got %v", err)
	}
}

func TestEnrichmentNilWhenNoMapping(t *testing.T) {
	svc, gdb, _, _ := newBranchService(t)
	branch := &types.Branch{Name: "Civil", Code: "CIV", Status: true}
	if err := gdb.Create(branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}

	got, err := svc.GetBranch(context.Background(), branch.ID)
	if err != nil {
		t.Fatalf("GetBranch: %v", err)
	}
	if got.ProgramName != nil {
		t.Fatalf("program_name with no mapping: want nil got %q", *got.ProgramName)
	}
}

func TestEnrichmentNilWhenProgramGone(t *testing.T) {
	svc, _, programRepo, _ := newBranchService(t)
	ctx := context.Background()
	program := seedProgram(t, programRepo, "B.Tech")

	created, err := svc.CreateBranch(ctx, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: program.ID})
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}
	if _, err := programRepo.Delete(ctx, nil, program.ID); err != nil {
		t.Fatalf("delete program: %v", err)
	}

	got, err := svc.GetBranch(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBranch: %v", err)
	}
	if got.ProgramName != nil {
		t.Fatalf("program_name with dangling program: want nil got %q", *got.ProgramName)
	}
}

func TestDeleteBranchRemovesMappings(t *testing.T) {
	svc, _, programRepo, mappingRepo := newBranchService(t)
	ctx := context.Background()
	program := seedProgram(t, programRepo, "B.Tech")

	created, err := svc.CreateBranch(ctx, BranchInput{Name: "Computer Science", Code: "CSE", ProgramID: program.ID})
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}

	removed, err := svc.DeleteBranch(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteBranch: %v", err)
	}
	if removed.ID != created.ID {
		t.Fatalf("removed branch id: want=%d got=%d", created.ID, removed.ID)
	}
	if got := len(mappingsFor(t, mappingRepo, created.ID)); got != 0 {
		t.Fatalf("mapping count after delete: want=0 got=%d", got)
	}

	if _, err := svc.DeleteBranch(ctx, created.ID); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("DeleteBranch on missing branch: want ErrNotFound got %v", err)
	}
}
