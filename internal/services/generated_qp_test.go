package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

func newQPService(t *testing.T) GeneratedQPService {
	t.Helper()
	gdb := testDB(t)
	log := testLogger(t)
	return NewGeneratedQPService(log, repos.NewGeneratedQPRepo(gdb, log))
}

func sampleQP() *types.GeneratedQP {
	return &types.GeneratedQP{
		ProgramID:      1,
		CourseID:       1,
		AssessmentType: "MID-1",
		DateOfExam:     "2026-03-15",
		RegulationID:   1,
		Year:           "II",
		Semester:       "I",
		AcademicYear:   "2025-2026",
		Questions:      `[1,4,9]`,
	}
}

func TestCreateGeneratedQPStampsCreatedAt(t *testing.T) {
	svc := newQPService(t)

	created, err := svc.CreateGeneratedQP(context.Background(), sampleQP())
	if err != nil {
		t.Fatalf("CreateGeneratedQP: %v", err)
	}
	if created.CreatedAt == "" {
		t.Fatalf("created_at not stamped")
	}
	if _, err := time.Parse(time.RFC3339, created.CreatedAt); err != nil {
		t.Fatalf("created_at not RFC 3339: %q (%v)", created.CreatedAt, err)
	}
}

func TestCreateGeneratedQPKeepsCallerTimestamp(t *testing.T) {
	svc := newQPService(t)

	qp := sampleQP()
	qp.CreatedAt = "2026-01-01T00:00:00Z"
	created, err := svc.CreateGeneratedQP(context.Background(), qp)
	if err != nil {
		t.Fatalf("CreateGeneratedQP: %v", err)
	}
	if created.CreatedAt != "2026-01-01T00:00:00Z" {
		t.Fatalf("caller timestamp overwritten: %q", created.CreatedAt)
	}
}

func TestGetGeneratedQPKeyedFetch(t *testing.T) {
	svc := newQPService(t)
	ctx := context.Background()

	if _, err := svc.GetGeneratedQP(ctx, 42); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("get on empty store: want ErrNotFound got %v", err)
	}

	created, err := svc.CreateGeneratedQP(ctx, sampleQP())
	if err != nil {
		t.Fatalf("CreateGeneratedQP: %v", err)
	}

	// Repeated reads return the same record with no side effects.
	for i := 0; i < 3; i++ {
		got, err := svc.GetGeneratedQP(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetGeneratedQP (pass %d): %v", i, err)
		}
		if got.ID != created.ID || got.Questions != created.Questions {
			t.Fatalf("record mismatch on pass %d", i)
		}
	}

	all, err := svc.ListGeneratedQPs(ctx, 0, 100)
	if err != nil {
		t.Fatalf("ListGeneratedQPs: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("list count: want=1 got=%d", len(all))
	}
}
