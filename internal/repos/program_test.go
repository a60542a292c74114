package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/websaga/websaga-backend/internal/types"
)

func TestProgramCreateReturnsInputNameAndUniqueIDs(t *testing.T) {
	repo := NewProgramRepo(testDB(t), testLogger(t))
	ctx := context.Background()

	seen := map[uint]bool{}
	for _, name := range []string{"B.Tech", "M.Tech", "MBA"} {
		created, err := repo.Create(ctx, nil, &types.Program{Name: name, Status: true})
		if err != nil {
			t.Fatalf("Create %q: %v", name, err)
		}
		if created.Name != name {
			t.Fatalf("created name: want=%q got=%q", name, created.Name)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate program id %d", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestProgramGetByIDNotFound(t *testing.T) {
	repo := NewProgramRepo(testDB(t), testLogger(t))

	if _, err := repo.GetByID(context.Background(), nil, 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID on empty store: want ErrNotFound got %v", err)
	}
}

func TestProgramListPagination(t *testing.T) {
	repo := NewProgramRepo(testDB(t), testLogger(t))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C", "D"} {
		if _, err := repo.Create(ctx, nil, &types.Program{Name: name, Status: true}); err != nil {
			t.Fatalf("Create %q: %v", name, err)
		}
	}

	page, err := repo.List(ctx, nil, 1, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page size: want=2 got=%d", len(page))
	}
}

func TestProgramDeleteReturnsRemovedRecord(t *testing.T) {
	repo := NewProgramRepo(testDB(t), testLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &types.Program{Name: "B.Tech", Status: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	removed, err := repo.Delete(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed.Name != "B.Tech" {
		t.Fatalf("removed record name: want=%q got=%q", "B.Tech", removed.Name)
	}

	if _, err := repo.Delete(ctx, nil, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound got %v", err)
	}
}

func TestProgramUpdateRoundTrip(t *testing.T) {
	repo := NewProgramRepo(testDB(t), testLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &types.Program{Name: "B.Tech", Status: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	created.Name = "B.Tech (CSE)"
	if err := repo.Save(ctx, nil, created); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "B.Tech (CSE)" {
		t.Fatalf("updated name: want=%q got=%q", "B.Tech (CSE)", got.Name)
	}
}
