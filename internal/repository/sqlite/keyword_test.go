package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tubestudy/tracker/internal/domain"
)

func TestKeywordRepository_Create(t *testing.T) {
	repo := newTestDB(t).Keywords()
	ctx := context.Background()

	k := &domain.DistractionKeyword{Keyword: "shorts", Category: "custom", AlertMessage: "Back to work", IsActive: true, IsCustom: true}
	if err := repo.Create(ctx, k); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if k.ID == 0 {
		t.Fatal("expected keyword ID to be set")
	}
	if k.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := repo.GetByID(ctx, k.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Keyword != "shorts" || got.AlertMessage != "Back to work" || !got.IsCustom {
		t.Fatalf("unexpected keyword: %+v", got)
	}
}

func TestKeywordRepository_ListActiveAndAll(t *testing.T) {
	repo := newTestDB(t).Keywords()
	ctx := context.Background()

	active := &domain.DistractionKeyword{Keyword: "vlog", Category: "Entertainment", IsActive: true}
	inactive := &domain.DistractionKeyword{Keyword: "asmr", Category: "Entertainment", IsActive: false}
	for _, k := range []*domain.DistractionKeyword{active, inactive} {
		if err := repo.Create(ctx, k); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(got) != 1 || got[0].Keyword != "vlog" {
		t.Fatalf("expected only the active keyword, got %+v", got)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(all))
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected count 2, got %d", n)
	}
}

func TestKeywordRepository_Update(t *testing.T) {
	repo := newTestDB(t).Keywords()
	ctx := context.Background()

	k := &domain.DistractionKeyword{Keyword: "game", Category: "Game", IsActive: true, IsCustom: true}
	if err := repo.Create(ctx, k); err != nil {
		t.Fatalf("Create: %v", err)
	}

	k.Keyword = "speedrun"
	k.IsActive = false
	if err := repo.Update(ctx, k); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, k.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Keyword != "speedrun" || got.IsActive {
		t.Fatalf("expected updated keyword, got %+v", got)
	}
}

func TestKeywordRepository_NotFound(t *testing.T) {
	repo := newTestDB(t).Keywords()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, &domain.DistractionKeyword{ID: 999, Keyword: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestKeywordRepository_Delete(t *testing.T) {
	repo := newTestDB(t).Keywords()
	ctx := context.Background()

	k := &domain.DistractionKeyword{Keyword: "drama", Category: "custom", IsActive: true, IsCustom: true}
	if err := repo.Create(ctx, k); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, k.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, k.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
