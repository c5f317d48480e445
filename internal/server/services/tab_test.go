package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/tabsense/internal/common"
)

func newTabService(db *sql.DB, rm *fakeRepoManager) *TabService {
	return NewTabService(db, rm, testConfig())
}

func TestSave_AppliesDefaults(t *testing.T) {
	s := newTabService(nil, newTestManager())

	tab, err := s.Save(context.Background(), "u-1", TabMetadata{}, "e|---0---|")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if tab.Title != "Untitled Song" || tab.Artist != "Unknown Artist" {
		t.Fatalf("defaults not applied: %+v", tab)
	}
	if tab.Tuning != "Standard E" || tab.BPM != "N/A" {
		t.Fatalf("tuning/bpm defaults not applied: %+v", tab)
	}
	if tab.ID == "" || tab.CreatedAt.IsZero() {
		t.Fatalf("id/timestamp not assigned: %+v", tab)
	}
}

func TestSaveThenList_OwnerScoped(t *testing.T) {
	rm := newTestManager()
	s := newTabService(nil, rm)
	ctx := context.Background()

	saved, err := s.Save(ctx, "u-1", TabMetadata{Title: "X"}, "TAB")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	mine, err := s.ListByOwner(ctx, "u-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != saved.ID {
		t.Fatalf("owner must see the saved tab: %+v", mine)
	}

	others, err := s.ListByOwner(ctx, "u-2")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("another owner must never see it: %+v", others)
	}
}

func TestList_NewestFirstForAnyInsertionOrder(t *testing.T) {
	rm := newTestManager()
	s := newTabService(nil, rm)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	defer func() { nowFn = time.Now }()

	// Insert at t1, t3, t2.
	for _, offset := range []time.Duration{0, 2 * time.Hour, time.Hour} {
		ts := base.Add(offset)
		nowFn = func() time.Time { return ts }
		if _, err := s.Save(ctx, "u-1", TabMetadata{Title: ts.String()}, "TAB"); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	got, err := s.ListByOwner(ctx, "u-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tabs, got %d", len(got))
	}
	want := []time.Time{base.Add(2 * time.Hour), base.Add(time.Hour), base}
	for i, tab := range got {
		if !tab.CreatedAt.Equal(want[i]) {
			t.Fatalf("position %d: got %v want %v", i, tab.CreatedAt, want[i])
		}
	}
}

func TestDelete_NotOwner_Forbidden(t *testing.T) {
	rm := newTestManager()
	s := newTabService(txDB(t, "rollback"), rm)
	ctx := context.Background()

	saved, err := s.Save(ctx, "u-1", TabMetadata{Title: "X"}, "TAB")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	err = s.Delete(ctx, "u-2", saved.ID)
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("want ErrorForbidden, got %v", err)
	}

	// Record left intact.
	mine, _ := s.ListByOwner(ctx, "u-1")
	if len(mine) != 1 {
		t.Fatalf("record must survive a forbidden delete: %+v", mine)
	}
}

func TestDelete_UnknownID_NotFound(t *testing.T) {
	s := newTabService(txDB(t, "rollback"), newTestManager())

	err := s.Delete(context.Background(), "u-1", "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestDelete_Owner_Succeeds(t *testing.T) {
	rm := newTestManager()
	s := newTabService(txDB(t, "commit", "rollback"), rm)
	ctx := context.Background()

	saved, err := s.Save(ctx, "u-1", TabMetadata{Title: "X"}, "TAB")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if err := s.Delete(ctx, "u-1", saved.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	// Second delete of the same id is an error, not a no-op.
	if err := s.Delete(ctx, "u-1", saved.ID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("repeat delete must be ErrorNotFound, got %v", err)
	}
}
