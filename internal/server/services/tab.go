package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tabsense/internal/common"
	"github.com/dmitrijs2005/tabsense/internal/dbx"
	"github.com/dmitrijs2005/tabsense/internal/server/config"
	"github.com/dmitrijs2005/tabsense/internal/server/models"
	"github.com/dmitrijs2005/tabsense/internal/server/repositories/repomanager"
)

// TabMetadata is the caller-supplied description of a tab being saved.
type TabMetadata struct {
	Title  string
	Artist string
	Tuning string
	BPM    string
}

// TabService implements owner-scoped CRUD over saved transcriptions.
type TabService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTabService constructs a TabService.
func NewTabService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *TabService {
	return &TabService{db: db, repomanager: m}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Save persists a new tab for ownerID with a fresh id and timestamp. Missing
// metadata falls back to display defaults; the tab text is stored verbatim.
func (s *TabService) Save(ctx context.Context, ownerID string, meta TabMetadata, content string) (*models.Tab, error) {
	tab := &models.Tab{
		ID:        newID(),
		UserID:    ownerID,
		Title:     orDefault(meta.Title, "Untitled Song"),
		Artist:    orDefault(meta.Artist, "Unknown Artist"),
		Tuning:    orDefault(meta.Tuning, "Standard E"),
		BPM:       orDefault(meta.BPM, "N/A"),
		Content:   content,
		CreatedAt: nowFn(),
	}

	created, err := s.repomanager.Tabs(s.db).Create(ctx, tab)
	if err != nil {
		return nil, fmt.Errorf("error saving tab: %w", err)
	}
	return created, nil
}

// ListByOwner returns the owner's tabs, newest first. Tabs of other users are
// never included.
func (s *TabService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Tab, error) {
	return s.repomanager.Tabs(s.db).SelectByUser(ctx, ownerID)
}

// Delete removes a tab if and only if it belongs to ownerID. A missing id is
// common.ErrorNotFound; someone else's tab is common.ErrorForbidden and the
// record is left intact. The ownership check and the delete run in one
// transaction so the tab cannot change hands between them. Delete is
// intentionally not idempotent.
func (s *TabService) Delete(ctx context.Context, ownerID, tabID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tabs(tx)

		tab, err := repo.GetByID(ctx, tabID)
		if err != nil {
			return err
		}
		if tab.UserID != ownerID {
			return common.ErrorForbidden
		}

		return repo.Delete(ctx, tabID)
	})
}
