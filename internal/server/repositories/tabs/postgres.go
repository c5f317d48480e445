// Package tabs provides the PostgreSQL-backed repository for saved
// transcriptions.
package tabs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tabsense/internal/common"
	"github.com/dmitrijs2005/tabsense/internal/dbx"
	"github.com/dmitrijs2005/tabsense/internal/server/models"
)

// PostgresRepository implements tab storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, tab *models.Tab) (*models.Tab, error) {

	query :=
		`INSERT INTO tabs (id, user_id, title, artist, tuning, bpm, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		tab.ID, tab.UserID, tab.Title, tab.Artist, tab.Tuning, tab.BPM, tab.Content, tab.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tab, nil
}

// SelectByUser returns the user's tabs newest-first.
func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*models.Tab, error) {
	query :=
		`SELECT id, user_id, title, artist, tuning, bpm, content, created_at FROM tabs
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select tabs: %w", err)
	}
	defer rows.Close()

	var result []*models.Tab
	for rows.Next() {
		var item models.Tab
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Artist, &item.Tuning, &item.BPM,
			&item.Content, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Tab, error) {
	query :=
		`SELECT id, user_id, title, artist, tuning, bpm, content, created_at FROM tabs
		 WHERE id = $1
		 `

	tab := &models.Tab{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tab.ID, &tab.UserID, &tab.Title, &tab.Artist, &tab.Tuning, &tab.BPM,
		&tab.Content, &tab.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tab, nil
}

// Delete removes a tab by id. A missing id is reported as ErrorNotFound, not
// a no-op.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tabs WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
