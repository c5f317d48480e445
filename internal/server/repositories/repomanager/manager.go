package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tabsense/internal/dbx"
	"github.com/dmitrijs2005/tabsense/internal/server/repositories/tabs"
	"github.com/dmitrijs2005/tabsense/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tabs(db dbx.DBTX) tabs.Repository
}
