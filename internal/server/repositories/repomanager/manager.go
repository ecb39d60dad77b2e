package repomanager

import (
	"context"
	"database/sql"

	"github.com/beautyease/beautyease/internal/dbx"
	"github.com/beautyease/beautyease/internal/server/repositories/profiles"
	"github.com/beautyease/beautyease/internal/server/repositories/refreshtokens"
	"github.com/beautyease/beautyease/internal/server/repositories/scans"
	"github.com/beautyease/beautyease/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Scans(db dbx.DBTX) scans.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
