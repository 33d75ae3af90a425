package store

import (
	"context"

	"github.com/jb131997/gymdesk/internal/config"
	"github.com/jb131997/gymdesk/internal/logger"
)

// Storages groups all repositories into a single dependency bundle for the
// service layer.
type Storages struct {
	ProfileRepository   ProfileRepository
	MemberRepository    MemberRepository
	NoteRepository      NoteRepository
	ProductRepository   ProductRepository
	DashboardRepository DashboardRepository
}

// NewStorages initialises the storage layer:
//
//  1. Opens the PostgreSQL connection pool and pings it.
//  2. Runs pending schema migrations.
//  3. Constructs every repository over the shared [DB] handle.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		ProfileRepository:   NewProfileRepository(db, logger),
		MemberRepository:    NewMemberRepository(db, logger),
		NoteRepository:      NewNoteRepository(db, logger),
		ProductRepository:   NewProductRepository(db, logger),
		DashboardRepository: NewDashboardRepository(db, logger),
	}, nil
}
