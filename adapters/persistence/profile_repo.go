package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/pkg/apperror"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// postgresProfileRepo keeps each user's whole profile as one JSONB document
// keyed by user id. The store writes full documents, so there is no
// per-collection schema to migrate.
type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) Get(ctx context.Context, userID string) (*portfolio.UserProfile, error) {
	query, args, err := psqlProfile.
		Select("document").
		From("portfolio_profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile query", err)
	}

	var docBytes []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&docBytes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, portfolio.ErrProfileNotFound)
		}
		return nil, apperror.NewInternal("failed to query profile document", err)
	}

	p := portfolio.NewDefaultProfile()
	if err := json.Unmarshal(docBytes, p); err != nil {
		return nil, apperror.NewInternal("failed to unmarshal profile document", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Put(ctx context.Context, userID string, p *portfolio.UserProfile) error {
	docBytes, err := json.Marshal(p)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile document", err)
	}

	query, args, err := psqlProfile.
		Insert("portfolio_profiles").
		Columns("user_id", "document", "updated_at").
		Values(userID, docBytes, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build profile upsert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to upsert profile document", err)
	}
	return nil
}
