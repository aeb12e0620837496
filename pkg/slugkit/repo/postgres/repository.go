package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-slug/pkg/slugkit"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements slugkit.Repository using PostgreSQL. It relies on a
// unique index over (content_type, slug) on the content_item table:
//
//	CREATE UNIQUE INDEX content_item_slug_idx
//	    ON content_item (content_type, slug) WHERE slug <> '';
//
// so that racing SaveSlug calls are serialized by the database and surface as
// slugkit.ErrSlugConflict for the service to retry.
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) slugkit.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) slugkit.Repository {
	return &Repository{db: pool}
}

// handlePostgresError maps driver errors onto the domain error set.
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return slugkit.ErrSlugConflict
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	// Network-level failures mean the database is unreachable, not that the
	// statement was wrong.
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w in %s: %v", slugkit.ErrRepositoryUnavailable, operation, err)
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

func (r *Repository) ExistsSlug(ctx context.Context, contentType slugkit.ContentType, slug string, excludeID *uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM content_item
            WHERE content_type = $1 AND slug = $2
              AND ($3::uuid IS NULL OR id <> $3)
        )`

	var exists bool
	if err := r.db.QueryRow(ctx, query, contentType, slug, excludeID).Scan(&exists); err != nil {
		return false, r.handlePostgresError("exists slug", err)
	}

	return exists, nil
}

func (r *Repository) SaveSlug(ctx context.Context, entityID uuid.UUID, contentType slugkit.ContentType, slug string) error {
	query := `
        UPDATE content_item
        SET slug = $3, updated_at = NOW()
        WHERE id = $1 AND content_type = $2`

	tag, err := r.db.Exec(ctx, query, entityID, contentType, slug)
	if err != nil {
		return r.handlePostgresError("save slug", err)
	}
	if tag.RowsAffected() == 0 {
		return slugkit.ErrItemNotFound
	}

	return nil
}

func (r *Repository) CreateItem(ctx context.Context, item *slugkit.ContentItem) error {
	query := `
        INSERT INTO content_item (id, content_type, title, slug, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		item.ID, item.ContentType, item.Title, item.Slug, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create item", err)
	}

	return nil
}

func (r *Repository) GetItem(ctx context.Context, id uuid.UUID) (*slugkit.ContentItem, error) {
	query := `
        SELECT id, content_type, title, slug, created_at, updated_at
        FROM content_item WHERE id = $1`

	var item slugkit.ContentItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.ContentType, &item.Title, &item.Slug, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, slugkit.ErrItemNotFound
		}
		return nil, r.handlePostgresError("get item", err)
	}

	return &item, nil
}

func (r *Repository) ListItems(ctx context.Context, contentType slugkit.ContentType, limit int) ([]*slugkit.ContentItem, error) {
	query := `
        SELECT id, content_type, title, slug, created_at, updated_at
        FROM content_item WHERE content_type = $1
        ORDER BY created_at ASC, id ASC`
	args := []interface{}{contentType}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.handlePostgresError("list items", err)
	}
	defer rows.Close()

	var items []*slugkit.ContentItem
	for rows.Next() {
		var item slugkit.ContentItem
		if err := rows.Scan(&item.ID, &item.ContentType, &item.Title, &item.Slug, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, r.handlePostgresError("scan item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, r.handlePostgresError("list items", err)
	}

	return items, nil
}
