package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"supplierhub/internal/catalog/models"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/sentinel"
)

// Postgres persists the category catalog.
//
// Schema:
//
//	CREATE TABLE categories (
//	    id            UUID PRIMARY KEY,
//	    name          TEXT NOT NULL,
//	    subcategories TEXT[] NOT NULL,
//	    position      INT NOT NULL DEFAULT 0,
//	    created_at    TIMESTAMPTZ NOT NULL,
//	    UNIQUE (lower(name))
//	);
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, name, subcategories, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		category.ID.String(),
		category.Name,
		pq.Array(category.Subcategories),
		category.Position,
		category.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	query := `
		SELECT id, name, subcategories, position, created_at
		FROM categories
		WHERE id = $1
	`
	row := s.db.QueryRowContext(ctx, query, categoryID.String())
	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

func (s *Postgres) List(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, subcategories, position, created_at
		FROM categories
		ORDER BY position, name
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*models.Category, error) {
	var (
		category models.Category
		rawID    string
	)
	if err := row.Scan(&rawID, &category.Name, pq.Array(&category.Subcategories), &category.Position, &category.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := id.ParseCategoryID(rawID)
	if err != nil {
		return nil, err
	}
	category.ID = parsed
	return &category, nil
}
