package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"supplierhub/internal/registration/models"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/sentinel"
)

// Postgres persists registrations.
//
// Schema:
//
//	CREATE TABLE registrations (
//	    id             UUID PRIMARY KEY,
//	    supplier_id    UUID NOT NULL UNIQUE,
//	    status         TEXT NOT NULL,
//	    category_name  TEXT NOT NULL DEFAULT '',
//	    subcategories  TEXT[] NOT NULL DEFAULT '{}',
//	    price_amount   BIGINT NOT NULL DEFAULT 0,
//	    price_currency TEXT NOT NULL DEFAULT '',
//	    available_days TEXT[] NOT NULL DEFAULT '{}',
//	    photos         JSONB NOT NULL DEFAULT '[]',
//	    created_at     TIMESTAMPTZ NOT NULL,
//	    updated_at     TIMESTAMPTZ NOT NULL
//	);
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, registration *models.Registration) error {
	photos, err := json.Marshal(registration.Photos)
	if err != nil {
		return fmt.Errorf("marshal photos: %w", err)
	}
	query := `
		INSERT INTO registrations
			(id, supplier_id, status, category_name, subcategories,
			 price_amount, price_currency, available_days, photos,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.db.ExecContext(ctx, query,
		registration.ID.String(),
		registration.SupplierID.String(),
		string(registration.Status),
		registration.CategoryName,
		pq.Array(registration.Subcategories),
		registration.PriceAmount,
		registration.PriceCurrency,
		pq.Array(weekdayStrings(registration.AvailableDays)),
		photos,
		registration.CreatedAt,
		registration.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

func (s *Postgres) FindBySupplier(ctx context.Context, supplierID id.SupplierID) (*models.Registration, error) {
	row := s.db.QueryRowContext(ctx, selectQuery+` WHERE supplier_id = $1`, supplierID.String())
	registration, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return registration, nil
}

// Execute loads the supplier's registration FOR UPDATE inside a
// transaction, applies fn, and writes the result back. The row lock
// holds for both validation and mutation.
func (s *Postgres) Execute(ctx context.Context, supplierID id.SupplierID, fn func(r *models.Registration) error) (*models.Registration, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	row := tx.QueryRowContext(ctx, selectQuery+` WHERE supplier_id = $1 FOR UPDATE`, supplierID.String())
	registration, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("lock registration: %w", err)
	}

	if err := fn(registration); err != nil {
		return nil, err
	}

	photos, err := json.Marshal(registration.Photos)
	if err != nil {
		return nil, fmt.Errorf("marshal photos: %w", err)
	}
	update := `
		UPDATE registrations SET
			status = $2, category_name = $3, subcategories = $4,
			price_amount = $5, price_currency = $6, available_days = $7,
			photos = $8, updated_at = $9
		WHERE supplier_id = $1
	`
	if _, err := tx.ExecContext(ctx, update,
		supplierID.String(),
		string(registration.Status),
		registration.CategoryName,
		pq.Array(registration.Subcategories),
		registration.PriceAmount,
		registration.PriceCurrency,
		pq.Array(weekdayStrings(registration.AvailableDays)),
		photos,
		registration.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registration update: %w", err)
	}
	return registration, nil
}

const selectQuery = `
	SELECT id, supplier_id, status, category_name, subcategories,
	       price_amount, price_currency, available_days, photos,
	       created_at, updated_at
	FROM registrations
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*models.Registration, error) {
	var (
		registration models.Registration
		rawID        string
		rawSupplier  string
		rawStatus    string
		rawDays      []string
		rawPhotos    []byte
	)
	err := row.Scan(
		&rawID,
		&rawSupplier,
		&rawStatus,
		&registration.CategoryName,
		pq.Array(&registration.Subcategories),
		&registration.PriceAmount,
		&registration.PriceCurrency,
		pq.Array(&rawDays),
		&rawPhotos,
		&registration.CreatedAt,
		&registration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	registrationID, err := id.ParseRegistrationID(rawID)
	if err != nil {
		return nil, err
	}
	supplierID, err := id.ParseSupplierID(rawSupplier)
	if err != nil {
		return nil, err
	}
	registration.ID = registrationID
	registration.SupplierID = supplierID
	registration.Status = models.Status(rawStatus)

	for _, day := range rawDays {
		registration.AvailableDays = append(registration.AvailableDays, models.Weekday(day))
	}
	if len(rawPhotos) > 0 {
		if err := json.Unmarshal(rawPhotos, &registration.Photos); err != nil {
			return nil, fmt.Errorf("unmarshal photos: %w", err)
		}
	}
	return &registration, nil
}

func weekdayStrings(days []models.Weekday) []string {
	out := make([]string, len(days))
	for i, day := range days {
		out[i] = string(day)
	}
	return out
}
