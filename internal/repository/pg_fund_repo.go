package repository

import (
	"context"
	"fmt"

	"github.com/epeers/fundsite/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PGFundRepository reads the fund catalog from the fund table
type PGFundRepository struct {
	pool *pgxpool.Pool
}

// NewPGFundRepository creates a new PGFundRepository
func NewPGFundRepository(pool *pgxpool.Pool) *PGFundRepository {
	return &PGFundRepository{pool: pool}
}

// Source returns the name of the backing store
func (r *PGFundRepository) Source() string {
	return SourcePostgres
}

// ListFunds retrieves all funds ordered by id.
// NAV is read as text so the NUMERIC value keeps its exact digits.
func (r *PGFundRepository) ListFunds(ctx context.Context) ([]models.Fund, error) {
	query := `
		SELECT id, name, category, nav::text, description
		FROM fund
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query funds: %w", ErrDataSourceUnavailable, err)
	}
	defer rows.Close()

	funds := []models.Fund{}
	for rows.Next() {
		var f models.Fund
		var nav string
		if err := rows.Scan(&f.ID, &f.Name, &f.Category, &nav, &f.Description); err != nil {
			return nil, fmt.Errorf("%w: failed to scan fund: %w", ErrMalformedData, err)
		}
		f.NAV, err = decimal.NewFromString(nav)
		if err != nil {
			return nil, fmt.Errorf("%w: fund %d has invalid nav %q: %w", ErrMalformedData, f.ID, nav, err)
		}
		funds = append(funds, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read funds: %w", ErrDataSourceUnavailable, err)
	}
	return funds, nil
}
