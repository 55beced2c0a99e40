package repository

import (
	"context"

	"github.com/epeers/fundsite/internal/models"
	"github.com/shopspring/decimal"
)

// staticFunds is the catalog compiled into the binary. Never hand it out directly.
var staticFunds = []models.Fund{
	{ID: 1, Name: "Alpha Fund", Category: "Equity", NAV: decimal.RequireFromString("100.50"), Description: "A diversified equity fund."},
	{ID: 2, Name: "Beta Fund", Category: "Debt", NAV: decimal.RequireFromString("45.20"), Description: "Fixed income fund."},
	{ID: 3, Name: "Gamma Fund", Category: "Hybrid", NAV: decimal.RequireFromString("78.75"), Description: "Balanced fund."},
}

// StaticFundRepository serves the built-in fund list
type StaticFundRepository struct{}

// NewStaticFundRepository creates a new StaticFundRepository
func NewStaticFundRepository() *StaticFundRepository {
	return &StaticFundRepository{}
}

// Source returns the name of the backing store
func (r *StaticFundRepository) Source() string {
	return SourceStatic
}

// ListFunds returns a copy of the built-in catalog in declaration order
func (r *StaticFundRepository) ListFunds(ctx context.Context) ([]models.Fund, error) {
	funds := make([]models.Fund, len(staticFunds))
	copy(funds, staticFunds)
	return funds, nil
}
