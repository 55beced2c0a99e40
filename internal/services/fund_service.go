package services

import (
	"context"
	"fmt"
	"time"

	"github.com/epeers/fundsite/internal/models"
)

// FundCatalog is a source of fund records. Implementations return the whole
// catalog in source order and must not cache between calls.
type FundCatalog interface {
	Source() string
	ListFunds(ctx context.Context) ([]models.Fund, error)
}

// FundService serves the listing view and single-fund lookups.
// The two may be backed by different catalogs.
type FundService struct {
	listing FundCatalog
	detail  FundCatalog
}

// NewFundService creates a new FundService
func NewFundService(listing, detail FundCatalog) *FundService {
	return &FundService{
		listing: listing,
		detail:  detail,
	}
}

// ListingSource names the catalog behind ListCatalog
func (s *FundService) ListingSource() string {
	return s.listing.Source()
}

// DetailSource names the catalog behind Lookup
func (s *FundService) DetailSource() string {
	return s.detail.Source()
}

// ListCatalog returns every fund of the listing catalog in source order
func (s *FundService) ListCatalog(ctx context.Context) ([]models.Fund, error) {
	defer TrackTime("ListCatalog", time.Now())

	funds, err := s.listing.ListFunds(ctx)
	if err != nil {
		return nil, err
	}
	if funds == nil {
		funds = []models.Fund{}
	}
	return funds, nil
}

// Lookup reloads the detail catalog and returns the first fund with the given id.
// found is false when no record matches; err is only set when the catalog
// itself could not be loaded, and is returned exactly as the catalog reported it.
func (s *FundService) Lookup(ctx context.Context, id int64) (fund models.Fund, found bool, err error) {
	defer TrackTime("Lookup", time.Now())

	funds, err := s.detail.ListFunds(ctx)
	if err != nil {
		return models.Fund{}, false, err
	}

	for _, f := range funds {
		if f.ID != id {
			continue
		}
		if !found {
			fund, found = f, true
			continue
		}
		AddWarning(ctx, models.Warning{
			Code:    models.WarnDuplicateFundID,
			Message: fmt.Sprintf("%s catalog: fund id %d appears more than once, using the first record", s.detail.Source(), id),
		})
		break
	}
	return fund, found, nil
}
