package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/epeers/fundsite/internal/models"
	"golang.org/x/sync/errgroup"
)

// ConsistencyService compares the listing catalog with the detail catalog
type ConsistencyService struct {
	listing FundCatalog
	detail  FundCatalog
}

// NewConsistencyService creates a new ConsistencyService
func NewConsistencyService(listing, detail FundCatalog) *ConsistencyService {
	return &ConsistencyService{
		listing: listing,
		detail:  detail,
	}
}

// Compare loads both catalogs concurrently and reports ids that only one side
// knows about and ids whose records differ. When a catalog holds the same id
// twice, the first record is used, matching Lookup.
func (s *ConsistencyService) Compare(ctx context.Context) (*models.ConsistencyReport, error) {
	defer TrackTime("Compare", time.Now())

	var listingFunds, detailFunds []models.Fund
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		funds, err := s.listing.ListFunds(gctx)
		if err != nil {
			return fmt.Errorf("failed to load %s catalog: %w", s.listing.Source(), err)
		}
		listingFunds = funds
		return nil
	})
	g.Go(func() error {
		funds, err := s.detail.ListFunds(gctx)
		if err != nil {
			return fmt.Errorf("failed to load %s catalog: %w", s.detail.Source(), err)
		}
		detailFunds = funds
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	listingByID := indexFunds(ctx, s.listing.Source(), listingFunds)
	detailByID := indexFunds(ctx, s.detail.Source(), detailFunds)

	report := &models.ConsistencyReport{
		ListingSource: s.listing.Source(),
		DetailSource:  s.detail.Source(),
		OnlyInListing: []int64{},
		OnlyInDetail:  []int64{},
		Mismatched:    []models.FundMismatch{},
	}

	for id, lf := range listingByID {
		df, ok := detailByID[id]
		if !ok {
			report.OnlyInListing = append(report.OnlyInListing, id)
			continue
		}
		if !lf.Equal(df) {
			report.Mismatched = append(report.Mismatched, models.FundMismatch{ID: id, Listing: lf, Detail: df})
		}
	}
	for id := range detailByID {
		if _, ok := listingByID[id]; !ok {
			report.OnlyInDetail = append(report.OnlyInDetail, id)
		}
	}

	sortIDs(report.OnlyInListing)
	sortIDs(report.OnlyInDetail)
	sort.Slice(report.Mismatched, func(i, j int) bool { return report.Mismatched[i].ID < report.Mismatched[j].ID })

	report.Consistent = len(report.OnlyInListing) == 0 && len(report.OnlyInDetail) == 0 && len(report.Mismatched) == 0
	if !report.Consistent {
		AddWarning(ctx, models.Warning{
			Code: models.WarnCatalogDivergence,
			Message: fmt.Sprintf("%s and %s catalogs differ: %d only in listing, %d only in detail, %d mismatched",
				report.ListingSource, report.DetailSource,
				len(report.OnlyInListing), len(report.OnlyInDetail), len(report.Mismatched)),
		})
	}
	return report, nil
}

// indexFunds maps id to the first record carrying it
func indexFunds(ctx context.Context, source string, funds []models.Fund) map[int64]models.Fund {
	byID := make(map[int64]models.Fund, len(funds))
	for _, f := range funds {
		if _, exists := byID[f.ID]; exists {
			AddWarning(ctx, models.Warning{
				Code:    models.WarnDuplicateFundID,
				Message: fmt.Sprintf("%s catalog: fund id %d appears more than once, using the first record", source, f.ID),
			})
			continue
		}
		byID[f.ID] = f
	}
	return byID
}

func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
