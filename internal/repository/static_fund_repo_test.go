package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestStaticFundRepository_ListFunds(t *testing.T) {
	funds, err := NewStaticFundRepository().ListFunds(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(funds) != 3 {
		t.Fatalf("expected 3 funds, got %d", len(funds))
	}

	want := []struct {
		id          int64
		name        string
		category    string
		nav         string
		description string
	}{
		{1, "Alpha Fund", "Equity", "100.50", "A diversified equity fund."},
		{2, "Beta Fund", "Debt", "45.20", "Fixed income fund."},
		{3, "Gamma Fund", "Hybrid", "78.75", "Balanced fund."},
	}
	for i, w := range want {
		f := funds[i]
		if f.ID != w.id || f.Name != w.name || f.Category != w.category || f.Description != w.description {
			t.Errorf("fund %d: unexpected record %+v", i, f)
		}
		if !f.NAV.Equal(decimal.RequireFromString(w.nav)) {
			t.Errorf("fund %d: expected NAV %s, got %s", i, w.nav, f.NAV)
		}
	}
}

func TestStaticFundRepository_ReturnsCopy(t *testing.T) {
	repo := NewStaticFundRepository()
	first, _ := repo.ListFunds(context.Background())
	first[0].Name = "Changed"

	second, _ := repo.ListFunds(context.Background())
	if second[0].Name != "Alpha Fund" {
		t.Errorf("static catalog was mutated through a returned slice: %q", second[0].Name)
	}
}
