package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFund_MarshalJSONWritesNumericNAV(t *testing.T) {
	f := Fund{ID: 1, Name: "Alpha Fund", Category: "Equity", NAV: decimal.RequireFromString("100.5"), Description: "A diversified equity fund."}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"Id":1,"Name":"Alpha Fund","Category":"Equity","NAV":100.50,"Description":"A diversified equity fund."}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestFund_MarshalJSONInsideResponse(t *testing.T) {
	resp := FundResponse{Fund: Fund{ID: 2, NAV: decimal.RequireFromString("45.20")}}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"NAV":45.20`) {
		t.Errorf("expected numeric NAV in %s", data)
	}
}

func TestFormatNAVNumber(t *testing.T) {
	cases := map[string]string{
		"100.5":   "100.50",
		"45.20":   "45.20",
		"12":      "12.00",
		"0":       "0.00",
		"1.23456": "1.23456",
		"1e3":     "1000.00",
	}
	for in, want := range cases {
		got := FormatNAVNumber(decimal.RequireFromString(in))
		if got != want {
			t.Errorf("FormatNAVNumber(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestFund_Equal(t *testing.T) {
	a := Fund{ID: 1, Name: "Alpha Fund", NAV: decimal.RequireFromString("100.5")}
	b := a
	b.NAV = decimal.RequireFromString("100.50")
	if !a.Equal(b) {
		t.Error("expected NAV 100.5 and 100.50 to be equal")
	}
	b.Name = "Other"
	if a.Equal(b) {
		t.Error("expected records with different names to differ")
	}
}
