package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Fund is the display record of a single investment fund.
// JSON names follow the catalog file format (Id, Name, Category, NAV, Description).
type Fund struct {
	ID          int64           `json:"Id"`
	Name        string          `json:"Name"`
	Category    string          `json:"Category"`
	NAV         decimal.Decimal `json:"NAV" swaggertype:"number" example:"100.50"`
	Description string          `json:"Description"`
}

// Equal reports whether two records carry the same values.
// NAV is compared numerically, so 100.5 and 100.50 are equal.
func (f Fund) Equal(other Fund) bool {
	return f.ID == other.ID &&
		f.Name == other.Name &&
		f.Category == other.Category &&
		f.NAV.Equal(other.NAV) &&
		f.Description == other.Description
}

// MarshalJSON writes NAV as a JSON number with at least two decimal places,
// so API output can be read back as a catalog file.
func (f Fund) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int64       `json:"Id"`
		Name        string      `json:"Name"`
		Category    string      `json:"Category"`
		NAV         json.Number `json:"NAV"`
		Description string      `json:"Description"`
	}{
		ID:          f.ID,
		Name:        f.Name,
		Category:    f.Category,
		NAV:         json.Number(FormatNAVNumber(f.NAV)),
		Description: f.Description,
	})
}

// FormatNAVNumber renders nav in plain notation with no fewer than two
// fractional digits and without dropping any significant ones.
func FormatNAVNumber(nav decimal.Decimal) string {
	return nav.StringFixed(max(2, -nav.Exponent()))
}
