package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/epeers/fundsite/internal/models"
)

// fundCSVHeader is the column order of the catalog export
var fundCSVHeader = []string{"id", "name", "category", "nav", "description"}

// WriteFundsCSV writes funds as CSV with a header row, one row per fund in
// catalog order. NAV keeps its exact decimal digits.
func WriteFundsCSV(w io.Writer, funds []models.Fund) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(fundCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, f := range funds {
		record := []string{
			strconv.FormatInt(f.ID, 10),
			f.Name,
			f.Category,
			f.NAV.String(),
			f.Description,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("row %d: failed to write CSV record: %w", i+2, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
