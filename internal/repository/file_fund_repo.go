package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/epeers/fundsite/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultFundsFile is the catalog location relative to the content root
const DefaultFundsFile = "data/funds.json"

// fundRecord mirrors one element of the catalog file. Pointers distinguish a
// missing field from a zero value. NAV stays raw so that only a JSON number
// is accepted; decimal.Decimal alone would also take a quoted string.
type fundRecord struct {
	ID          *int64          `json:"Id"`
	Name        *string         `json:"Name"`
	Category    *string         `json:"Category"`
	NAV         json.RawMessage `json:"NAV"`
	Description *string         `json:"Description"`
}

// FileFundRepository reads the fund catalog from a JSON file under a content root.
// The file is re-read on every call.
type FileFundRepository struct {
	contentRoot string
	relPath     string
}

// NewFileFundRepository creates a new FileFundRepository.
// An empty relPath falls back to DefaultFundsFile.
func NewFileFundRepository(contentRoot, relPath string) *FileFundRepository {
	if relPath == "" {
		relPath = DefaultFundsFile
	}
	return &FileFundRepository{
		contentRoot: contentRoot,
		relPath:     relPath,
	}
}

// Source returns the name of the backing store
func (r *FileFundRepository) Source() string {
	return SourceFile
}

// Path returns the resolved location of the catalog file
func (r *FileFundRepository) Path() string {
	return filepath.Join(r.contentRoot, filepath.FromSlash(r.relPath))
}

// ListFunds reads and decodes the catalog file.
// Read failures wrap ErrDataSourceUnavailable, decode failures wrap ErrMalformedData.
func (r *FileFundRepository) ListFunds(ctx context.Context) ([]models.Fund, error) {
	path := r.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrDataSourceUnavailable, path, err)
	}

	funds, err := DecodeFunds(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return funds, nil
}

// DecodeFunds parses a JSON array of fund objects. Field names match
// case-insensitively; unknown, missing, null or mistyped fields are rejected
// with ErrMalformedData, as is anything after the closing bracket.
func DecodeFunds(r io.Reader) ([]models.Fund, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var records []fundRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array, got null", ErrMalformedData)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after catalog array", ErrMalformedData)
	}

	funds := make([]models.Fund, 0, len(records))
	for i, rec := range records {
		fund, err := rec.toFund()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedData, i, err)
		}
		funds = append(funds, fund)
	}
	return funds, nil
}

func (rec fundRecord) toFund() (models.Fund, error) {
	var missing []string
	if rec.ID == nil {
		missing = append(missing, "Id")
	}
	if rec.Name == nil {
		missing = append(missing, "Name")
	}
	if rec.Category == nil {
		missing = append(missing, "Category")
	}
	if len(rec.NAV) == 0 {
		missing = append(missing, "NAV")
	}
	if rec.Description == nil {
		missing = append(missing, "Description")
	}
	if len(missing) > 0 {
		return models.Fund{}, fmt.Errorf("missing fields %v", missing)
	}

	nav, err := parseNAV(rec.NAV)
	if err != nil {
		return models.Fund{}, err
	}

	return models.Fund{
		ID:          *rec.ID,
		Name:        *rec.Name,
		Category:    *rec.Category,
		NAV:         nav,
		Description: *rec.Description,
	}, nil
}

// parseNAV accepts a JSON number literal only
func parseNAV(raw json.RawMessage) (decimal.Decimal, error) {
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return decimal.Decimal{}, fmt.Errorf("NAV must be a JSON number, got %s", raw)
	}
	nav, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid NAV %s: %w", raw, err)
	}
	return nav, nil
}
