package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = catalog content, W2xxx = cross-source consistency.
type WarningCode string

const (
	WarnDuplicateFundID   WarningCode = "W1001" // more than one record with the same id; first one wins
	WarnCatalogDivergence WarningCode = "W2001" // listing and detail catalogs disagree
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
