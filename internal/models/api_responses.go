package models

// FundResponse is the JSON body returned for a single fund lookup
type FundResponse struct {
	Fund     Fund      `json:"fund"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// FundMismatch describes an id present in both catalogs with differing values
type FundMismatch struct {
	ID      int64 `json:"id"`
	Listing Fund  `json:"listing"`
	Detail  Fund  `json:"detail"`
}

// ConsistencyReport compares the listing catalog against the detail catalog
type ConsistencyReport struct {
	ListingSource string         `json:"listing_source"`
	DetailSource  string         `json:"detail_source"`
	Consistent    bool           `json:"consistent"`
	OnlyInListing []int64        `json:"only_in_listing"`
	OnlyInDetail  []int64        `json:"only_in_detail"`
	Mismatched    []FundMismatch `json:"mismatched"`
	Warnings      []Warning      `json:"warnings,omitempty"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
