// Package dto contains data transfer objects.
package dto

// SortRequest carries the raw measurements of a single package to classify.
// Dimensions are in centimeters, mass in kilograms.
type SortRequest struct {
	// Width in centimeters.
	Width float64 `json:"width"`

	// Height in centimeters.
	Height float64 `json:"height"`

	// Length in centimeters.
	Length float64 `json:"length"`

	// Mass in kilograms.
	Mass float64 `json:"mass"`
}

// SortResult is the outcome of classifying a single package.
// Alongside the category it exposes the intermediates the decision was
// based on, so a caller can see why a package landed in its lane.
type SortResult struct {
	// Category is the sorting outcome: STANDARD, SPECIAL, or REJECTED.
	Category string `json:"category"`

	// Volume is the computed volume in cubic centimeters.
	Volume float64 `json:"volume_cm3"`

	// Bulky indicates the package met the bulky criteria.
	Bulky bool `json:"bulky"`

	// Heavy indicates the package met the heavy criteria.
	Heavy bool `json:"heavy"`
}

// BatchSortRequest carries a list of packages to classify in one call.
type BatchSortRequest struct {
	// Packages is the list of packages to classify.
	Packages []SortRequest `json:"packages"`
}

// BatchSortItem is the per-package outcome within a batch. Items fail
// independently: a malformed measurement in one package does not prevent
// the others from being classified.
type BatchSortItem struct {
	// Index is the position of the package in the request.
	Index int `json:"index"`

	// Result is the classification outcome, present when Error is empty.
	Result *SortResult `json:"result,omitempty"`

	// Error describes why this package could not be classified.
	Error string `json:"error,omitempty"`
}

// BatchSortResult is the outcome of classifying a batch of packages.
type BatchSortResult struct {
	// Items holds one entry per requested package, in request order.
	Items []BatchSortItem `json:"items"`

	// Sorted is the number of packages classified successfully.
	Sorted int `json:"sorted"`

	// Failed is the number of packages with invalid measurements.
	Failed int `json:"failed"`
}
