package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrMaterialNotFound is returned when a packaging material is not in the catalog
	ErrMaterialNotFound = errors.New("material not found in catalog")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrClassifierUnavailable is returned when the claim classifier request fails
	ErrClassifierUnavailable = errors.New("claim classifier request failed")

	// ErrSearchUnavailable is returned when the web verification request fails
	ErrSearchUnavailable = errors.New("web verification request failed")

	// ErrCatalogInvalid is returned when a static catalog file fails validation
	ErrCatalogInvalid = errors.New("invalid catalog data")
)
