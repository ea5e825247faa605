package resource

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid resource category")
	ErrInvalidCatalog  = errors.New("invalid resource catalog")
)
