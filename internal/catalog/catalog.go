package catalog

import "errors"

var (
	ErrNotLoaded       = errors.New("catalog database not loaded")
	ErrUnknownCategory = errors.New("unknown category")
)
