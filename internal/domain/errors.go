package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("region record not found")
	ErrRegionNotFound = errors.New("region not found")
)
