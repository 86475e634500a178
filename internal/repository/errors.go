package repository

import "errors"

// ErrAlertNotFound is returned when an alert ID does not match any row.
var ErrAlertNotFound = errors.New("price alert not found")
