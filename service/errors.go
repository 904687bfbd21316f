package service

import "errors"

// ErrNotFound marks lookups and writes that matched no row.
var ErrNotFound = errors.New("record not found")
