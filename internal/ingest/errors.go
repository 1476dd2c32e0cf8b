package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable means the uploaded file could not be opened at
	// all, whether it lives on local disk or behind a remote URL. Nothing
	// has been read when this is returned.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrDecode means the byte stream or the CSV structure itself is broken
	// (read error, wrong column count). It aborts the remaining rows.
	ErrDecode = errors.New("decode error")

	// ErrMissingTenantContext means the job arrived without an owner id or
	// a business name. Checked once, before any row is read.
	ErrMissingTenantContext = errors.New("missing tenant context")

	// ErrUnsupportedFormat is returned when an uploaded file is neither CSV
	// nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// RowError rejects a single record without aborting the import.
type RowError struct {
	Reason string
}

func (e *RowError) Error() string {
	return e.Reason
}

func rejectf(format string, args ...any) *RowError {
	return &RowError{Reason: fmt.Sprintf(format, args...)}
}
