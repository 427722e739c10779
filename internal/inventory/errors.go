package inventory

import "errors"

var (
	// ErrStorageUnavailable indicates the backing store cannot be opened or read.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrStorageWriteFailed indicates a commit transaction was rolled back.
	ErrStorageWriteFailed = errors.New("storage write failed")
	// ErrInvalidRowReference indicates an edit referenced a row index outside
	// the baseline it was computed from.
	ErrInvalidRowReference = errors.New("invalid row reference")
	// ErrNoData distinguishes a missing inventory table from a read failure.
	ErrNoData = errors.New("no inventory data")
	// ErrValidation indicates an edit carried values the schema rejects.
	ErrValidation = errors.New("validation failed")
)
