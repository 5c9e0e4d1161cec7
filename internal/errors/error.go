package errors

import "github.com/pkg/errors"

var (
	// input errors
	ErrEmailMissing  = errors.New("email is missing")
	ErrEmailsMissing = errors.New("emails list is empty")
	ErrBatchTooLarge = errors.New("too many emails, maximum 50 per request")

	// reference data errors
	ErrReferenceDataLoad = errors.New("reference data load failed")
)
