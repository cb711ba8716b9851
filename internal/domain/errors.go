package domain

import "errors"

var (
	ErrCaseNotFound        = errors.New("case not found")
	ErrStoreUnavailable    = errors.New("case store unavailable")
	ErrUpdateFailed        = errors.New("case status update failed")
	ErrInvalidStatus       = errors.New("invalid case status")
	ErrInvalidPriority     = errors.New("invalid case priority")
	ErrDocumentUnavailable = errors.New("case document unavailable")
	ErrInvalidLocation     = errors.New("invalid document location")
)
