package api

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidRequest is returned for a malformed store batch.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrIndexOutOfRange is returned when the requested file index is not
	// covered by the committed batch.
	ErrIndexOutOfRange = errors.New("file index out of range")
	// ErrIntegrityViolation is returned by the client when a fetched file does
	// not verify against the locally held root. The file must not be used.
	ErrIntegrityViolation = errors.New("integrity violation")
	// ErrStorageIO is returned when the persisted state could not be read or
	// written.
	ErrStorageIO = errors.New("storage io failure")
)

// ErrorKind names an error in the taxonomy on the wire.
type ErrorKind string

const (
	KindInvalidRequest     ErrorKind = "invalid_request"
	KindIndexOutOfRange    ErrorKind = "index_out_of_range"
	KindIntegrityViolation ErrorKind = "integrity_violation"
	KindStorageIO          ErrorKind = "storage_io"
	KindUnknown            ErrorKind = "unknown"
)

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"kind"`
}

// KindOf classifies err against the taxonomy.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return KindInvalidRequest
	case errors.Is(err, ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, ErrIntegrityViolation):
		return KindIntegrityViolation
	case errors.Is(err, ErrStorageIO):
		return KindStorageIO
	}
	return KindUnknown
}

// Sentinel returns the error a kind stands for, nil for unknown kinds.
func (k ErrorKind) Sentinel() error {
	switch k {
	case KindInvalidRequest:
		return ErrInvalidRequest
	case KindIndexOutOfRange:
		return ErrIndexOutOfRange
	case KindIntegrityViolation:
		return ErrIntegrityViolation
	case KindStorageIO:
		return ErrStorageIO
	}
	return nil
}

// HTTPStatus returns the status code used to carry the kind.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindIndexOutOfRange:
		return http.StatusNotFound
	case KindIntegrityViolation:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
