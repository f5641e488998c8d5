package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy for the comparison pipeline.
var (
	// ErrNotFound means the comparison (or file) does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput covers malformed request parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExtraction covers gateway failures: unreachable, non-2xx,
	// malformed or missing structured payload.
	ErrExtraction = errors.New("extraction failed")
	// ErrNormalization means the payload was present but unusable
	// (zero parseable items after cleaning).
	ErrNormalization = errors.New("normalization failed")
	// ErrConflict is a transition attempted against a record not in the
	// expected source status. Losing claimants swallow it; it is exported
	// for callers that want to observe the race in tests.
	ErrConflict = errors.New("concurrent transition in progress")
	// ErrInvalidState covers operations not permitted in the record's
	// current status (e.g. memo generation before completion).
	ErrInvalidState = errors.New("operation not valid in current status")
	// ErrDatabase wraps persistence failures.
	ErrDatabase = errors.New("database error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func ExtractionError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrExtraction
	}
	return NewAppError("EXTRACTION_FAILURE", message, fmt.Errorf("%w: %w", ErrExtraction, cause))
}

func NormalizationError(message string) *AppError {
	return NewAppError("NORMALIZATION_FAILURE", message, ErrNormalization)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// ToGRPCStatus maps the failure taxonomy onto gRPC status codes.
func ToGRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrInvalidState):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrExtraction), errors.Is(err, ErrNormalization):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
