package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorWrapping(t *testing.T) {
	err := ExtractionError("gateway unreachable", errors.New("dial tcp: refused"))
	assert.True(t, errors.Is(err, ErrExtraction))
	assert.Contains(t, err.Error(), "EXTRACTION_FAILURE")
	assert.Contains(t, err.Error(), "dial tcp: refused")

	nerr := NormalizationError("no usable items")
	assert.True(t, errors.Is(nerr, ErrNormalization))
}

func TestToGRPCStatus(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{nil, codes.OK},
		{NewAppError("NOT_FOUND", "x", ErrNotFound), codes.NotFound},
		{NewAppError("BAD", "x", ErrInvalidInput), codes.InvalidArgument},
		{NewAppError("STATE", "x", ErrInvalidState), codes.FailedPrecondition},
		{ExtractionError("x", nil), codes.Unavailable},
		{NormalizationError("x"), codes.Unavailable},
		{errors.New("anything else"), codes.Internal},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, status.Code(ToGRPCStatus(c.err)))
	}
}
