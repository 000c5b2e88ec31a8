package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_States(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name                                  string
		r                                     Result[int]
		success, failure, cancel, empty, has bool
	}{
		{"success", Success(1), true, false, false, false, true},
		{"failure", Fail[int](boom), false, true, false, false, false},
		{"cancel", Cancel[int](context.Canceled), false, false, true, false, false},
		{"empty", Empty[int](), false, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.success, tt.r.IsSuccess())
			assert.Equal(t, tt.failure, tt.r.IsFailure())
			assert.Equal(t, tt.cancel, tt.r.IsCancel())
			assert.Equal(t, tt.empty, tt.r.IsEmpty())
			assert.Equal(t, tt.has, tt.r.HasResult())
			assert.False(t, tt.r.CreatedAt().IsZero())
		})
	}
}

func TestResult_CancelFromKeepsIdentity(t *testing.T) {
	t.Parallel()

	from := Cancel[string](context.DeadlineExceeded)
	to := CancelFrom[string, int](from)

	assert.Equal(t, from.Id(), to.Id())
	assert.True(t, to.IsCancel())
	assert.False(t, to.HasResult())
	assert.ErrorIs(t, to.Err(), context.DeadlineExceeded)
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("stopped: %w", context.DeadlineExceeded)))
	assert.False(t, IsCancellationError(errors.New("other")))
	assert.False(t, IsCancellationError(nil))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var ch chan int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(ch))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}
