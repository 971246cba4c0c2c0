package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolationPanicsWithContractCode(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*errors.GenError)
		require.True(t, ok, "panic value should be a *GenError, got %T", r)
		assert.Equal(t, errors.ErrContractViolation, err.Code)
		assert.Equal(t, "node Foo has both text and children", err.Message)
	}()
	errors.Violation("node %s has both text and children", "Foo")
}

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { errors.Assert(true, "never") })
	assert.Panics(t, func() { errors.Assert(false, "always") })
}

func TestRecover(t *testing.T) {
	run := func(f func()) (err error) {
		defer errors.Recover(&err)
		f()
		return nil
	}

	t.Run("no_panic", func(t *testing.T) {
		assert.NoError(t, run(func() {}))
	})

	t.Run("contract_violation", func(t *testing.T) {
		err := run(func() { errors.Violation("bad child %q", "X") })
		assert.True(t, errors.IsErrorCode(err, errors.ErrContractViolation))
	})

	t.Run("foreign_error", func(t *testing.T) {
		base := stderrors.New("boom")
		err := run(func() { panic(base) })
		assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
		assert.ErrorIs(t, err, base)
	})

	t.Run("non_error_value", func(t *testing.T) {
		err := run(func() { panic("plain string") })
		assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
		assert.Contains(t, err.Error(), "plain string")
	})
}
