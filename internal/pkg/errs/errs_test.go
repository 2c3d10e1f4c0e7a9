//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"recarma/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("vehicle not found")

	t.Run("marked error matches the sentinel with errors.Is", func(t *testing.T) {
		err := errs.Mark(errs.New("no rows in result set"), sentinel)

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("original cause stays reachable", func(t *testing.T) {
		cause := errors.New("no rows in result set")

		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("no rows"), sentinel), "lookup failed")

		assert.ErrorIs(t, err, sentinel)
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errs.Wrap(nil, "ignored"))
	})

	t.Run("message is prefixed", func(t *testing.T) {
		err := errs.Wrap(errs.New("boom"), "saving vehicle")

		assert.Equal(t, "saving vehicle: boom", err.Error())
	})
}
