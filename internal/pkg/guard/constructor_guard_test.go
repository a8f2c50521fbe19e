package guard_test

import (
	"errors"
	"testing"

	"retail/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("should create constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass for constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("custom error"))

		require.NoError(t, err)
	})

	t.Run("should return custom error for zero value guard", func(t *testing.T) {
		var g guard.ConstructorGuard
		customErr := errors.New("object was not constructed")

		err := g.Validate(customErr)

		require.Error(t, err)
		assert.Equal(t, customErr, err)
	})

	t.Run("should return default error when validation error is nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("should pass for constructed guard with nil error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(nil)

		require.NoError(t, err)
	})
}
