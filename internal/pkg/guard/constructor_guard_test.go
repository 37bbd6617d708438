package guard_test

import (
	"errors"
	"sync"
	"testing"

	"parceltracker/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("desk must be created via newDesk")

	t.Run("should pass for a constructed guard", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return the given error for a zero value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errNotConstructed)

		// Then
		require.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("should fall back to the default error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInType(t *testing.T) {
	type desk struct {
		name  string
		guard guard.ConstructorGuard
	}
	errDeskNotConstructed := errors.New("desk must be created via newDesk")

	newDesk := func(name string) (desk, error) {
		if name == "" {
			return desk{}, errors.New("name is required")
		}
		return desk{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("should survive copies", func(t *testing.T) {
		d, err := newDesk("front")
		require.NoError(t, err)

		copied := d
		require.NoError(t, copied.guard.Validate(errDeskNotConstructed))
	})

	t.Run("should reject literal construction", func(t *testing.T) {
		d := desk{name: "front"}
		require.ErrorIs(t, d.guard.Validate(errDeskNotConstructed), errDeskNotConstructed)
	})

	t.Run("should not mark failed constructions", func(t *testing.T) {
		d, err := newDesk("")
		require.Error(t, err)
		require.Error(t, d.guard.Validate(errDeskNotConstructed))
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	errNotConstructed := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, g.Validate(errNotConstructed))
			}
		}()
	}
	wg.Wait()
}
