package kernel_test

import (
	"regexp"
	"testing"

	"genzdeliver/internal/core/domain/model/kernel"
	"genzdeliver/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("generates token in the expected format", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-F]{12}$`), id.String())
	})

	t.Run("successive identifiers differ", func(t *testing.T) {
		first := kernel.NewOrderID()
		second := kernel.NewOrderID()

		assert.False(t, first.IsEqual(second))
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("parses a valid token", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORD-3F9A2C44B1D0")

		require.NoError(t, err)
		assert.Equal(t, "ORD-3F9A2C44B1D0", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("round trips a generated token", func(t *testing.T) {
		generated := kernel.NewOrderID()

		parsed, err := kernel.OrderIDFromString(generated.String())

		require.NoError(t, err)
		assert.True(t, generated.IsEqual(parsed))
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		malformed := []string{
			"",
			"ORD-",
			"ORD-12345",
			"ORD-3f9a2c44b1d0", // lowercase hex
			"ORD-3F9A2C44B1D0X",
			"XYZ-3F9A2C44B1D0",
			"ORD-unknown",
		}

		for _, s := range malformed {
			_, err := kernel.OrderIDFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
