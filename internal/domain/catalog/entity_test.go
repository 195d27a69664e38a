//go:build unit

package catalog_test

import (
	"testing"

	"havenmart/internal/domain/catalog"
	"havenmart/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PropertyBuilder)
	errIs  error
}

func TestNewProperty(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPropertyBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Sunny two-bedroom apartment", actual.Title())
		assert.Equal(t, catalog.CategoryResidential, actual.Category())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.PropertyBuilder) { b.WithTitle("   ") },
				errIs:  catalog.ErrEmptyTitle,
			},
			{
				name:   "product outside the category",
				mutate: func(b *builder.PropertyBuilder) { b.WithProduct("Warehouse") },
				errIs:  catalog.ErrUnknownProduct,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.PropertyBuilder) { b.WithPriceCents(-1) },
				errIs:  catalog.ErrNegativePrice,
			},
			{
				name:   "zero price is allowed",
				mutate: func(b *builder.PropertyBuilder) { b.WithPriceCents(0) },
			},
			{
				name:   "empty location",
				mutate: func(b *builder.PropertyBuilder) { b.WithLocation("") },
				errIs:  catalog.ErrEmptyLocation,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewPropertyBuilder().With(c.mutate).BuildDomain()

				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}
