package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

func TestTranslateStoreError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, translateStoreError(nil))
	})

	t.Run("record not found", func(t *testing.T) {
		err := translateStoreError(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unique violation carries the server message", func(t *testing.T) {
		cause := &pgconn.PgError{
			Code:    "23505",
			Message: `duplicate key value violates unique constraint "suppliers_pkey"`,
		}

		err := translateStoreError(cause)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeStoreConstraint, domainErr.Code)
		assert.Equal(t, cause.Message, domainErr.Message)
	})

	t.Run("foreign key violation carries the server message", func(t *testing.T) {
		cause := &pgconn.PgError{
			Code:    "23503",
			Message: `insert or update on table "product_pricing" violates foreign key constraint "product_pricing_product_id_fkey"`,
		}

		err := translateStoreError(cause)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeStoreConstraint, domainErr.Code)
		assert.Equal(t, cause.Message, domainErr.Message)
	})

	t.Run("raised insufficient stock exception", func(t *testing.T) {
		cause := &pgconn.PgError{
			Code:    "P0001",
			Message: "Insufficient stock for product P1",
		}

		err := translateStoreError(cause)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	})

	t.Run("other raised exceptions keep their message", func(t *testing.T) {
		cause := &pgconn.PgError{
			Code:    "P0001",
			Message: "Product P1 not found",
		}

		err := translateStoreError(cause)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeStoreConstraint, domainErr.Code)
		assert.Equal(t, cause.Message, domainErr.Message)
	})

	t.Run("connection exception is unavailable class", func(t *testing.T) {
		cause := &pgconn.PgError{
			Code:    "08006",
			Message: "connection failure",
		}

		err := translateStoreError(cause)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeStoreUnavailable, domainErr.Code)
	})

	t.Run("connectivity failures are unavailable class", func(t *testing.T) {
		for _, cause := range []error{context.DeadlineExceeded, driver.ErrBadConn} {
			err := translateStoreError(cause)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, shared.CodeStoreUnavailable, domainErr.Code)
		}
	})

	t.Run("domain errors pass through unchanged", func(t *testing.T) {
		err := translateStoreError(shared.ErrNotFound)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown store errors keep their message", func(t *testing.T) {
		err := translateStoreError(errors.New("pq: value too long for type character varying(50)"))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeStoreConstraint, domainErr.Code)
		assert.Contains(t, domainErr.Message, "value too long")
	})
}
