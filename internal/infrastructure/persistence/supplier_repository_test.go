package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/domain/partner"
	"github.com/wms/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM DB backed by a mocked SQL connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormSupplierRepository_FindAll(t *testing.T) {
	t.Run("orders suppliers by name", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSupplierRepository(gormDB)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"supplier_id", "name", "contact_person", "bank_account_no", "status", "created_at", "updated_at"}).
			AddRow("SUP-002", "Acme", "Jane", "111", "Active", now, now).
			AddRow("SUP-001", "Zenith", "John", "222", "Inactive", now, now)

		mock.ExpectQuery(`SELECT \* FROM "suppliers" ORDER BY name`).
			WillReturnRows(rows)

		suppliers, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, suppliers, 2)
		assert.Equal(t, "Acme", suppliers[0].Name)
		assert.Equal(t, partner.SupplierStatusInactive, suppliers[1].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierRepository_Create(t *testing.T) {
	t.Run("inserts supplier with bound parameters", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSupplierRepository(gormDB)

		supplier, err := partner.NewSupplier("SUP-001", "Acme", "Jane", "111", "")
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "suppliers"`).
			WithArgs("SUP-001", "Acme", "Jane", "111", partner.SupplierStatusActive, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Create(context.Background(), supplier)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate identifier surfaces the store message", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSupplierRepository(gormDB)

		supplier, err := partner.NewSupplier("SUP-001", "Acme", "Jane", "111", "")
		require.NoError(t, err)

		cause := &pgconn.PgError{
			Code:    "23505",
			Message: `duplicate key value violates unique constraint "suppliers_pkey"`,
		}
		mock.ExpectExec(`INSERT INTO "suppliers"`).
			WithArgs("SUP-001", "Acme", "Jane", "111", partner.SupplierStatusActive, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(cause)

		err = repo.Create(context.Background(), supplier)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeStoreConstraint, domainErr.Code)
		assert.Contains(t, domainErr.Message, "suppliers_pkey")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

