package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Postgres error code classes and codes matched by translateStoreError.
const (
	pgClassIntegrityConstraint = "23"
	pgClassConnection          = "08"
	pgCodeRaiseException       = "P0001"
)

// translateStoreError maps store-level failures onto the domain error taxonomy.
// Postgres errors are matched by SQLSTATE so the server's own message survives
// into the domain error: constraint violations and raised exceptions carry the
// store's message through, while connectivity failures become STORE_UNAVAILABLE
// so the handler boundary reports them as a server error instead of a client
// error. Exceptions raised by sp_process_sale with an insufficient-stock
// message map to the dedicated domain error.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgCodeRaiseException:
			if isInsufficientStock(pgErr.Message) {
				return shared.ErrInsufficientStock
			}
			return shared.NewConstraintError(pgErr.Message)
		case strings.HasPrefix(pgErr.Code, pgClassIntegrityConstraint):
			return shared.NewConstraintError(pgErr.Message)
		case strings.HasPrefix(pgErr.Code, pgClassConnection):
			return shared.NewUnavailableError(pgErr.Message)
		default:
			return shared.NewConstraintError(pgErr.Message)
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return shared.NewUnavailableError(err.Error())
	case errors.Is(err, driver.ErrBadConn):
		return shared.NewUnavailableError(err.Error())
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return shared.NewUnavailableError(err.Error())
	}

	if isInsufficientStock(err.Error()) {
		return shared.ErrInsufficientStock
	}

	// Remaining store errors (type mismatches, driver quirks) surface to the
	// caller as constraint-class failures with the message passed through.
	return shared.NewConstraintError(err.Error())
}

func isInsufficientStock(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "insufficient stock")
}
