package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sellerdesk/shop-manager/internal/entity"
)

type (
	// OrderPager yields successive pages of a bounded order scan. Next
	// returns nil once the scan is complete; a short page terminates the
	// scan. Pagers are finite and not restartable mid-scan.
	OrderPager interface {
		Next(ctx context.Context) ([]entity.Order, error)
	}

	// OrderSource is the read side the analytics engine consumes.
	OrderSource interface {
		// CreatedInWindow scans all orders of a shop with create_time in
		// [from, to], ordered by create_time ascending.
		CreatedInWindow(shopID, from, to int64) OrderPager
		// ReturnedInWindow scans all TO_RETURN orders of a shop with
		// update_time in [from, to], ordered by update_time ascending.
		// It captures returns of orders created before the window.
		ReturnedInWindow(shopID, from, to int64) OrderPager
	}

	// Orders is the full order store contract; Upsert and Get are called
	// by the marketplace sync pipeline, never by the analytics engine.
	Orders interface {
		OrderSource
		Upsert(ctx context.Context, orders []entity.Order) error
		// Get fetches a single order with its line items attached.
		Get(ctx context.Context, shopID int64, orderID string) (*entity.Order, error)
	}

	Repository interface {
		Orders() Orders
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
