package postgresql

import (
	"context"

	"github.com/erp-suite/leave-backend-go/internal/pkg/database"
)

// GetQuerier returns either the transaction carried by ctx or the pool.
// Used in repositories so the same methods work inside and outside
// database.DB.RunInTx.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx
	}
	return db.Pool
}
