// File: internal/domain/repository/tx_manager.go
package repository

import "context"

// TxManager runs a function inside a single store transaction. The
// transaction is carried on the context; repositories pick it up
// transparently. An error from fn rolls the transaction back.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
