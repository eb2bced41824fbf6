package repositories

import "context"

// Transactor runs work inside a single database transaction.
//
// The transaction travels in the context handed to fn; repositories pick it up
// from there. Calling WithinTx with a context that already carries a
// transaction joins it instead of opening a new one, so a service can call
// another transactional service without splitting the unit of work.
// Any error returned by fn rolls the whole transaction back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
