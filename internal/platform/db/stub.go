package db

import "context"

// StubTxManager runs the given function directly, without a transaction.
// Tests use it so service-level transactional flows can execute against
// in-memory stubs.
type StubTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = (*StubTxManager)(nil)

func (tm *StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tm.RunInTxFunc != nil {
		return tm.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
