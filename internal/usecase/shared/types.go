package shared

//go:generate mockgen -source=types.go -destination=../../../tests/mock/shared/types_mock.go -package=sharedmock

import "context"

// CacheInvalidator is notified after every committed booking write so cached
// read models can be dropped.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type NopInvalidator struct{}

func (NopInvalidator) Invalidate(context.Context) {}
