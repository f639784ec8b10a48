// Package repository provides GORM-backed persistence behind small interfaces.
//
// Every operation runs under a bounded timeout derived from the request
// context so that no lifecycle operation can block indefinitely; a timeout
// surfaces to callers as a storage failure.
package repository

import (
	"context"
	"time"
)

const opTimeout = 5 * time.Second

// boundedCtx derives a child context with the storage operation deadline.
func boundedCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
