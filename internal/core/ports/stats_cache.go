package ports

import (
	"context"
)

// StatsCache stores encoded courier stats between profile changes and completions.
// Implementations treat a miss as (nil, false, nil).
type StatsCache interface {
	Get(ctx context.Context, courierID int) ([]byte, bool, error)
	Set(ctx context.Context, courierID int, payload []byte) error
	Invalidate(ctx context.Context, courierID int) error
}
