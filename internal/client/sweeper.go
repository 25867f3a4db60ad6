package client

import (
	"context"
	"time"
)

// RunSweeper периодически выметает протухшие записи кэша, пока жив контекст.
// Запускается на всё время жизни поискового интерфейса.
func (c *Client) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = SweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.cache.ClearExpired()
		}
	}
}
