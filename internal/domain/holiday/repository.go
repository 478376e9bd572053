package holiday

import (
	"context"
	"time"
)

// HolidayRepository - interface for the holidays table
type HolidayRepository interface {
	GetByPeriod(ctx context.Context, year int, month time.Month) ([]Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
}
