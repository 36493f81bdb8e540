package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"peluqueria/internal/models"
)

// Named date-range filters accepted by Earnings. An empty filter means
// all time.
const (
	FilterToday     = "today"
	FilterYesterday = "yesterday"
	FilterLast7Days = "last-7-days"
	FilterLastMonth = "last-month"
)

type EarningsReport struct {
	Total decimal.Decimal            `json:"total"`
	Daily map[string]decimal.Decimal `json:"daily"`
}

// earningsWindow resolves a named filter to a half-open [start, end)
// interval anchored on now, in now's location.
func earningsWindow(now time.Time, filter string) (time.Time, time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := midnight.AddDate(0, 0, 1)

	switch filter {
	case FilterToday:
		return midnight, tomorrow, nil
	case FilterYesterday:
		return midnight.AddDate(0, 0, -1), midnight, nil
	case FilterLast7Days:
		return midnight.AddDate(0, 0, -7), tomorrow, nil
	case FilterLastMonth:
		return midnight.AddDate(0, -1, 0), tomorrow, nil
	case "":
		return time.Unix(0, 0), tomorrow, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
}

// Earnings sums delivered-order values over the window named by filter, with
// a per-day breakdown keyed YYYY-MM-DD. Delivery flags are read fresh on
// every call, and each order's value is recomputed from its items rather
// than read from the stored total.
func Earnings(ctx context.Context, db *gorm.DB, filter string, now time.Time) (*EarningsReport, error) {
	start, end, err := earningsWindow(now, filter)
	if err != nil {
		return nil, err
	}

	report := &EarningsReport{Daily: map[string]decimal.Decimal{}}

	var deliveredIDs []uint
	err = db.WithContext(ctx).
		Model(&models.OrderStatus{}).
		Where("estado = ?", true).
		Pluck("id", &deliveredIDs).Error
	if err != nil {
		return nil, fmt.Errorf("list delivered statuses: %w", err)
	}
	if len(deliveredIDs) == 0 {
		return report, nil
	}

	var orders []models.Order
	err = db.WithContext(ctx).
		Preload("Items").
		Where("status_id IN ?", deliveredIDs).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list delivered orders: %w", err)
	}

	for _, order := range orders {
		var value decimal.Decimal
		for _, item := range order.Items {
			value = value.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		day := order.Date.Format("2006-01-02")
		report.Total = report.Total.Add(value)
		report.Daily[day] = report.Daily[day].Add(value)
	}
	return report, nil
}
