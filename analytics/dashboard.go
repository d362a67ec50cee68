// Package analytics computes the admin dashboard counters.
package analytics

import (
	"context"
	"fmt"

	"multiservice-api/repository"
	"multiservice-api/store"
)

// Revenue and GrowthRate are placeholder figures. They are not derived from
// any stored data.
const (
	Revenue    = 125000.0
	GrowthRate = 15.5
)

// Dashboard is the aggregate returned by the analytics endpoint.
type Dashboard struct {
	TotalUsers        int64    `json:"total_users"`
	TotalOrders       int64    `json:"total_orders"`
	TotalStores       int64    `json:"total_stores"`
	TotalBookings     int64    `json:"total_bookings"`
	Revenue           float64  `json:"revenue"`
	GrowthRate        float64  `json:"growth_rate"`
	PlaceholderFields []string `json:"placeholder_fields"`
}

// Compute counts all users and orders, active stores, and cab plus handyman
// bookings.
func Compute(ctx context.Context, repo *repository.Repository) (*Dashboard, error) {
	d := &Dashboard{
		Revenue:           Revenue,
		GrowthRate:        GrowthRate,
		PlaceholderFields: []string{"revenue", "growth_rate"},
	}

	var err error
	if d.TotalUsers, err = repo.Users.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if d.TotalOrders, err = repo.Orders.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	if d.TotalStores, err = repo.Stores.Count(ctx, store.Eq("is_active", true)); err != nil {
		return nil, fmt.Errorf("count stores: %w", err)
	}
	cab, err := repo.CabBookings.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count cab bookings: %w", err)
	}
	handyman, err := repo.HandymanBookings.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count handyman bookings: %w", err)
	}
	d.TotalBookings = cab + handyman
	return d, nil
}
