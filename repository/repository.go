package repository

import (
	"context"

	"multiservice-api/models"
	"multiservice-api/store"
)

// Collection names, one per resource kind.
const (
	UsersCollection            = "users"
	StoresCollection           = "stores"
	ProductsCollection         = "products"
	OrdersCollection           = "orders"
	CabServicesCollection      = "cab_services"
	CabBookingsCollection      = "cab_bookings"
	HandymanServicesCollection = "handyman_services"
	HandymanBookingsCollection = "handyman_bookings"
)

// Repository bundles the typed collection handles handlers work with.
type Repository struct {
	Users            store.Collection[models.User]
	Stores           store.Collection[models.Store]
	Products         store.Collection[models.Product]
	Orders           store.Collection[models.Order]
	CabServices      store.Collection[models.CabService]
	CabBookings      store.Collection[models.CabBooking]
	HandymanServices store.Collection[models.HandymanService]
	HandymanBookings store.Collection[models.HandymanBooking]
}

// New binds one collection per resource kind to db.
func New(db *store.DB) *Repository {
	return &Repository{
		Users:            store.NewCollection[models.User](db, UsersCollection),
		Stores:           store.NewCollection[models.Store](db, StoresCollection),
		Products:         store.NewCollection[models.Product](db, ProductsCollection),
		Orders:           store.NewCollection[models.Order](db, OrdersCollection),
		CabServices:      store.NewCollection[models.CabService](db, CabServicesCollection),
		CabBookings:      store.NewCollection[models.CabBooking](db, CabBookingsCollection),
		HandymanServices: store.NewCollection[models.HandymanService](db, HandymanServicesCollection),
		HandymanBookings: store.NewCollection[models.HandymanBooking](db, HandymanBookingsCollection),
	}
}

type migrator interface {
	Migrate(ctx context.Context) error
}

// Migrate creates tables (or identifier indexes) for every collection.
func (r *Repository) Migrate(ctx context.Context) error {
	for _, m := range []migrator{
		r.Users, r.Stores, r.Products, r.Orders,
		r.CabServices, r.CabBookings, r.HandymanServices, r.HandymanBookings,
	} {
		if err := m.Migrate(ctx); err != nil {
			return err
		}
	}
	return nil
}
