// Package seed inserts the demonstration catalog at startup. Every record has
// a fixed identifier and is written with an atomic insert-if-absent, so
// repeated or concurrent runs leave exactly one copy.
package seed

import (
	"context"
	"time"

	"multiservice-api/models"
	"multiservice-api/repository"
	"multiservice-api/store"
)

// Result counts newly inserted records per collection.
type Result map[string]int

// Total is the number of records inserted across collections.
func (r Result) Total() int {
	n := 0
	for _, v := range r {
		n += v
	}
	return n
}

func kadapa() models.Location {
	return models.Location{"city": "Kadapa", "state": "Andhra Pradesh"}
}

func kadapaWithPincode() models.Location {
	return models.Location{"city": "Kadapa", "state": "Andhra Pradesh", "pincode": "516001"}
}

// Stores returns the demonstration stores stamped with now.
func Stores(now time.Time) []models.Store {
	return []models.Store{
		{
			ID:           "store-1",
			Name:         "Fresh Mart Kadapa",
			Description:  "Premium grocery store with fresh vegetables and fruits",
			Category:     "grocery",
			VendorID:     "vendor-1",
			Location:     kadapaWithPincode(),
			Rating:       4.5,
			DeliveryTime: "20-30 mins",
			IsActive:     true,
			CreatedAt:    now,
		},
		{
			ID:           "store-2",
			Name:         "Electronics Hub",
			Description:  "Latest electronics and gadgets",
			Category:     "electronics",
			VendorID:     "vendor-2",
			Location:     kadapaWithPincode(),
			Rating:       4.2,
			DeliveryTime: "45-60 mins",
			IsActive:     true,
			CreatedAt:    now,
		},
	}
}

// Products returns the demonstration products of store-1.
func Products(now time.Time) []models.Product {
	return []models.Product{
		{
			ID:          "prod-1",
			Name:        "Fresh Tomatoes",
			Description: "Farm fresh tomatoes from local farms",
			Price:       40.0,
			Category:    "vegetables",
			StoreID:     "store-1",
			Images:      []string{"https://images.unsplash.com/photo-1588964895597-cfccd6e2dbf9"},
			Stock:       100,
			IsAvailable: true,
			CreatedAt:   now,
		},
		{
			ID:          "prod-2",
			Name:        "Basmati Rice (5kg)",
			Description: "Premium quality basmati rice",
			Price:       450.0,
			Category:    "groceries",
			StoreID:     "store-1",
			Images:      []string{"https://images.unsplash.com/photo-1695653422259-8a74ffe90401"},
			Stock:       50,
			IsAvailable: true,
			CreatedAt:   now,
		},
	}
}

// CabServices returns the economy and premium ride tiers.
func CabServices() []models.CabService {
	return []models.CabService{
		{
			ID:             "cab-1",
			ServiceType:    "economy",
			AvailableSlots: 15,
			PricePerKm:     12.0,
			BaseFare:       50.0,
			Location:       kadapa(),
			IsActive:       true,
		},
		{
			ID:             "cab-2",
			ServiceType:    "premium",
			AvailableSlots: 8,
			PricePerKm:     18.0,
			BaseFare:       80.0,
			Location:       kadapa(),
			IsActive:       true,
		},
	}
}

// HandymanServices returns the plumbing and electrical offerings.
func HandymanServices() []models.HandymanService {
	return []models.HandymanService{
		{
			ID:             "handy-1",
			Category:       "plumbing",
			ProfessionalID: "prof-1",
			Name:           "Expert Plumbing Services",
			Description:    "Professional plumbing repairs and installations",
			PriceRange:     "₹300-₹800",
			Rating:         4.7,
			Availability:   []string{"morning", "afternoon", "evening"},
			Location:       kadapa(),
			IsActive:       true,
		},
		{
			ID:             "handy-2",
			Category:       "electrical",
			ProfessionalID: "prof-2",
			Name:           "Electrical Solutions",
			Description:    "Complete electrical repairs and maintenance",
			PriceRange:     "₹250-₹600",
			Rating:         4.5,
			Availability:   []string{"morning", "afternoon"},
			Location:       kadapa(),
			IsActive:       true,
		},
	}
}

// Run inserts every seed record that is not already present.
func Run(ctx context.Context, repo *repository.Repository, now time.Time) (Result, error) {
	res := Result{}
	var err error

	if res[repository.StoresCollection], err = insertAll(ctx, repo.Stores, Stores(now)); err != nil {
		return res, err
	}
	if res[repository.ProductsCollection], err = insertAll(ctx, repo.Products, Products(now)); err != nil {
		return res, err
	}
	if res[repository.CabServicesCollection], err = insertAll(ctx, repo.CabServices, CabServices()); err != nil {
		return res, err
	}
	if res[repository.HandymanServicesCollection], err = insertAll(ctx, repo.HandymanServices, HandymanServices()); err != nil {
		return res, err
	}
	return res, nil
}

type identified[T any] interface {
	*T
	RecordID() string
}

func insertAll[T any, P identified[T]](ctx context.Context, coll store.Collection[T], recs []T) (int, error) {
	n := 0
	for i := range recs {
		rec := &recs[i]
		inserted, err := coll.InsertIfAbsent(ctx, P(rec).RecordID(), rec)
		if err != nil {
			return n, err
		}
		if inserted {
			n++
		}
	}
	return n, nil
}
