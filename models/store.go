package models

import "time"

// DefaultDeliveryTime is used when a store does not state its own.
const DefaultDeliveryTime = "30-45 mins"

// Store is a vendor storefront (grocery, electronics, fashion, ...).
type Store struct {
	ID           string    `json:"id" bson:"id" gorm:"primaryKey"`
	Name         string    `json:"name" bson:"name" binding:"required"`
	Description  string    `json:"description" bson:"description" binding:"required"`
	Category     string    `json:"category" bson:"category" binding:"required"`
	VendorID     string    `json:"vendor_id" bson:"vendor_id" binding:"required"`
	Location     Location  `json:"location" bson:"location" gorm:"serializer:json;type:text" binding:"required"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	Rating       float64   `json:"rating" bson:"rating"`
	DeliveryTime string    `json:"delivery_time" bson:"delivery_time"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func NewStore() *Store {
	return &Store{IsActive: true, DeliveryTime: DefaultDeliveryTime}
}

func (s *Store) Stamp(now time.Time) {
	s.ID = idOrNew(s.ID)
	s.CreatedAt = now
	if s.DeliveryTime == "" {
		s.DeliveryTime = DefaultDeliveryTime
	}
}

// Product is an item sold by a store.
type Product struct {
	ID          string    `json:"id" bson:"id" gorm:"primaryKey"`
	Name        string    `json:"name" bson:"name" binding:"required"`
	Description string    `json:"description" bson:"description" binding:"required"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category" binding:"required"`
	StoreID     string    `json:"store_id" bson:"store_id" binding:"required"`
	Images      []string  `json:"images" bson:"images" gorm:"serializer:json;type:text"`
	Stock       int       `json:"stock" bson:"stock"`
	IsAvailable bool      `json:"is_available" bson:"is_available"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

func NewProduct() *Product {
	return &Product{Images: []string{}, IsAvailable: true}
}

func (p *Product) Stamp(now time.Time) {
	p.ID = idOrNew(p.ID)
	p.CreatedAt = now
	if p.Images == nil {
		p.Images = []string{}
	}
}

func (s *Store) RecordID() string   { return s.ID }
func (p *Product) RecordID() string { return p.ID }
