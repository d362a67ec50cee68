package models

import "time"

// BookingStatus is shared by cab and handyman bookings.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// CabService is a ride tier (economy, premium, suv) offered in an area.
type CabService struct {
	ID             string   `json:"id" bson:"id" gorm:"primaryKey"`
	ServiceType    string   `json:"service_type" bson:"service_type"`
	AvailableSlots int      `json:"available_slots" bson:"available_slots"`
	PricePerKm     float64  `json:"price_per_km" bson:"price_per_km"`
	BaseFare       float64  `json:"base_fare" bson:"base_fare"`
	Location       Location `json:"location" bson:"location" gorm:"serializer:json;type:text"`
	IsActive       bool     `json:"is_active" bson:"is_active"`
}

// CabBooking is a ride request. DriverID stays nil until someone assigns one.
type CabBooking struct {
	ID             string        `json:"id" bson:"id" gorm:"primaryKey"`
	UserID         string        `json:"user_id" bson:"user_id" binding:"required"`
	DriverID       *string       `json:"driver_id" bson:"driver_id"`
	PickupLocation Location      `json:"pickup_location" bson:"pickup_location" gorm:"serializer:json;type:text" binding:"required"`
	Destination    Location      `json:"destination" bson:"destination" gorm:"serializer:json;type:text" binding:"required"`
	ServiceType    string        `json:"service_type" bson:"service_type" binding:"required"`
	Status         BookingStatus `json:"status" bson:"status" binding:"booking_status"`
	Fare           float64       `json:"fare" bson:"fare"`
	BookingTime    time.Time     `json:"booking_time" bson:"booking_time"`
}

func NewCabBooking() *CabBooking {
	return &CabBooking{Status: BookingPending}
}

func (b *CabBooking) Stamp(now time.Time) {
	b.ID = idOrNew(b.ID)
	b.BookingTime = now
	if b.Status == "" {
		b.Status = BookingPending
	}
}

func (s *CabService) RecordID() string { return s.ID }
func (b *CabBooking) RecordID() string { return b.ID }
