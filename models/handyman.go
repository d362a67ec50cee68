package models

import "time"

// HandymanService is a professional's offering (plumbing, electrical, cleaning, ...).
type HandymanService struct {
	ID             string   `json:"id" bson:"id" gorm:"primaryKey"`
	Category       string   `json:"category" bson:"category"`
	ProfessionalID string   `json:"professional_id" bson:"professional_id"`
	Name           string   `json:"name" bson:"name"`
	Description    string   `json:"description" bson:"description"`
	PriceRange     string   `json:"price_range" bson:"price_range"`
	Rating         float64  `json:"rating" bson:"rating"`
	Availability   []string `json:"availability" bson:"availability" gorm:"serializer:json;type:text"` // morning, afternoon, evening
	Location       Location `json:"location" bson:"location" gorm:"serializer:json;type:text"`
	IsActive       bool     `json:"is_active" bson:"is_active"`
}

type HandymanBooking struct {
	ID             string        `json:"id" bson:"id" gorm:"primaryKey"`
	UserID         string        `json:"user_id" bson:"user_id" binding:"required"`
	ServiceID      string        `json:"service_id" bson:"service_id" binding:"required"`
	ProfessionalID string        `json:"professional_id" bson:"professional_id" binding:"required"`
	BookingDate    string        `json:"booking_date" bson:"booking_date" binding:"required"`
	TimeSlot       string        `json:"time_slot" bson:"time_slot" binding:"required"`
	Status         BookingStatus `json:"status" bson:"status" binding:"booking_status"`
	Price          float64       `json:"price" bson:"price"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
}

func NewHandymanBooking() *HandymanBooking {
	return &HandymanBooking{Status: BookingPending}
}

func (b *HandymanBooking) Stamp(now time.Time) {
	b.ID = idOrNew(b.ID)
	b.CreatedAt = now
	if b.Status == "" {
		b.Status = BookingPending
	}
}

func (s *HandymanService) RecordID() string { return s.ID }
func (b *HandymanBooking) RecordID() string { return b.ID }
