package models

import "time"

// BookingStatus represents the lifecycle state of a rental booking
type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
	BookingReturned  BookingStatus = "returned"
)

// Booking references its customer and vehicle by id only; both entities may
// outlive the booking. Rental dates are stored as YYYY-MM-DD strings so the
// expiry sweep can compare them lexicographically in SQL.
type Booking struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	CustomerID    uint          `json:"customer_id" gorm:"not null;index"`
	VehicleID     uint          `json:"vehicle_id" gorm:"not null;index"`
	RentStartDate string        `json:"rent_start_date" gorm:"not null"`
	RentEndDate   string        `json:"rent_end_date" gorm:"not null"`
	TotalPrice    float64       `json:"total_price" gorm:"not null"` // snapshot price at time of booking
	Status        BookingStatus `json:"status" gorm:"not null;default:'active';index"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
