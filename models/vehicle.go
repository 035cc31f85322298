package models

import "time"

// VehicleType enumerates the rentable vehicle categories
type VehicleType string

const (
	VehicleTypeCar  VehicleType = "car"
	VehicleTypeBike VehicleType = "bike"
	VehicleTypeVan  VehicleType = "van"
	VehicleTypeSUV  VehicleType = "SUV"
)

// Valid reports whether the type is one of the known vehicle types.
func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeBike, VehicleTypeVan, VehicleTypeSUV:
		return true
	}
	return false
}

// AvailabilityStatus tracks whether a vehicle can currently be booked
type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "available"
	AvailabilityBooked    AvailabilityStatus = "booked"
)

// Valid reports whether the status is one of the known availability states.
func (s AvailabilityStatus) Valid() bool {
	return s == AvailabilityAvailable || s == AvailabilityBooked
}

type Vehicle struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	VehicleName        string             `json:"vehicle_name" gorm:"not null"`
	Type               VehicleType        `json:"type" gorm:"not null"`
	RegistrationNumber string             `json:"registration_number" gorm:"uniqueIndex;not null"`
	DailyRentPrice     float64            `json:"daily_rent_price" gorm:"not null"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status" gorm:"not null;default:'available'"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
