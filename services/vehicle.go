package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/models"
)

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

type CreateVehicleInput struct {
	VehicleName        string
	Type               models.VehicleType
	RegistrationNumber string
	DailyRentPrice     float64
	AvailabilityStatus models.AvailabilityStatus
}

// UpdateVehicleInput carries a partial update; nil fields are left untouched.
type UpdateVehicleInput struct {
	VehicleName        *string
	Type               *models.VehicleType
	RegistrationNumber *string
	DailyRentPrice     *float64
	AvailabilityStatus *models.AvailabilityStatus
}

func (s *VehicleService) Create(in CreateVehicleInput) (*models.Vehicle, error) {
	if !in.Type.Valid() {
		return nil, apperr.BadRequest("Invalid vehicle type. Allowed types: car, bike, van, SUV")
	}
	status := in.AvailabilityStatus
	if status == "" {
		status = models.AvailabilityAvailable
	}
	if !status.Valid() {
		return nil, apperr.BadRequest("Invalid availability status. Allowed: available, booked")
	}
	if in.DailyRentPrice <= 0 {
		return nil, apperr.BadRequest("daily_rent_price must be a positive number")
	}

	vehicle := models.Vehicle{
		VehicleName:        in.VehicleName,
		Type:               in.Type,
		RegistrationNumber: in.RegistrationNumber,
		DailyRentPrice:     in.DailyRentPrice,
		AvailabilityStatus: status,
	}
	if err := s.db.Create(&vehicle).Error; err != nil {
		log.Printf("[ERROR] CreateVehicle: failed to create %s: %v", in.RegistrationNumber, err)
		return nil, err
	}

	log.Printf("[INFO] CreateVehicle: created vehicle %q (id=%d)", vehicle.VehicleName, vehicle.ID)
	return &vehicle, nil
}

func (s *VehicleService) List() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Order("id ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *VehicleService) Get(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Vehicle not found")
		}
		return nil, err
	}
	return &vehicle, nil
}

// Update applies only the supplied fields.
func (s *VehicleService) Update(id uint, in UpdateVehicleInput) (*models.Vehicle, error) {
	updates := map[string]any{}
	if in.VehicleName != nil {
		updates["vehicle_name"] = *in.VehicleName
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return nil, apperr.BadRequest("Invalid vehicle type. Allowed types: car, bike, van, SUV")
		}
		updates["type"] = *in.Type
	}
	if in.RegistrationNumber != nil {
		updates["registration_number"] = *in.RegistrationNumber
	}
	if in.DailyRentPrice != nil {
		if *in.DailyRentPrice <= 0 {
			return nil, apperr.BadRequest("daily_rent_price must be a positive number")
		}
		updates["daily_rent_price"] = *in.DailyRentPrice
	}
	if in.AvailabilityStatus != nil {
		if !in.AvailabilityStatus.Valid() {
			return nil, apperr.BadRequest("Invalid availability status. Allowed: available, booked")
		}
		updates["availability_status"] = *in.AvailabilityStatus
	}
	if len(updates) == 0 {
		return nil, apperr.BadRequest("No fields provided to update")
	}

	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Vehicle not found")
		}
		return nil, err
	}
	if err := s.db.Model(&vehicle).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Delete removes a vehicle unless an active booking still references it.
func (s *VehicleService) Delete(id uint) error {
	var activeCount int64
	if err := s.db.Model(&models.Booking{}).
		Where("vehicle_id = ? AND status = ?", id, models.BookingActive).
		Count(&activeCount).Error; err != nil {
		return err
	}
	if activeCount > 0 {
		return apperr.BadRequest("Cannot delete vehicle with active bookings")
	}

	res := s.db.Delete(&models.Vehicle{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Vehicle not found")
	}
	log.Printf("[INFO] DeleteVehicle: deleted vehicle id=%d", id)
	return nil
}
