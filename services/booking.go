package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/models"
	"vehicle-rental-api/statemachine"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type CreateBookingInput struct {
	CustomerID    uint
	VehicleID     uint
	RentStartDate string
	RentEndDate   string
}

// VehicleSnapshot is the price-relevant vehicle detail returned with a
// freshly created booking.
type VehicleSnapshot struct {
	VehicleName    string  `json:"vehicle_name"`
	DailyRentPrice float64 `json:"daily_rent_price"`
}

type CreatedBooking struct {
	models.Booking
	Vehicle VehicleSnapshot `json:"vehicle"`
}

// Create books a vehicle for a customer. Customers always book for
// themselves; admins must name the customer. The booking insert and the
// availability flip commit together or not at all, and the flip is a
// conditional update so two concurrent creates cannot both win the vehicle.
func (s *BookingService) Create(requester Requester, in CreateBookingInput) (*CreatedBooking, error) {
	customerID := in.CustomerID
	if requester.Role == models.RoleCustomer {
		customerID = requester.ID
	}
	if customerID == 0 {
		return nil, apperr.BadRequest("customer_id is required for admin booking")
	}
	if in.VehicleID == 0 {
		return nil, apperr.BadRequest("vehicle_id is required")
	}

	start, err := parseDate(in.RentStartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(in.RentEndDate)
	if err != nil {
		return nil, err
	}
	days := daysBetween(start, end)
	if days <= 0 {
		return nil, apperr.BadRequest("rent_end_date must be after rent_start_date")
	}

	var booking models.Booking
	var vehicle models.Vehicle
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vehicle, in.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Vehicle not found")
			}
			return err
		}
		if vehicle.AvailabilityStatus != models.AvailabilityAvailable {
			return apperr.BadRequest("Vehicle is not available")
		}

		booking = models.Booking{
			CustomerID:    customerID,
			VehicleID:     vehicle.ID,
			RentStartDate: start.Format(dateLayout),
			RentEndDate:   end.Format(dateLayout),
			TotalPrice:    vehicle.DailyRentPrice * float64(days),
			Status:        models.BookingActive,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		// Conditional flip: a concurrent create that committed first leaves
		// zero rows for us, and the whole transaction rolls back.
		res := tx.Model(&models.Vehicle{}).
			Where("id = ? AND availability_status = ?", vehicle.ID, models.AvailabilityAvailable).
			Update("availability_status", models.AvailabilityBooked)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.BadRequest("Vehicle is not available")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] CreateBooking: booking id=%d customer=%d vehicle=%d days=%d total=%.2f",
		booking.ID, booking.CustomerID, booking.VehicleID, days, booking.TotalPrice)
	return &CreatedBooking{
		Booking: booking,
		Vehicle: VehicleSnapshot{
			VehicleName:    vehicle.VehicleName,
			DailyRentPrice: vehicle.DailyRentPrice,
		},
	}, nil
}

// CustomerSummary is the customer detail joined into admin booking listings.
type CustomerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminVehicleSummary is the vehicle detail joined into admin listings.
type AdminVehicleSummary struct {
	VehicleName        string `json:"vehicle_name"`
	RegistrationNumber string `json:"registration_number"`
}

// CustomerVehicleSummary is the vehicle detail joined into a customer's own
// listings; customers additionally see the vehicle type.
type CustomerVehicleSummary struct {
	VehicleName        string             `json:"vehicle_name"`
	RegistrationNumber string             `json:"registration_number"`
	Type               models.VehicleType `json:"type"`
}

type AdminBookingView struct {
	ID            uint                 `json:"id"`
	CustomerID    uint                 `json:"customer_id"`
	VehicleID     uint                 `json:"vehicle_id"`
	RentStartDate string               `json:"rent_start_date"`
	RentEndDate   string               `json:"rent_end_date"`
	TotalPrice    float64              `json:"total_price"`
	Status        models.BookingStatus `json:"status"`
	Customer      CustomerSummary      `json:"customer"`
	Vehicle       AdminVehicleSummary  `json:"vehicle"`
}

type CustomerBookingView struct {
	ID            uint                   `json:"id"`
	VehicleID     uint                   `json:"vehicle_id"`
	RentStartDate string                 `json:"rent_start_date"`
	RentEndDate   string                 `json:"rent_end_date"`
	TotalPrice    float64                `json:"total_price"`
	Status        models.BookingStatus   `json:"status"`
	Vehicle       CustomerVehicleSummary `json:"vehicle"`
}

type adminBookingRow struct {
	ID                 uint
	CustomerID         uint
	VehicleID          uint
	RentStartDate      string
	RentEndDate        string
	TotalPrice         float64
	Status             models.BookingStatus
	CustomerName       string
	CustomerEmail      string
	VehicleName        string
	RegistrationNumber string
}

type customerBookingRow struct {
	ID                 uint
	VehicleID          uint
	RentStartDate      string
	RentEndDate        string
	TotalPrice         float64
	Status             models.BookingStatus
	VehicleName        string
	RegistrationNumber string
	Type               models.VehicleType
}

// ListAll returns every booking joined with customer and vehicle details,
// for admins. Overdue bookings are swept first.
func (s *BookingService) ListAll() ([]AdminBookingView, error) {
	if err := s.ExpireOverdue(); err != nil {
		return nil, err
	}

	var rows []adminBookingRow
	err := s.db.Table("bookings").
		Select(`bookings.id, bookings.customer_id, bookings.vehicle_id,
			bookings.rent_start_date, bookings.rent_end_date, bookings.total_price, bookings.status,
			users.name AS customer_name, users.email AS customer_email,
			vehicles.vehicle_name, vehicles.registration_number`).
		Joins("JOIN users ON users.id = bookings.customer_id").
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Order("bookings.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]AdminBookingView, 0, len(rows))
	for _, r := range rows {
		views = append(views, AdminBookingView{
			ID:            r.ID,
			CustomerID:    r.CustomerID,
			VehicleID:     r.VehicleID,
			RentStartDate: r.RentStartDate,
			RentEndDate:   r.RentEndDate,
			TotalPrice:    r.TotalPrice,
			Status:        r.Status,
			Customer:      CustomerSummary{Name: r.CustomerName, Email: r.CustomerEmail},
			Vehicle:       AdminVehicleSummary{VehicleName: r.VehicleName, RegistrationNumber: r.RegistrationNumber},
		})
	}
	return views, nil
}

// ListByCustomer returns the given customer's bookings joined with vehicle
// details. Overdue bookings are swept first.
func (s *BookingService) ListByCustomer(customerID uint) ([]CustomerBookingView, error) {
	if err := s.ExpireOverdue(); err != nil {
		return nil, err
	}

	var rows []customerBookingRow
	err := s.db.Table("bookings").
		Select(`bookings.id, bookings.vehicle_id,
			bookings.rent_start_date, bookings.rent_end_date, bookings.total_price, bookings.status,
			vehicles.vehicle_name, vehicles.registration_number, vehicles.type`).
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Where("bookings.customer_id = ?", customerID).
		Order("bookings.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]CustomerBookingView, 0, len(rows))
	for _, r := range rows {
		views = append(views, CustomerBookingView{
			ID:            r.ID,
			VehicleID:     r.VehicleID,
			RentStartDate: r.RentStartDate,
			RentEndDate:   r.RentEndDate,
			TotalPrice:    r.TotalPrice,
			Status:        r.Status,
			Vehicle: CustomerVehicleSummary{
				VehicleName:        r.VehicleName,
				RegistrationNumber: r.RegistrationNumber,
				Type:               r.Type,
			},
		})
	}
	return views, nil
}

// UpdateStatus applies a role-dependent status transition: customers cancel
// their own future bookings, admins mark any booking returned.
func (s *BookingService) UpdateStatus(bookingID uint, requester Requester, status models.BookingStatus) (*models.Booking, error) {
	if requester.Role == models.RoleCustomer {
		return s.cancel(bookingID, requester.ID, status)
	}
	return s.forceReturn(bookingID, status)
}

func (s *BookingService) cancel(bookingID, customerID uint, status models.BookingStatus) (*models.Booking, error) {
	if status != models.BookingCancelled {
		return nil, apperr.Forbidden("Customers can only cancel bookings")
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Booking not found")
			}
			return err
		}
		if booking.CustomerID != customerID {
			return apperr.Forbidden("You do not have permission to perform this action")
		}
		if err := statemachine.CanTransition(booking.Status, models.BookingCancelled, statemachine.ActorCustomer); err != nil {
			return apperr.BadRequest("Only active bookings can be cancelled").WithErrors(err.Error())
		}

		start, err := parseDate(booking.RentStartDate)
		if err != nil {
			return err
		}
		if !todayUTC().Before(start) {
			return apperr.BadRequest("Booking can only be cancelled before the start date")
		}

		// Conditional on status so a concurrent sweep or return wins cleanly.
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, models.BookingActive).
			Update("status", models.BookingCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.BadRequest("Only active bookings can be cancelled")
		}
		return tx.Model(&models.Vehicle{}).
			Where("id = ?", booking.VehicleID).
			Update("availability_status", models.AvailabilityAvailable).Error
	})
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingCancelled
	log.Printf("[INFO] CancelBooking: booking id=%d cancelled by customer %d", booking.ID, customerID)
	return &booking, nil
}

func (s *BookingService) forceReturn(bookingID uint, status models.BookingStatus) (*models.Booking, error) {
	if status != models.BookingReturned {
		return nil, apperr.BadRequest("Admin can only mark bookings as returned")
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Booking not found")
			}
			return err
		}
		if err := tx.Model(&booking).Update("status", models.BookingReturned).Error; err != nil {
			return err
		}
		return tx.Model(&models.Vehicle{}).
			Where("id = ?", booking.VehicleID).
			Update("availability_status", models.AvailabilityAvailable).Error
	})
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingReturned
	log.Printf("[INFO] ReturnBooking: booking id=%d marked returned", booking.ID)
	return &booking, nil
}

// ExpireOverdue returns every active booking whose rental period has ended
// and frees its vehicle. Idempotent; runs before every listing.
func (s *BookingService) ExpireOverdue() error {
	today := todayUTC().Format(dateLayout)

	return s.db.Transaction(func(tx *gorm.DB) error {
		var expired []models.Booking
		if err := tx.Where("status = ? AND rent_end_date < ?", models.BookingActive, today).
			Find(&expired).Error; err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}

		bookingIDs := make([]uint, 0, len(expired))
		vehicleIDs := make([]uint, 0, len(expired))
		for _, b := range expired {
			bookingIDs = append(bookingIDs, b.ID)
			vehicleIDs = append(vehicleIDs, b.VehicleID)
		}

		// Status guard keeps a concurrent cancel from being overwritten.
		if err := tx.Model(&models.Booking{}).
			Where("id IN ? AND status = ?", bookingIDs, models.BookingActive).
			Update("status", models.BookingReturned).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Vehicle{}).
			Where("id IN ?", vehicleIDs).
			Update("availability_status", models.AvailabilityAvailable).Error; err != nil {
			return err
		}

		log.Printf("[INFO] ExpireOverdue: returned %d overdue booking(s)", len(expired))
		return nil
	})
}
