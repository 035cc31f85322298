package services

import (
	"net/http"
	"testing"

	"vehicle-rental-api/models"
)

func TestCreateVehicleDefaultsAndValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewVehicleService(db)

	created, err := svc.Create(CreateVehicleInput{
		VehicleName:        "Swift Dzire",
		Type:               models.VehicleTypeCar,
		RegistrationNumber: "KA-05-XY-1234",
		DailyRentPrice:     55,
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	if created.AvailabilityStatus != models.AvailabilityAvailable {
		t.Fatalf("expected default availability, got %s", created.AvailabilityStatus)
	}

	_, err = svc.Create(CreateVehicleInput{
		VehicleName:        "Hoverboard",
		Type:               "hoverboard",
		RegistrationNumber: "KA-05-XY-5678",
		DailyRentPrice:     10,
	})
	assertAppErr(t, err, http.StatusBadRequest, "Invalid vehicle type. Allowed types: car, bike, van, SUV")

	_, err = svc.Create(CreateVehicleInput{
		VehicleName:        "Free Car",
		Type:               models.VehicleTypeCar,
		RegistrationNumber: "KA-05-XY-9999",
		DailyRentPrice:     -5,
	})
	assertAppErr(t, err, http.StatusBadRequest, "daily_rent_price must be a positive number")

	_, err = svc.Create(CreateVehicleInput{
		VehicleName:        "Odd Van",
		Type:               models.VehicleTypeVan,
		RegistrationNumber: "KA-05-XY-0001",
		DailyRentPrice:     10,
		AvailabilityStatus: "lost",
	})
	assertAppErr(t, err, http.StatusBadRequest, "Invalid availability status. Allowed: available, booked")
}

func TestUpdateVehiclePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewVehicleService(db)
	vehicle := seedVehicle(t, db, 40)

	price := 75.0
	updated, err := svc.Update(vehicle.ID, UpdateVehicleInput{DailyRentPrice: &price})
	if err != nil {
		t.Fatalf("update vehicle: %v", err)
	}
	if updated.DailyRentPrice != 75 {
		t.Fatalf("expected price 75, got %v", updated.DailyRentPrice)
	}
	if updated.VehicleName != vehicle.VehicleName {
		t.Fatalf("expected name untouched, got %q", updated.VehicleName)
	}

	_, err = svc.Update(vehicle.ID, UpdateVehicleInput{})
	assertAppErr(t, err, http.StatusBadRequest, "No fields provided to update")

	badType := models.VehicleType("submarine")
	_, err = svc.Update(vehicle.ID, UpdateVehicleInput{Type: &badType})
	assertAppErr(t, err, http.StatusBadRequest, "Invalid vehicle type. Allowed types: car, bike, van, SUV")

	name := "Ghost"
	_, err = svc.Update(9999, UpdateVehicleInput{VehicleName: &name})
	assertAppErr(t, err, http.StatusNotFound, "Vehicle not found")
}

func TestDeleteVehicleBlockedByActiveBooking(t *testing.T) {
	db := newTestDB(t)
	vehicleSvc := NewVehicleService(db)
	bookingSvc := NewBookingService(db)
	admin := seedUser(t, db, models.RoleAdmin)
	customer := seedUser(t, db, models.RoleCustomer)
	vehicle := seedVehicle(t, db, 40)

	created, err := bookingSvc.Create(Requester{ID: customer.ID, Role: models.RoleCustomer}, CreateBookingInput{
		VehicleID:     vehicle.ID,
		RentStartDate: daysFromToday(1),
		RentEndDate:   daysFromToday(3),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	err = vehicleSvc.Delete(vehicle.ID)
	assertAppErr(t, err, http.StatusBadRequest, "Cannot delete vehicle with active bookings")

	if _, err := bookingSvc.UpdateStatus(created.ID, Requester{ID: admin.ID, Role: models.RoleAdmin}, models.BookingReturned); err != nil {
		t.Fatalf("force return: %v", err)
	}
	if err := vehicleSvc.Delete(vehicle.ID); err != nil {
		t.Fatalf("delete after return: %v", err)
	}

	err = vehicleSvc.Delete(vehicle.ID)
	assertAppErr(t, err, http.StatusNotFound, "Vehicle not found")
}

func TestGetVehicle(t *testing.T) {
	db := newTestDB(t)
	svc := NewVehicleService(db)
	vehicle := seedVehicle(t, db, 40)

	got, err := svc.Get(vehicle.ID)
	if err != nil {
		t.Fatalf("get vehicle: %v", err)
	}
	if got.ID != vehicle.ID {
		t.Fatalf("expected vehicle %d, got %d", vehicle.ID, got.ID)
	}

	_, err = svc.Get(9999)
	assertAppErr(t, err, http.StatusNotFound, "Vehicle not found")
}
