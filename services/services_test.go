package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Each sqlite :memory: connection is its own database; pin the pool to
	// one connection so the whole test sees the same schema.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Vehicle{}, &models.Booking{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var seedSeq int

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	seedSeq++
	user := &models.User{
		Name:         fmt.Sprintf("User %d", seedSeq),
		Email:        fmt.Sprintf("user%d@example.com", seedSeq),
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedVehicle(t *testing.T, db *gorm.DB, price float64) *models.Vehicle {
	t.Helper()
	seedSeq++
	vehicle := &models.Vehicle{
		VehicleName:        fmt.Sprintf("Vehicle %d", seedSeq),
		Type:               models.VehicleTypeCar,
		RegistrationNumber: fmt.Sprintf("KA-01-%04d", seedSeq),
		DailyRentPrice:     price,
		AvailabilityStatus: models.AvailabilityAvailable,
	}
	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return vehicle
}

func daysFromToday(n int) string {
	return time.Now().UTC().AddDate(0, 0, n).Format("2006-01-02")
}

func assertAppErr(t *testing.T, err error, wantStatus int, wantMessage string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", wantMessage)
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperr.Error, got %T: %v", err, err)
	}
	if appErr.Status != wantStatus {
		t.Fatalf("expected status %d, got %d (%v)", wantStatus, appErr.Status, appErr)
	}
	if appErr.Message != wantMessage {
		t.Fatalf("expected message %q, got %q", wantMessage, appErr.Message)
	}
}

func reloadVehicle(t *testing.T, db *gorm.DB, id uint) *models.Vehicle {
	t.Helper()
	var vehicle models.Vehicle
	if err := db.First(&vehicle, id).Error; err != nil {
		t.Fatalf("reload vehicle %d: %v", id, err)
	}
	return &vehicle
}

func reloadBooking(t *testing.T, db *gorm.DB, id uint) *models.Booking {
	t.Helper()
	var booking models.Booking
	if err := db.First(&booking, id).Error; err != nil {
		t.Fatalf("reload booking %d: %v", id, err)
	}
	return &booking
}
