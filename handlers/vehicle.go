package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/models"
	"vehicle-rental-api/services"
)

type VehicleHandler struct {
	svc *services.VehicleService
}

func NewVehicleHandler(svc *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

type CreateVehicleRequest struct {
	VehicleName        string                    `json:"vehicle_name" binding:"required"`
	Type               models.VehicleType        `json:"type" binding:"required"`
	RegistrationNumber string                    `json:"registration_number" binding:"required"`
	DailyRentPrice     float64                   `json:"daily_rent_price" binding:"required"`
	AvailabilityStatus models.AvailabilityStatus `json:"availability_status"`
}

type UpdateVehicleRequest struct {
	VehicleName        *string                    `json:"vehicle_name"`
	Type               *models.VehicleType        `json:"type"`
	RegistrationNumber *string                    `json:"registration_number"`
	DailyRentPrice     *float64                   `json:"daily_rent_price"`
	AvailabilityStatus *models.AvailabilityStatus `json:"availability_status"`
}

// List returns all vehicles (public)
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

// Get returns a single vehicle (public)
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "Invalid vehicle id")
	if !ok {
		return
	}
	vehicle, err := h.svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

// Create adds a vehicle to the inventory (admin only)
func (h *VehicleHandler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.BadRequest(err.Error()))
		return
	}

	vehicle, err := h.svc.Create(services.CreateVehicleInput{
		VehicleName:        req.VehicleName,
		Type:               req.Type,
		RegistrationNumber: req.RegistrationNumber,
		DailyRentPrice:     req.DailyRentPrice,
		AvailabilityStatus: req.AvailabilityStatus,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Vehicle created successfully", vehicle)
}

// Update partially updates a vehicle (admin only)
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "Invalid vehicle id")
	if !ok {
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.BadRequest(err.Error()))
		return
	}

	vehicle, err := h.svc.Update(id, services.UpdateVehicleInput{
		VehicleName:        req.VehicleName,
		Type:               req.Type,
		RegistrationNumber: req.RegistrationNumber,
		DailyRentPrice:     req.DailyRentPrice,
		AvailabilityStatus: req.AvailabilityStatus,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// Delete removes a vehicle (admin only, blocked by active bookings)
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "Invalid vehicle id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Vehicle deleted successfully", nil)
}

// paramID parses the :id route parameter, responding with a 400 on failure.
func paramID(c *gin.Context, msg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, apperr.BadRequest(msg))
		return 0, false
	}
	return uint(id), true
}
