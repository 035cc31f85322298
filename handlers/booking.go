package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/middleware"
	"vehicle-rental-api/models"
	"vehicle-rental-api/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type CreateBookingRequest struct {
	CustomerID    uint   `json:"customer_id"`
	VehicleID     uint   `json:"vehicle_id" binding:"required"`
	RentStartDate string `json:"rent_start_date" binding:"required"`
	RentEndDate   string `json:"rent_end_date" binding:"required"`
}

type UpdateBookingRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

func requester(c *gin.Context) services.Requester {
	return services.Requester{
		ID:   middleware.GetUserID(c),
		Role: middleware.GetRole(c),
	}
}

// Create books a vehicle. Customers book for themselves; admins must supply
// the customer_id.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.BadRequest(err.Error()))
		return
	}

	booking, err := h.svc.Create(requester(c), services.CreateBookingInput{
		CustomerID:    req.CustomerID,
		VehicleID:     req.VehicleID,
		RentStartDate: req.RentStartDate,
		RentEndDate:   req.RentEndDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Booking created successfully", booking)
}

// List returns bookings shaped by role: admins see everything with customer
// details, customers see only their own.
func (h *BookingHandler) List(c *gin.Context) {
	r := requester(c)
	if r.Role == models.RoleAdmin {
		bookings, err := h.svc.ListAll()
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Bookings retrieved successfully", bookings)
		return
	}

	bookings, err := h.svc.ListByCustomer(r.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Your bookings retrieved successfully", bookings)
}

// UpdateStatus cancels (customer) or returns (admin) a booking
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "Invalid booking id")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.BadRequest(err.Error()))
		return
	}

	booking, err := h.svc.UpdateStatus(id, requester(c), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Booking cancelled successfully"
	if req.Status == models.BookingReturned {
		message = "Booking marked as returned. Vehicle is now available"
	}
	respond(c, http.StatusOK, message, booking)
}
