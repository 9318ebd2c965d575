package handlers

import (
	"CareSync/middlewares"
	"CareSync/models"
	"CareSync/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// ListAppointments returns the caller's appointments: patients see their
// bookings, providers see appointments booked with them.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())

	appointments, err := h.service.ListForUser(c.Request.Context(), claims)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// CreateAppointment books a new appointment for the calling patient.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())

	var req models.AppointmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	appointment, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": appointment,
	})
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())

	appointment, err := h.service.Get(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// UpdateAppointment sets a new status and notes; only the appointment's
// provider may do this.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())

	var req models.AppointmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	appointment, err := h.service.UpdateStatus(c.Request.Context(), claims, c.Param("id"), req)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment status updated to " + appointment.Status,
		"appointment": appointment,
	})
}

// CancelAppointment marks the appointment cancelled; appointments are never
// physically deleted.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())

	if _, err := h.service.Cancel(c.Request.Context(), claims, c.Param("id")); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}

// DoctorAppointments returns the scheduling view for a doctor: summary plus
// open appointments.
func (h *AppointmentHandler) DoctorAppointments(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())

	schedule, err := h.service.ListForProvider(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}
