package handlers

import (
	"CareSync/middlewares"
	"CareSync/models"
	"CareSync/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// ListPatients returns all patient profiles (providers and admins only).
func (h *PatientHandler) ListPatients(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())

	patients, err := h.service.List(c.Request.Context(), claims)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients, "count": len(patients)})
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())
	patientID := c.Param("id")

	patient, err := h.service.Get(c.Request.Context(), claims, patientID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	middlewares.RespondJSON(c, patient, http.StatusOK)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	claims, _ := middlewares.ClaimsFromContext(c.Request.Context())
	patientID := c.Param("id")

	var req models.PatientProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	patient, err := h.service.Update(c.Request.Context(), claims, patientID, req)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	middlewares.RespondJSON(c, patient, http.StatusOK)
}
