package controllers

import (
	"CareSync/handlers"
	"CareSync/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the profile and appointment routes. Everything
// here requires a resolved identity; fine-grained authorization happens in
// the services via the access-control guard.
func SetupAPIRoutes(
	router *gin.Engine,
	patientHandler *handlers.PatientHandler,
	providerHandler *handlers.ProviderHandler,
	appointmentHandler *handlers.AppointmentHandler,
) {
	api := router.Group("/").Use(middlewares.RequireAuthMiddleware())
	{
		api.GET("/patients", patientHandler.ListPatients)
		api.GET("/patients/:id", patientHandler.GetPatient)
		api.PUT("/patients/:id", patientHandler.UpdatePatient)

		api.GET("/providers", providerHandler.ListProviders)
		api.GET("/providers/:id", providerHandler.GetProvider)
		api.POST("/providers", providerHandler.CreateProvider)
		api.PUT("/providers/:id", providerHandler.UpdateProvider)

		api.GET("/appointments", appointmentHandler.ListAppointments)
		api.POST("/appointments", appointmentHandler.CreateAppointment)
		api.GET("/appointments/doctor/:id", appointmentHandler.DoctorAppointments)
		api.GET("/appointments/:id", appointmentHandler.GetAppointment)
		api.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
		api.DELETE("/appointments/:id", appointmentHandler.CancelAppointment)
	}
}
