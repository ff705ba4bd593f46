package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"vetclinic-server/internal/config"
	"vetclinic-server/internal/handlers"
	"vetclinic-server/internal/middleware"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	vetHandler := handlers.NewVeterinarianHandler(db)
	ownerHandler := handlers.NewOwnerHandler(db)
	petHandler := handlers.NewPetHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	medicalRecordHandler := handlers.NewMedicalRecordHandler(db)
	vaccineHandler := handlers.NewVaccineHandler(db)
	vaccinationRecordHandler := handlers.NewVaccinationRecordHandler(db)
	invoiceHandler := handlers.NewInvoiceHandler(db)
	reportHandler := handlers.NewReportHandler(db)

	// Per-route-class token budgets keyed by client address.
	rl := cfg.RateLimit
	loginLimiter := middleware.NewRateLimiter(perInterval(time.Minute, rl.LoginPerMinute), rl.LoginPerMinute)
	signUpLimiter := middleware.NewRateLimiter(perInterval(time.Hour, rl.SignUpPerHour), rl.SignUpPerHour)
	recoverLimiter := middleware.NewRateLimiter(perInterval(time.Hour, rl.RecoverPerHour), rl.RecoverPerHour)
	apiLimiter := middleware.NewRateLimiter(perInterval(time.Minute, rl.DefaultPerMinute), rl.DefaultPerMinute)

	// Public routes (no authentication required)
	router.POST("/login", loginLimiter.Middleware(), authHandler.Login)
	router.POST("/sign-up", signUpLimiter.Middleware(), authHandler.SignUp)
	router.POST("/recover-password", recoverLimiter.Middleware(), authHandler.RecoverPassword)

	// Authenticated routes: every business endpoint requires a bearer token
	// resolving to an active veterinarian.
	private := router.Group("")
	private.Use(apiLimiter.Middleware(), middleware.AuthMiddleware(db, cfg))
	{
		private.GET("/users/me", authHandler.Me)

		vetRoutes := private.Group("/veterinarians")
		{
			vetRoutes.GET("", vetHandler.ListVeterinarians)
			vetRoutes.GET("/:id", vetHandler.GetVeterinarian)
			vetRoutes.PUT("/:id", vetHandler.UpdateVeterinarian)
			vetRoutes.DELETE("/:id", vetHandler.DeleteVeterinarian)
			vetRoutes.GET("/:id/appointments", vetHandler.GetVeterinarianAppointments)
			vetRoutes.GET("/:id/schedule", vetHandler.GetVeterinarianSchedule)
		}

		ownerRoutes := private.Group("/owners")
		{
			ownerRoutes.POST("", ownerHandler.CreateOwner)
			ownerRoutes.GET("", ownerHandler.ListOwners)
			ownerRoutes.GET("/:id", ownerHandler.GetOwner)
			ownerRoutes.PUT("/:id", ownerHandler.UpdateOwner)
			ownerRoutes.DELETE("/:id", ownerHandler.DeleteOwner)
			ownerRoutes.GET("/:id/pets", ownerHandler.GetOwnerPets)
			ownerRoutes.GET("/:id/appointments", ownerHandler.GetOwnerAppointments)
		}

		petRoutes := private.Group("/pets")
		{
			petRoutes.POST("", petHandler.CreatePet)
			petRoutes.GET("", petHandler.ListPets)
			petRoutes.GET("/:id", petHandler.GetPet)
			petRoutes.PUT("/:id", petHandler.UpdatePet)
			petRoutes.DELETE("/:id", petHandler.DeletePet)
			petRoutes.GET("/:id/medical-history", petHandler.GetPetMedicalHistory)
			petRoutes.GET("/:id/vaccinations", petHandler.GetPetVaccinations)
			petRoutes.GET("/:id/vaccination-schedule", petHandler.GetPetVaccinationSchedule)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.ListAppointments)
			appointmentRoutes.GET("/today", appointmentHandler.ListAppointmentsToday)
			appointmentRoutes.GET("/pending", appointmentHandler.ListPendingAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointment)
			appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.PUT("/:id/complete", appointmentHandler.CompleteAppointment)
			appointmentRoutes.PUT("/:id/cancel", appointmentHandler.CancelAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		medicalRecordRoutes := private.Group("/medical-records")
		{
			medicalRecordRoutes.POST("", medicalRecordHandler.CreateMedicalRecord)
			medicalRecordRoutes.GET("", medicalRecordHandler.ListMedicalRecords)
			medicalRecordRoutes.GET("/:id", medicalRecordHandler.GetMedicalRecord)
			medicalRecordRoutes.PUT("/:id", medicalRecordHandler.UpdateMedicalRecord)
		}

		vaccineRoutes := private.Group("/vaccines")
		{
			vaccineRoutes.POST("", vaccineHandler.CreateVaccine)
			vaccineRoutes.GET("", vaccineHandler.ListVaccines)
			vaccineRoutes.GET("/:id", vaccineHandler.GetVaccine)
			vaccineRoutes.PUT("/:id", vaccineHandler.UpdateVaccine)
			vaccineRoutes.DELETE("/:id", vaccineHandler.DeleteVaccine)
		}

		vaccinationRecordRoutes := private.Group("/vaccination-records")
		{
			vaccinationRecordRoutes.POST("", vaccinationRecordHandler.CreateVaccinationRecord)
			vaccinationRecordRoutes.GET("", vaccinationRecordHandler.ListVaccinationRecords)
			vaccinationRecordRoutes.GET("/:id", vaccinationRecordHandler.GetVaccinationRecord)
			vaccinationRecordRoutes.PUT("/:id", vaccinationRecordHandler.UpdateVaccinationRecord)
			vaccinationRecordRoutes.DELETE("/:id", vaccinationRecordHandler.DeleteVaccinationRecord)
		}

		invoiceRoutes := private.Group("/invoices")
		{
			invoiceRoutes.POST("", invoiceHandler.CreateInvoice)
			invoiceRoutes.GET("", invoiceHandler.ListInvoices)
			invoiceRoutes.GET("/pending", invoiceHandler.ListPendingInvoices)
			invoiceRoutes.GET("/:id", invoiceHandler.GetInvoice)
			invoiceRoutes.PUT("/:id", invoiceHandler.UpdateInvoice)
			invoiceRoutes.DELETE("/:id", invoiceHandler.DeleteInvoice)
			invoiceRoutes.POST("/:id/pay", invoiceHandler.PayInvoice)
		}

		reportRoutes := private.Group("/reports")
		{
			reportRoutes.GET("/revenue", reportHandler.Revenue)
			reportRoutes.GET("/popular-veterinarians", reportHandler.PopularVeterinarians)
			reportRoutes.GET("/vaccination-alerts", reportHandler.VaccinationAlerts)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}

// perInterval converts "n requests per interval" into a refill rate.
func perInterval(interval time.Duration, n int) rate.Limit {
	if n <= 0 {
		return rate.Inf
	}
	return rate.Every(interval / time.Duration(n))
}
