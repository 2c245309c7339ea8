package routes

import (
	"hospital-staff-backend/internal/api/handlers"
	"hospital-staff-backend/internal/api/middleware"
	"hospital-staff-backend/internal/config"
	"hospital-staff-backend/internal/repository"
	"hospital-staff-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	shiftRepo := repository.NewShiftRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	nurseRepo := repository.NewNurseRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	clinicalRecordRepo := repository.NewClinicalRecordRepository(db)
	inventoryRepo := repository.NewInventoryItemRepository(db)

	// Initialize services
	shiftService := service.NewShiftService(shiftRepo, assignmentRepo, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, shiftRepo, nurseRepo, validator)
	nurseService := service.NewNurseService(nurseRepo, validator)
	patientService := service.NewPatientService(patientRepo, validator)
	clinicalRecordService := service.NewClinicalRecordService(clinicalRecordRepo, patientRepo, validator)
	inventoryService := service.NewInventoryService(inventoryRepo, validator, cfg.LowStockThreshold)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	nurseHandler := handlers.NewNurseHandler(nurseService)
	patientHandler := handlers.NewPatientHandler(patientService)
	clinicalRecordHandler := handlers.NewClinicalRecordHandler(clinicalRecordService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Shift catalog routes
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.POST("", shiftHandler.CreateShift)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id", shiftHandler.UpdateShift)
			shifts.DELETE("/:id", shiftHandler.DeleteShift)
			shifts.POST("/:id/duplicate", shiftHandler.DuplicateShift)
			shifts.POST("/:id/toggle", shiftHandler.ToggleShiftStatus)
			shifts.GET("/:id/areas", assignmentHandler.GetAllowedAreas)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.POST("", assignmentHandler.CreateAssignment)
			assignments.GET("/:id", assignmentHandler.GetAssignment)
			assignments.PUT("/:id", assignmentHandler.UpdateAssignment)
			assignments.DELETE("/:id", assignmentHandler.DeleteAssignment)
			assignments.POST("/:id/release", assignmentHandler.ReleaseAssignment)
		}

		// Nurse routes
		nurses := v1.Group("/nurses")
		{
			nurses.GET("", nurseHandler.ListNurses)
			nurses.POST("", nurseHandler.CreateNurse)
			nurses.GET("/active", nurseHandler.ListActiveNurses)
			nurses.GET("/:id", nurseHandler.GetNurse)
			nurses.PUT("/:id", nurseHandler.UpdateNurse)
			nurses.DELETE("/:id", nurseHandler.DeleteNurse)
			nurses.GET("/:id/assignments", assignmentHandler.GetNurseAssignments)
		}

		// Patient routes
		patients := v1.Group("/patients")
		{
			patients.GET("", patientHandler.ListPatients)
			patients.POST("", patientHandler.CreatePatient)
			patients.GET("/:id", patientHandler.GetPatient)
			patients.PUT("/:id", patientHandler.UpdatePatient)
			patients.DELETE("/:id", patientHandler.DeletePatient)
			patients.GET("/:id/clinical-records", clinicalRecordHandler.GetPatientHistory)
		}

		// Clinical record routes
		clinicalRecords := v1.Group("/clinical-records")
		{
			clinicalRecords.GET("", clinicalRecordHandler.ListClinicalRecords)
			clinicalRecords.POST("", clinicalRecordHandler.CreateClinicalRecord)
			clinicalRecords.GET("/:id", clinicalRecordHandler.GetClinicalRecord)
			clinicalRecords.PUT("/:id", clinicalRecordHandler.UpdateClinicalRecord)
			clinicalRecords.DELETE("/:id", clinicalRecordHandler.DeleteClinicalRecord)
		}

		// Pharmacy inventory routes
		inventory := v1.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.ListInventory)
			inventory.POST("", inventoryHandler.CreateInventoryItem)
			inventory.GET("/low-stock", inventoryHandler.ListLowStock)
			inventory.GET("/:id", inventoryHandler.GetInventoryItem)
			inventory.PUT("/:id", inventoryHandler.UpdateInventoryItem)
			inventory.DELETE("/:id", inventoryHandler.DeleteInventoryItem)
			inventory.POST("/:id/adjust", inventoryHandler.AdjustStock)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
