package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/izzypositivetech-001/Attendifybackend/internal/audit"
	"github.com/izzypositivetech-001/Attendifybackend/internal/config"
	"github.com/izzypositivetech-001/Attendifybackend/internal/handlers"
	infraRepo "github.com/izzypositivetech-001/Attendifybackend/internal/infra/repository"
	"github.com/izzypositivetech-001/Attendifybackend/internal/middleware"
	"github.com/izzypositivetech-001/Attendifybackend/internal/upload"
	ucAttendance "github.com/izzypositivetech-001/Attendifybackend/internal/usecase/attendance"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, storage upload.Storage) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	attendanceRepo := infraRepo.NewAttendanceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — ATTENDANCE
	// ======================================================
	markAttendanceUC := ucAttendance.NewMarkAttendance(
		attendanceRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	listAttendanceUC := ucAttendance.NewListAttendance(
		attendanceRepo,
		cfg.Timezone,
	)

	attendanceStatsUC := ucAttendance.NewAttendanceStats(
		attendanceRepo,
		cfg.Timezone,
	)

	getAttendanceUC := ucAttendance.NewGetAttendance(attendanceRepo)

	updateAttendanceUC := ucAttendance.NewUpdateAttendance(
		attendanceRepo,
		auditDispatcher,
	)

	deleteAttendanceUC := ucAttendance.NewDeleteAttendance(
		attendanceRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	employeeHandler := handlers.NewEmployeeHandler(db, storage, auditDispatcher)

	attendanceHandler := handlers.NewAttendanceHandler(
		markAttendanceUC,
		listAttendanceUC,
		attendanceStatsUC,
		getAttendanceUC,
		updateAttendanceUC,
		deleteAttendanceUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/users/register", authHandler.Register)
		api.POST("/users/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/users/me", meHandler.GetMe)

			// ------------------------------
			// EMPLOYEES
			// ------------------------------
			secured.POST("/employees", employeeHandler.Create)
			secured.GET("/employees", employeeHandler.List)
			secured.GET("/employees/:id", employeeHandler.GetByID)
			secured.PUT("/employees/:id", employeeHandler.Update)
			secured.DELETE("/employees/:id", employeeHandler.Delete)

			// ------------------------------
			// ATTENDANCE
			// ------------------------------
			secured.POST("/attendance", attendanceHandler.Mark)
			secured.GET("/attendance", attendanceHandler.List)
			secured.GET("/attendance/stats", attendanceHandler.Stats)
			secured.GET("/attendance/:id", attendanceHandler.GetByID)
			secured.PUT("/attendance/:id", attendanceHandler.Update)
			secured.DELETE("/attendance/:id", attendanceHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
