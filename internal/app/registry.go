package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/attendance"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/auth"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/leave"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/messaging/kafka"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/middleware"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/notification"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/rbac/infra"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shift"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/task"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/timesheet"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/user"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/weekendwork"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	weekendRepo := weekendwork.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	notificationService := notification.NewService(notificationRepo)
	userService := user.NewService(db, userRepo)
	authService := auth.NewService(userRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)
	leaveService := leave.NewServiceWithNotifier(db, leaveRepo, notificationService)
	weekendService := weekendwork.NewServiceWithNotifier(db, weekendRepo, notificationService)
	shiftService := shift.NewServiceWithNotifier(db, shiftRepo, notificationService)
	timesheetService := timesheet.NewService(db, timesheetRepo)
	taskService := task.NewService(db, taskRepo)

	payslipDir := os.Getenv("PAYSLIP_DIR")
	if payslipDir == "" {
		payslipDir = "payslips"
	}
	payrollService := payroll.NewService(
		db,
		userRepo,
		attendanceRepo,
		leaveRepo,
		weekendRepo,
		payrollRepo,
		outboxRepo,
		payroll.NewDirSink(payslipDir),
	)

	// --- Handlers ---
	userHandler := user.NewHandler(userService)
	authHandler := auth.NewHandler(authService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	weekendHandler := weekendwork.NewHandler(weekendService)
	shiftHandler := shift.NewHandler(shiftService)
	timesheetHandler := timesheet.NewHandler(timesheetService)
	taskHandler := task.NewHandler(taskService)
	notificationHandler := notification.NewHandler(notificationService)
	payrollHandler := payroll.NewHandlerWithCache(payrollService, rdb)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		weekendwork.RegisterRoutes(api, weekendHandler, rbacService)
		shift.RegisterRoutes(api, shiftHandler, rbacService)
		timesheet.RegisterRoutes(api, timesheetHandler, rbacService)
		task.RegisterRoutes(api, taskHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler)
		payroll.RegisterRoutes(api, payrollHandler, rbacService)
	}

	return nil
}
