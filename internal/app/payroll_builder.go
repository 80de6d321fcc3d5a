package app

import (
	"database/sql"
	"os"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/attendance"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/leave"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/messaging/kafka"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/payroll"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/user"
	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/weekendwork"

	"gorm.io/gorm"
)

// buildPayrollService wires the payroll engine with its source
// repositories; shared by the worker and the consumer.
func buildPayrollService(db *sql.DB, gormDB *gorm.DB) (payroll.Service, payroll.UserSource) {
	payslipDir := os.Getenv("PAYSLIP_DIR")
	if payslipDir == "" {
		payslipDir = "payslips"
	}

	userRepo := user.NewRepository(gormDB)
	svc := payroll.NewService(
		db,
		userRepo,
		attendance.NewRepository(gormDB),
		leave.NewRepository(gormDB),
		weekendwork.NewRepository(gormDB),
		payroll.NewRepository(gormDB),
		kafka.NewOutboxRepository(db),
		payroll.NewDirSink(payslipDir),
	)
	return svc, userRepo
}

func buildRunner(db *sql.DB, gormDB *gorm.DB) *payroll.Runner {
	svc, users := buildPayrollService(db, gormDB)
	return payroll.NewRunner(svc, users, buildMailer())
}
