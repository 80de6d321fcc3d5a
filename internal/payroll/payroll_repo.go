package payroll

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	SaveRecord(ctx context.Context, rec *PayslipRecord) error
	FindRecord(ctx context.Context, userID string, year, month int) (*PayslipRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SaveRecord(ctx context.Context, rec *PayslipRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"salary", "deduction_rate", "total_working_days", "present_days",
				"leave_days", "deductible_leaves", "absent_days", "weekend_days",
				"leave_deduction", "absent_deduction", "weekend_bonus", "net_pay",
				"filename", "updated_at",
			}),
		}).
		Create(rec).Error
}

func (r *repository) FindRecord(ctx context.Context, userID string, year, month int) (*PayslipRecord, error) {
	var rec PayslipRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&rec).Error
	return &rec, err
}
