package payrollerrors

import (
	"net/http"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"year and month must name a valid calendar month",
		http.StatusBadRequest,
	)
	ErrRunInProgress = apperror.New(
		apperror.CodeConflict,
		"a payroll run is already in progress",
		http.StatusConflict,
	)
)

// RenderFailed wraps a renderer or sink failure for one user-month.
func RenderFailed(err error) *apperror.AppError {
	return apperror.Wrap(err, apperror.CodeRenderFailed, "payslip rendering failed", http.StatusInternalServerError)
}
