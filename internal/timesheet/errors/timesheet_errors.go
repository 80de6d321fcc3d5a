package timesheeterrors

import (
	"net/http"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrWeekLocked = apperror.New(
		apperror.CodeInvalidState,
		"timesheet for this week has been submitted and is locked",
		http.StatusBadRequest,
	)
	ErrNotFound = apperror.New(
		apperror.CodeNotFound,
		"timesheet not found",
		http.StatusNotFound,
	)
	ErrEmptySheet = apperror.New(
		apperror.CodeInvalidState,
		"cannot submit a timesheet with no entries",
		http.StatusBadRequest,
	)
	ErrNotSubmitted = apperror.New(
		apperror.CodeInvalidState,
		"timesheet is not awaiting approval",
		http.StatusBadRequest,
	)
	ErrNotLocked = apperror.New(
		apperror.CodeInvalidState,
		"timesheet is still open for editing",
		http.StatusBadRequest,
	)
	ErrReopenNotFound = apperror.New(
		apperror.CodeNotFound,
		"reopen request not found",
		http.StatusNotFound,
	)
	ErrReopenNotPending = apperror.New(
		apperror.CodeInvalidState,
		"reopen request has already been decided",
		http.StatusBadRequest,
	)
	ErrReopenAlreadyOpen = apperror.New(
		apperror.CodeConflict,
		"a reopen request for this timesheet is already pending",
		http.StatusConflict,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"timesheet belongs to another user",
		http.StatusForbidden,
	)
)
