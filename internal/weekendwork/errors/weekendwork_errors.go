package weekendworkerrors

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
	ErrNotAWeekend = apperror.New(
		apperror.CodeInvalidInput,
		"date is not a Saturday or Sunday",
		http.StatusBadRequest,
	)
	ErrDuplicateDate = apperror.New(
		apperror.CodeConflict,
		"weekend work already submitted for this date",
		http.StatusConflict,
	)
	ErrNotFound = apperror.New(
		apperror.CodeNotFound,
		"weekend work entry not found",
		http.StatusNotFound,
	)
	ErrNotSubmitted = apperror.New(
		apperror.CodeInvalidState,
		"weekend work entry has already been decided",
		http.StatusBadRequest,
	)
)
