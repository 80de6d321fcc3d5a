package taskerrors

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
	ErrNotFound = apperror.New(
		apperror.CodeNotFound,
		"task not found",
		http.StatusNotFound,
	)
	ErrAssigneeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"assignee does not exist",
		http.StatusBadRequest,
	)
	ErrNotAssignee = apperror.New(
		apperror.CodeForbidden,
		"task is assigned to another user",
		http.StatusForbidden,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"task status cannot move to the requested state",
		http.StatusBadRequest,
	)
)
